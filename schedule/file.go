package schedule

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// bookFile is the on-disk YAML layout of an appointment book.
type bookFile struct {
	Appointments []Appointment `yaml:"appointments"`
}

// Load reads an appointment book from a YAML file. A missing file is an
// empty book, not an error.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewBook(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var f bookFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}
	return NewBook(f.Appointments), nil
}

// Save writes the book to a YAML file, replacing any previous contents.
func Save(path string, b *Book) error {
	data, err := yaml.Marshal(bookFile{Appointments: b.All()})
	if err != nil {
		return fmt.Errorf("failed to encode schedule file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write schedule file: %w", err)
	}
	return nil
}
