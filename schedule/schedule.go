// Package schedule models a petsitter's appointment book: date-bucketed
// appointment lookups and the month-grid calendar behind the dashboard.
package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jacksonlmp/petkeep"
)

// ID identifies an appointment. It round-trips through YAML in its
// canonical string form.
type ID struct {
	uuid.UUID
}

// NewID returns a random appointment ID.
func NewID() ID {
	return ID{uuid.New()}
}

// MarshalYAML implements yaml.Marshaler.
func (id ID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	id.UUID = parsed
	return nil
}

// Appointment is a single booked service.
type Appointment struct {
	ID        ID                  `yaml:"id"`
	Date      time.Time           `yaml:"date"`
	Time      string              `yaml:"time"` // "15:04" wall-clock start
	PetName   string              `yaml:"pet_name"`
	Service   petkeep.ServiceType `yaml:"service"`
	Owner     string              `yaml:"owner"`
	Completed bool                `yaml:"completed"`
}

// dayKey normalizes a time to its calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Book is a date-bucketed index over appointments.
type Book struct {
	appts []Appointment
	byDay map[string][]Appointment
}

// NewBook builds a book from appointments. Each day's bucket is ordered by
// start time, then pet name.
func NewBook(appts []Appointment) *Book {
	b := &Book{byDay: make(map[string][]Appointment)}
	for _, a := range appts {
		b.Add(a)
	}
	return b
}

// Add inserts an appointment, keeping its day bucket ordered.
func (b *Book) Add(a Appointment) {
	b.appts = append(b.appts, a)

	key := dayKey(a.Date)
	day := append(b.byDay[key], a)
	sort.Slice(day, func(i, j int) bool {
		if day[i].Time != day[j].Time {
			return day[i].Time < day[j].Time
		}
		return day[i].PetName < day[j].PetName
	})
	b.byDay[key] = day
}

// Len returns the total number of appointments.
func (b *Book) Len() int {
	return len(b.appts)
}

// All returns every appointment in insertion order.
func (b *Book) All() []Appointment {
	out := make([]Appointment, len(b.appts))
	copy(out, b.appts)
	return out
}

// OnDay returns the appointments on the given calendar day, ordered by
// start time.
func (b *Book) OnDay(day time.Time) []Appointment {
	bucket := b.byDay[dayKey(day)]
	out := make([]Appointment, len(bucket))
	copy(out, bucket)
	return out
}

// MarkedDays returns the days within month that have at least one
// appointment, ascending.
func (b *Book) MarkedDays(month time.Time) []time.Time {
	var days []time.Time
	for key, bucket := range b.byDay {
		if len(bucket) == 0 {
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", key, month.Location())
		if err != nil {
			continue
		}
		if day.Year() == month.Year() && day.Month() == month.Month() {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// SetCompleted marks an appointment as completed (or not). Returns false
// when no appointment has the given ID.
func (b *Book) SetCompleted(id ID, completed bool) bool {
	found := false
	for i := range b.appts {
		if b.appts[i].ID == id {
			b.appts[i].Completed = completed
			found = true
		}
	}
	if !found {
		return false
	}
	for key, bucket := range b.byDay {
		for i := range bucket {
			if bucket[i].ID == id {
				bucket[i].Completed = completed
			}
		}
		b.byDay[key] = bucket
	}
	return true
}

// Cells lays the month out as a Sunday-first calendar grid: zero time.Times
// pad the first week so day 1 falls in its weekday column, followed by one
// cell per day of the month. Callers render rows of seven.
func Cells(month time.Time) []time.Time {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	blanks := int(first.Weekday()) // Sunday == 0

	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]time.Time, 0, blanks+daysInMonth)
	for i := 0; i < blanks; i++ {
		cells = append(cells, time.Time{})
	}
	for d := 0; d < daysInMonth; d++ {
		cells = append(cells, first.AddDate(0, 0, d))
	}
	return cells
}
