// Package cli implements the petkeep command-line client.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jacksonlmp/petkeep"
	"github.com/jacksonlmp/petkeep/store"
)

// Execute runs the petkeep CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "petkeep",
		Short: "PetKeep pet-care marketplace client",
		Long: `petkeep is a client for the PetKeep pet-care marketplace.

Browse the petsitter directory, manage your account, and keep track of
your appointments.

Configuration is read from flags, PETKEEP_* environment variables, and
~/.petkeep/config.yaml, in that order of precedence.

Examples:
  petkeep login --email ana@example.com
  petkeep petsitters list --search "são paulo" --animal-type dog,cat
  petkeep dashboard --month 2026-09`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", "", "PetKeep API base URL (default "+petkeep.DefaultBaseURL+")")
	flags.String("data-dir", "", "directory for session and schedule data (default ~/.petkeep)")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newMeCmd(),
		newSignupCmd(),
		newPetsittersCmd(),
		newDashboardCmd(),
	)

	return rootCmd
}

// initConfig wires flags, environment, and the optional config file into
// viper. A .env file in the working directory is honored if present.
func initConfig(cmd *cobra.Command) error {
	godotenv.Load()

	viper.SetEnvPrefix("PETKEEP")
	viper.AutomaticEnv()

	if err := viper.BindPFlag("api_url", cmd.Flags().Lookup("api-url")); err != nil {
		return err
	}
	if err := viper.BindPFlag("data_dir", cmd.Flags().Lookup("data-dir")); err != nil {
		return err
	}
	viper.SetDefault("api_url", petkeep.DefaultBaseURL)

	dir, err := dataDir()
	if err != nil {
		return err
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

// dataDir resolves the data directory, creating it if needed.
func dataDir() (string, error) {
	dir := viper.GetString("data_dir")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".petkeep")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// app bundles the SDK client and its durable session store for one command
// invocation.
type app struct {
	client  *petkeep.Client
	store   *store.SQLite
	dataDir string
}

func newApp(cmd *cobra.Command) (*app, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(filepath.Join(dir, "session.db"))
	if err != nil {
		return nil, err
	}

	client := petkeep.NewClient(
		petkeep.WithBaseURL(viper.GetString("api_url")),
		petkeep.WithSessionStore(st),
	)
	slog.Debug("client configured", "api_url", client.BaseURL(), "data_dir", dir)

	a := &app{client: client, store: st, dataDir: dir}
	a.runOnboarding(cmd)
	return a, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// runOnboarding prints the one-time welcome on first launch and records
// that onboarding completed. The flag is never cleared afterwards.
func (a *app) runOnboarding(cmd *cobra.Command) {
	ctx := cmd.Context()
	done, err := a.store.OnboardingDone(ctx)
	if err != nil || done {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.MagentaString("Welcome to PetKeep!"))
	fmt.Fprintln(out, "Find trusted petsitters for walking, hosting, and sitting.")
	fmt.Fprintln(out, "Start with 'petkeep signup customer' or 'petkeep login'.")
	fmt.Fprintln(out)

	_ = a.store.SetOnboardingDone(ctx)
}

func (a *app) schedulePath() string {
	return filepath.Join(a.dataDir, "schedule.yaml")
}
