package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your PetKeep account",
		Long: `Authenticate with email and password.

The session token is stored locally and attached to subsequent commands
until you run 'petkeep logout'.

Examples:
  petkeep login --email ana@example.com
  PETKEEP_API_URL=https://api.petkeep.app/api/v1 petkeep login --email ana@example.com`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "account email")
	cmd.Flags().String("password", "", "account password (prompted when omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if password == "" {
		var err error
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	resp, err := a.client.Auth.Login(cmd.Context(), email, password)
	if err != nil {
		return apiFailure("login failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Logged in as %s (%s).\n",
		color.GreenString("✓"), resp.User.FullName, resp.User.UserType)
	return nil
}

// promptPassword reads a password without echoing when stdin is a
// terminal, falling back to a plain line read otherwise.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
