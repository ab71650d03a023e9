package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the local session",
		Long: `Invalidate the session server-side and clear the local token.

The local token is cleared even when the server cannot be reached, so a
logout always leaves this machine without a credential.`,
		RunE: runLogout,
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.client.Auth.Logout(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Logged out.\n", color.GreenString("✓"))
	return nil
}
