package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the currently logged-in account",
		RunE:  runMe,
	}
}

func runMe(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.client.Auth.Me(cmd.Context())
	if err != nil {
		return apiFailure("not logged in", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:   %s\n", user.FullName)
	fmt.Fprintf(out, "Email:  %s\n", user.Email)
	fmt.Fprintf(out, "Phone:  %s\n", user.Phone)
	fmt.Fprintf(out, "Type:   %s\n", user.UserType)
	fmt.Fprintf(out, "Since:  %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}
