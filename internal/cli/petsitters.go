package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jacksonlmp/petkeep"
)

func newPetsittersCmd() *cobra.Command {
	petsittersCmd := &cobra.Command{
		Use:   "petsitters",
		Short: "Browse the petsitter directory",
	}

	petsittersCmd.AddCommand(newPetsittersListCmd(), newPetsittersGetCmd())
	return petsittersCmd
}

func newPetsittersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List petsitters, optionally filtered",
		Long: `List petsitters from the directory.

Filters combine: a search term matches name, location, and bio; animal and
service filters restrict by capability code. Requires login.

Examples:
  petkeep petsitters list
  petkeep petsitters list --search "são paulo"
  petkeep petsitters list --animal-type dog,cat --service-type keepwalk`,
		RunE: runPetsittersList,
	}

	cmd.Flags().String("search", "", "free-text search term")
	cmd.Flags().StringSlice("animal-type", nil, "filter by animal type codes")
	cmd.Flags().StringSlice("service-type", nil, "filter by service type codes")

	return cmd
}

func runPetsittersList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	animals, _ := cmd.Flags().GetStringSlice("animal-type")
	services, _ := cmd.Flags().GetStringSlice("service-type")

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	sitters, err := a.client.PetSitters.List(cmd.Context(), &petkeep.ListOptions{
		Search:       search,
		AnimalTypes:  animalTypes(animals),
		ServiceTypes: serviceTypes(services),
	})
	if err != nil {
		return apiFailure("failed to list petsitters", err)
	}

	out := cmd.OutOrStdout()
	if len(sitters) == 0 {
		fmt.Fprintln(out, "No petsitters match the given filters.")
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Location", "Animals", "Services"})
	table.SetBorder(false)
	for _, s := range sitters {
		var animals, services []string
		for _, a := range s.AnimalTypes {
			animals = append(animals, string(a.Code))
		}
		for _, sv := range s.ServiceTypes {
			services = append(services, sv.DisplayName)
		}
		table.Append([]string{
			strconv.Itoa(s.ID),
			s.FullName,
			s.Location,
			strings.Join(animals, ", "),
			strings.Join(services, ", "),
		})
	}
	table.Render()

	noun := "petsitters"
	if len(sitters) == 1 {
		noun = "petsitter"
	}
	fmt.Fprintf(out, "\n%s\n", color.CyanString("%d %s available", len(sitters), noun))
	return nil
}

func newPetsittersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a petsitter's full profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runPetsittersGet,
	}
}

func runPetsittersGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid petsitter ID %q", args[0])
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	sitter, err := a.client.PetSitters.Get(cmd.Context(), id)
	if err != nil {
		return apiFailure("failed to fetch petsitter", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, color.New(color.Bold).Sprint(sitter.FullName))
	fmt.Fprintf(out, "Location:  %s\n", sitter.Location)
	fmt.Fprintf(out, "Phone:     %s\n", sitter.Phone)
	fmt.Fprintf(out, "Email:     %s\n", sitter.Email)
	fmt.Fprintf(out, "About:     %s\n", sitter.About)

	var animals []string
	for _, a := range sitter.AnimalTypes {
		animals = append(animals, a.DisplayName)
	}
	fmt.Fprintf(out, "Animals:   %s\n", strings.Join(animals, ", "))

	var services []string
	for _, s := range sitter.ServiceTypes {
		services = append(services, s.DisplayName)
	}
	fmt.Fprintf(out, "Services:  %s\n", strings.Join(services, ", "))

	if sitter.OtherAnimals != nil && *sitter.OtherAnimals != "" {
		fmt.Fprintf(out, "Also:      %s\n", *sitter.OtherAnimals)
	}
	return nil
}
