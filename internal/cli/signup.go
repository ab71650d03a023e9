package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jacksonlmp/petkeep"
)

func newSignupCmd() *cobra.Command {
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a PetKeep account",
	}

	signupCmd.AddCommand(newSignupCustomerCmd(), newSignupPetsitterCmd())
	return signupCmd
}

// addAccountFlags registers the flags shared by both signup variants.
func addAccountFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "full name")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("phone", "", "phone number")
	cmd.Flags().String("password", "", "password (prompted when omitted)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")
}

// accountFlags reads the shared flags, prompting for the password (and its
// confirmation) when it was not given on the command line.
func accountFlags(cmd *cobra.Command) (name, email, phone, password, confirm string, err error) {
	name, _ = cmd.Flags().GetString("name")
	email, _ = cmd.Flags().GetString("email")
	phone, _ = cmd.Flags().GetString("phone")
	password, _ = cmd.Flags().GetString("password")

	if password == "" {
		if password, err = promptPassword("Password: "); err != nil {
			return
		}
		if confirm, err = promptPassword("Confirm password: "); err != nil {
			return
		}
	} else {
		confirm = password
	}
	return
}

func newSignupCustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Sign up as a pet owner",
		Long: `Create a customer account for finding and booking petsitters.

Example:
  petkeep signup customer --name "Ana Souza" --email ana@example.com --phone "+55 11 91234-5678"`,
		RunE: runSignupCustomer,
	}

	addAccountFlags(cmd)
	return cmd
}

func runSignupCustomer(cmd *cobra.Command, args []string) error {
	name, email, phone, password, confirm, err := accountFlags(cmd)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	customer, err := a.client.Customers.Signup(cmd.Context(), petkeep.CustomerSignupRequest{
		FullName:        name,
		Email:           email,
		Phone:           phone,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return apiFailure("signup failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Account created for %s. Run 'petkeep login' to sign in.\n",
		color.GreenString("✓"), customer.Email)
	return nil
}

func newSignupPetsitterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "petsitter",
		Short: "Sign up as a petsitter",
		Long: `Create a petsitter account offering walking, hosting, or sitting services.

Animal types: dog, cat, bird, rabbit, chicken, hamster, other.
Service types: keepwalk, keephost, keepsitter.

Example:
  petkeep signup petsitter --name "Bruno Lima" --email bruno@example.com \
    --phone "+55 11 98765-4321" --location "Pinheiros, São Paulo" \
    --about "Dog lover with a big backyard" \
    --animal-type dog,cat --service-type keepwalk,keephost`,
		RunE: runSignupPetsitter,
	}

	addAccountFlags(cmd)
	cmd.Flags().String("location", "", "where you offer services")
	cmd.Flags().String("about", "", "short bio shown in the directory")
	cmd.Flags().StringSlice("animal-type", nil, "animal types you handle")
	cmd.Flags().StringSlice("service-type", nil, "services you offer")
	cmd.Flags().String("other-animals", "", "note for animals outside the standard types")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("about")
	cmd.MarkFlagRequired("animal-type")
	cmd.MarkFlagRequired("service-type")

	return cmd
}

func runSignupPetsitter(cmd *cobra.Command, args []string) error {
	name, email, phone, password, confirm, err := accountFlags(cmd)
	if err != nil {
		return err
	}

	location, _ := cmd.Flags().GetString("location")
	about, _ := cmd.Flags().GetString("about")
	animals, _ := cmd.Flags().GetStringSlice("animal-type")
	services, _ := cmd.Flags().GetStringSlice("service-type")
	otherAnimals, _ := cmd.Flags().GetString("other-animals")

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	sitter, err := a.client.PetSitters.Signup(cmd.Context(), petkeep.PetSitterSignupRequest{
		FullName:        name,
		Email:           email,
		Phone:           phone,
		Password:        password,
		ConfirmPassword: confirm,
		Location:        location,
		About:           about,
		AnimalTypes:     animalTypes(animals),
		ServiceTypes:    serviceTypes(services),
		OtherAnimals:    otherAnimals,
	})
	if err != nil {
		return apiFailure("signup failed", err)
	}

	var offered []string
	for _, s := range sitter.ServiceTypes {
		offered = append(offered, s.DisplayName)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Petsitter account created for %s offering %s. Run 'petkeep login' to sign in.\n",
		color.GreenString("✓"), sitter.Email, strings.Join(offered, ", "))
	return nil
}

func animalTypes(codes []string) []petkeep.AnimalType {
	out := make([]petkeep.AnimalType, len(codes))
	for i, c := range codes {
		out[i] = petkeep.AnimalType(strings.TrimSpace(c))
	}
	return out
}

func serviceTypes(codes []string) []petkeep.ServiceType {
	out := make([]petkeep.ServiceType, len(codes))
	for i, c := range codes {
		out[i] = petkeep.ServiceType(strings.TrimSpace(c))
	}
	return out
}
