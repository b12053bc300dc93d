package auth

import (
	"fmt"
	"os"

	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/capitolhq/congressctl/internal/lib"
	"github.com/spf13/cobra"
)

func newAuthLoginCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store a Congress.gov API key in the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := lib.RequestSecretInput(os.Stdin, cmd.OutOrStdout(), "Please provide Congress.gov API key")
			if err != nil {
				return fmt.Errorf("requesting API key: %w", err)
			}
			if secret == "" {
				return fmt.Errorf("empty API key provided. %w", lib.BadUserInputError)
			}

			err = locator.CredentialsStorage.Set(factories.CongressApiSecretKey, secret, lib.KeyExtras{
				Label: factories.CongressApiSecretLabel,
			})
			if err != nil {
				return fmt.Errorf("storing API key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key stored in the system keyring")
			return nil
		},
	}
}
