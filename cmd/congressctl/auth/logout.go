package auth

import (
	"fmt"

	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/spf13/cobra"
)

func newAuthLogoutCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the Congress.gov API key from the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := locator.CredentialsStorage.Remove(factories.CongressApiSecretKey); err != nil {
				return fmt.Errorf("removing API key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "API key removed from the system keyring")
			return nil
		},
	}
}
