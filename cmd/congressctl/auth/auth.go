package auth

import (
	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/spf13/cobra"
)

func NewAuthCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Congress.gov API key",
	}

	authCmd.AddCommand(newAuthLoginCmd(locator))
	authCmd.AddCommand(newAuthStatusCmd(locator))
	authCmd.AddCommand(newAuthLogoutCmd(locator))

	return authCmd
}
