package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/capitolhq/congressctl/internal/lib"
	"github.com/spf13/cobra"
)

func newAuthStatusCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the Congress.gov API key would be read from",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, envKey := range []string{lib.ApiKeyEnv, lib.NativeApiKeyEnv} {
				if value := strings.TrimSpace(os.Getenv(envKey)); value != "" {
					fmt.Fprintf(out, "API key set via environment variable %s (%s)\n", envKey, maskSecret(value))
					return nil
				}
			}

			stored, err := locator.CredentialsStorage.Get(factories.CongressApiSecretKey)
			if err != nil {
				return fmt.Errorf("reading API key from keyring: %w", err)
			}
			if stored != "" {
				fmt.Fprintf(out, "API key stored in the system keyring (%s)\n", maskSecret(stored))
				return nil
			}

			fmt.Fprintln(out, "No API key configured; run 'congressctl auth login' or set", lib.NativeApiKeyEnv)
			return nil
		},
	}
}

func maskSecret(value string) string {
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}
