package configcmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/capitolhq/congressctl/internal/config"
	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/spf13/cobra"
)

func NewConfigCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage congressctl configuration",
	}

	configCmd.AddCommand(newConfigInitCmd(locator))

	return configCmd
}

func newConfigInitCmd(locator *factories.SharedServicesLocator) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file at the configured path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := locator.ConfigPath
			if path == "" {
				return fmt.Errorf("no config path provided")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking config path %s: %w", path, err)
			}

			if err := config.WriteStarter(path); err != nil {
				return fmt.Errorf("writing starter config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Starter config written to %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return initCmd
}
