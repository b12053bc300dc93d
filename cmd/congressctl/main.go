package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/capitolhq/congressctl/cmd/congressctl/auth"
	"github.com/capitolhq/congressctl/cmd/congressctl/configcmd"
	"github.com/capitolhq/congressctl/cmd/congressctl/query"
	"github.com/capitolhq/congressctl/internal/factories"
	"github.com/capitolhq/congressctl/internal/keyring"
	"github.com/capitolhq/congressctl/internal/lib"
	"github.com/capitolhq/congressctl/internal/placeholders"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "congressctl",
	Short: "Congressctl is a CLI tool for querying the Congress.gov legislative data API.",
}

func main() {
	setupLogging()

	storage := keyring.MustNewService("congressctl")
	locator := factories.NewSharedServicesLocator(storage, placeholders.NewService())

	RootCmd.PersistentFlags().StringVar(&locator.ConfigPath, "config", "./congressctl.yaml", "Path to the config file")
	RootCmd.PersistentFlags().StringVar(&locator.Profile, "profile", "", "Config profile to apply")

	RootCmd.AddCommand(auth.NewAuthCmd(locator))
	RootCmd.AddCommand(configcmd.NewConfigCmd(locator))
	RootCmd.AddCommand(query.NewResourcesCmd())
	RootCmd.AddCommand(query.NewResourceCmds(locator)...)

	if err := RootCmd.Execute(); err != nil {
		log.Fatal(fmt.Errorf("error executing command: %w", err))
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if raw := os.Getenv(lib.LogLevelEnv); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			level = slog.LevelInfo
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
