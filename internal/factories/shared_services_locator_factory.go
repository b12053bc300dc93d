package factories

import (
	"errors"
	"fmt"
	"os"

	"github.com/capitolhq/congressctl/internal/config"
	"github.com/capitolhq/congressctl/internal/lib"
	"github.com/capitolhq/congressctl/internal/placeholders"
)

type SharedServicesLocator struct {
	// ConfigPath and Profile are bound to the root command's persistent
	// flags, so config loading has to happen after flag parsing. LoadConfig
	// is therefore called from RunE, not at wiring time.
	ConfigPath string
	Profile    string

	CredentialsStorage  lib.CredentialsStorage
	PlaceholdersService *placeholders.Service
}

func NewSharedServicesLocator(credentialsStorage lib.CredentialsStorage, placeholdersService *placeholders.Service) *SharedServicesLocator {
	return &SharedServicesLocator{
		CredentialsStorage:  credentialsStorage,
		PlaceholdersService: placeholdersService,
	}
}

// LoadConfig reads the config file, falling back to built-in defaults when no
// file exists at the configured path.
func (l *SharedServicesLocator) LoadConfig() (*config.Config, error) {
	cfg := config.Default()

	if l.ConfigPath != "" {
		if _, err := os.Stat(l.ConfigPath); err == nil {
			cfg, err = config.NewConfigFromPath(l.ConfigPath)
			if err != nil {
				return nil, fmt.Errorf("loading config from %s: %w", l.ConfigPath, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config path %s: %w", l.ConfigPath, err)
		}
	}

	if l.Profile != "" {
		profiled, err := cfg.WithProfile(l.Profile)
		if err != nil {
			return nil, fmt.Errorf("applying profile: %w", err)
		}
		cfg = profiled
	}

	return cfg, nil
}
