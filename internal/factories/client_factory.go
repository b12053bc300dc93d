package factories

import (
	"fmt"
	"os"

	"github.com/capitolhq/congressctl/internal/congress"
	"github.com/capitolhq/congressctl/internal/lib"
)

const (
	CongressApiSecretKey   = "congress_api_key"
	CongressApiSecretLabel = "Congress.gov API Key"
)

// NewCongressClient assembles a client from the loaded config and the
// resolved API key. A missing key triggers an interactive prompt, after which
// the key lands in the credentials storage.
func (l *SharedServicesLocator) NewCongressClient() (*congress.Client, error) {
	cfg, err := l.LoadConfig()
	if err != nil {
		return nil, err
	}

	apiKey, err := lib.GetSecretFromEnvOrInput(l.CredentialsStorage, CongressApiSecretKey, CongressApiSecretLabel,
		[]string{lib.ApiKeyEnv, lib.NativeApiKeyEnv}, os.Stdin, os.Stdout, "Please provide Congress.gov API key")
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", CongressApiSecretKey, err)
	}

	from, err := l.PlaceholdersService.ResolvePlaceholders(cfg.Defaults.From)
	if err != nil {
		return nil, fmt.Errorf("resolving 'from' date: %w", err)
	}
	to, err := l.PlaceholdersService.ResolvePlaceholders(cfg.Defaults.To)
	if err != nil {
		return nil, fmt.Errorf("resolving 'to' date: %w", err)
	}

	opts := []congress.Option{
		congress.WithAPIKey(apiKey),
		congress.WithDefaultLimit(cfg.Defaults.Limit),
		congress.WithDefaultOffset(cfg.Defaults.Offset),
		congress.WithDefaultSort(cfg.Defaults.Sort),
		congress.WithDateWindow(from, to),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, congress.WithBaseURL(cfg.BaseURL))
	}

	return congress.NewClient(opts...)
}
