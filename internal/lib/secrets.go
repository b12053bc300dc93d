package lib

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// GetSecretFromEnvOrInput resolves a secret by checking the given environment
// variables in order, then the credentials storage, and finally by prompting
// the user. A secret obtained interactively is persisted in the storage so the
// prompt only happens once.
func GetSecretFromEnvOrInput(storage CredentialsStorage, storageKey, label string, envKeys []string, in io.Reader, out io.Writer, prompt string) (string, error) {
	for _, envKey := range envKeys {
		if value := strings.TrimSpace(os.Getenv(envKey)); value != "" {
			slog.Debug("secret resolved from environment", "env_key", envKey)
			return value, nil
		}
	}

	if storage != nil {
		stored, err := storage.Get(storageKey)
		if err != nil {
			return "", fmt.Errorf("reading %q from credentials storage: %w", storageKey, err)
		}
		if stored != "" {
			slog.Debug("secret resolved from credentials storage", "key", storageKey)
			return stored, nil
		}
	}

	secret, err := RequestSecretInput(in, out, prompt)
	if err != nil {
		return "", fmt.Errorf("requesting secret input: %w", err)
	}
	if secret == "" {
		return "", fmt.Errorf("empty secret provided. %w", BadUserInputError)
	}

	if storage != nil {
		if err := storage.Set(storageKey, secret, KeyExtras{Label: label}); err != nil {
			slog.Warn("could not persist secret in credentials storage", "key", storageKey, "error", err)
		}
	}

	return secret, nil
}
