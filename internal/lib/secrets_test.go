package lib

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	values map[string]string
	getErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{values: map[string]string{}}
}

func (m *mockStorage) Get(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.values[key], nil
}

func (m *mockStorage) Set(key, value string, _ KeyExtras) error {
	m.values[key] = value
	return nil
}

func (m *mockStorage) Remove(key string) error {
	delete(m.values, key)
	return nil
}

func TestGetSecretFromEnvOrInput(t *testing.T) {
	r := require.New(t)

	t.Run("should prefer environment variables in order", func(t *testing.T) {
		t.Setenv("CONGRESSCTL_TEST_SECRET_A", "")
		t.Setenv("CONGRESSCTL_TEST_SECRET_B", "from-env-b")

		storage := newMockStorage()
		storage.values["api_key"] = "from-storage"

		secret, err := GetSecretFromEnvOrInput(storage, "api_key", "API Key",
			[]string{"CONGRESSCTL_TEST_SECRET_A", "CONGRESSCTL_TEST_SECRET_B"},
			strings.NewReader(""), &strings.Builder{}, "enter key")
		r.NoError(err)
		r.Equal("from-env-b", secret)
	})

	t.Run("should fall back to credentials storage", func(t *testing.T) {
		storage := newMockStorage()
		storage.values["api_key"] = "from-storage"

		secret, err := GetSecretFromEnvOrInput(storage, "api_key", "API Key",
			nil, strings.NewReader(""), &strings.Builder{}, "enter key")
		r.NoError(err)
		r.Equal("from-storage", secret)
	})

	t.Run("should prompt and persist when storage is empty", func(t *testing.T) {
		storage := newMockStorage()
		out := &strings.Builder{}

		secret, err := GetSecretFromEnvOrInput(storage, "api_key", "API Key",
			nil, strings.NewReader("typed-in\n"), out, "enter key")
		r.NoError(err)
		r.Equal("typed-in", secret)
		r.Equal("typed-in", storage.values["api_key"])
		r.Contains(out.String(), "enter key")
	})

	t.Run("should error on empty interactive input", func(t *testing.T) {
		storage := newMockStorage()

		_, err := GetSecretFromEnvOrInput(storage, "api_key", "API Key",
			nil, strings.NewReader("\n"), &strings.Builder{}, "enter key")
		r.ErrorIs(err, BadUserInputError)
	})

	t.Run("should surface storage read errors", func(t *testing.T) {
		storage := newMockStorage()
		storage.getErr = errors.New("keyring locked")

		_, err := GetSecretFromEnvOrInput(storage, "api_key", "API Key",
			nil, strings.NewReader(""), &strings.Builder{}, "enter key")
		r.ErrorContains(err, "keyring locked")
	})
}
