package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func configToReader(config string) io.Reader {
	return io.NopCloser(strings.NewReader(config))
}

const configYAML = `
base_url: 'https://congress.example.test/v3'
defaults:
  limit: 50
  sort: 'updateDate+asc'
profiles:
  research:
    defaults:
      limit: 250
      from: '2001-01-01T00:00:00Z'
  recent:
    defaults:
      from: '{{ time.now | minus(30d) }}'
`

func TestConfig(t *testing.T) {
	r := require.New(t)

	t.Run("must parse config", func(t *testing.T) {
		cfg, err := NewConfigFromReader(configToReader(configYAML))
		r.NoError(err)
		r.Equal("https://congress.example.test/v3", cfg.BaseURL)
		r.Equal(50, cfg.Defaults.Limit)
		r.Equal("updateDate+asc", cfg.Defaults.Sort)
	})

	t.Run("must fill unset values from built-in defaults", func(t *testing.T) {
		cfg, err := NewConfigFromReader(configToReader(configYAML))
		r.NoError(err)
		r.Equal(0, cfg.Defaults.Offset)
		r.Equal("{{ time.now | minus(20y) }}", cfg.Defaults.From)
		r.Equal("{{ time.now }}", cfg.Defaults.To)
	})

	t.Run("must parse config with profile", func(t *testing.T) {
		cfg, err := NewConfigFromReader(configToReader(configYAML))
		r.NoError(err)

		cfgWithProfile, err := cfg.WithProfile("research")
		r.NoError(err)

		r.Equal(250, cfgWithProfile.Defaults.Limit)
		r.Equal("2001-01-01T00:00:00Z", cfgWithProfile.Defaults.From)
		r.Equal("updateDate+asc", cfgWithProfile.Defaults.Sort)
		r.Equal("https://congress.example.test/v3", cfgWithProfile.BaseURL)

		r.Equal(50, cfg.Defaults.Limit)
	})

	t.Run("must fail on unknown profile", func(t *testing.T) {
		cfg, err := NewConfigFromReader(configToReader(configYAML))
		r.NoError(err)

		_, err = cfg.WithProfile("nope")
		r.ErrorContains(err, "profile 'nope' not found")
	})

	t.Run("default config carries the documented query defaults", func(t *testing.T) {
		cfg := Default()
		r.Equal(25, cfg.Defaults.Limit)
		r.Equal(0, cfg.Defaults.Offset)
		r.Equal("updateDate+desc", cfg.Defaults.Sort)
	})

	t.Run("starter config round-trips through the loader", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "congressctl.yaml")
		r.NoError(WriteStarter(path))

		_, err := os.Stat(path)
		r.NoError(err)

		cfg, err := NewConfigFromPath(path)
		r.NoError(err)
		r.Equal("https://api.congress.gov/v3", cfg.BaseURL)
		r.Equal(25, cfg.Defaults.Limit)

		recent, err := cfg.WithProfile("recent")
		r.NoError(err)
		r.Equal(250, recent.Defaults.Limit)
		r.Equal("{{ time.now | minus(30d) }}", recent.Defaults.From)
	})
}
