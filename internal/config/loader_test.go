package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member-search-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 100, cfg.Seed.Members)
	assert.Equal(t, 20, cfg.Search.DefaultPageSize)
	assert.Equal(t, 2000, cfg.Search.MaxPageSize)
	assert.False(t, cfg.IsLocal())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
profile: local
http:
  addr: ":9090"
log:
  level: debug
search:
  count_cache_ttl: 1m
`), 0o600))

	t.Setenv("MEMBERS_HTTP_ADDR", ":7070")
	t.Setenv("MEMBERS_SEED_MEMBERS", "10")

	cfg, err := config.Load(file)
	require.NoError(t, err)

	assert.True(t, cfg.IsLocal())
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, 10, cfg.Seed.Members)
	assert.Equal(t, time.Minute, cfg.Search.CountCacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "postgres without dsn", env: map[string]string{"MEMBERS_DATABASE_DRIVER": "postgres"}},
		{name: "unknown driver", env: map[string]string{"MEMBERS_DATABASE_DRIVER": "mysql"}},
		{name: "default page above max", env: map[string]string{"MEMBERS_SEARCH_DEFAULT_PAGE_SIZE": "5000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
