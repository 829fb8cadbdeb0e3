package config

import (
	"os"
	"teenpatti-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("TEENPATTI_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("TEENPATTI_PG_DSN", "postgres://env-wins")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.ListenAddr)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("postgres://env-wins", cfg.PGDSN)
	a.True(cfg.HistoryEnabled())

	// ensure that it's only loaded once
	_ = os.Setenv("TEENPATTI_PG_DSN", "postgres://too-late")
	// ensure we aren't using a pointer
	cfg.PGDSN = "bad"
	cfg = Instance()
	a.Equal("postgres://env-wins", cfg.PGDSN)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("TEENPATTI_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()
	for _, key := range []string{"TEENPATTI_PG_DSN", "TEENPATTI_MIGRATIONS_PATH"} {
		defer unsetEnv(key)()
	}

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, "./sql", cfg.MigrationsPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.HistoryEnabled())
	assert.False(t, cfg.Log.DisableAccessLogs)
}

func unsetEnv(key string) func() {
	prev, found := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	return func() {
		if found {
			_ = os.Setenv(key, prev)
		}
	}
}
