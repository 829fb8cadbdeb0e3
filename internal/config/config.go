package config

import (
	"os"
	"teenpatti-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Teen Patti server
type Config struct {
	loaded         bool
	ListenAddr     string `yaml:"listenAddr" envconfig:"listen_addr"`
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// HistoryEnabled returns true if evaluations should be recorded to Postgres
func (c Config) HistoryEnabled() bool {
	return c.PGDSN != ""
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.ListenAddr = ":5000"
	c.MigrationsPath = "./sql"
	c.Log.Level = "info"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is fine; the defaults and the environment still apply
func Load() error {
	configFile := util.Getenv("TEENPATTI_CONFIG_FILE", "config.yaml")

	config = DefaultConfig()

	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("teenpatti", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
