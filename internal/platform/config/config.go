// Package config loads application configuration from defaults, an optional
// YAML file and APP_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type DB struct {
	// Driver selects the gorm dialector: "sqlite" (default) or "postgres".
	Driver string
	// DSN is the sqlite file path or the postgres connection string.
	DSN string
}

type Engine struct {
	// Command is the interpreter used to run the recommendation script.
	Command string
	// Script is the path to the recommendation script.
	Script string
	// TimeoutSec bounds a single engine invocation.
	TimeoutSec int
}

type Admin struct {
	Email    string
	Password string
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotated file output when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type Config struct {
	HTTP   HTTP
	DB     DB
	Engine Engine
	Admin  Admin
	Log    Log
}

// Load builds the Config. Every key has a default, so the binary runs with no
// configuration at all; APP_* environment variables override (APP_HTTP_PORT,
// APP_DB_DSN, ...), and a YAML file referenced by path overrides defaults too.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 3001)
	v.SetDefault("http.readtimeoutsec", 15)
	v.SetDefault("http.writetimeoutsec", 60)
	v.SetDefault("http.idletimeoutsec", 60)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "data/buildright.db")

	v.SetDefault("engine.command", "python")
	v.SetDefault("engine.script", "app.py")
	v.SetDefault("engine.timeoutsec", 30)

	// Well-known bootstrap credential. Rotate before production.
	v.SetDefault("admin.email", "admin@buildright.com")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.maxsizemb", 100)
	v.SetDefault("log.maxbackups", 3)
	v.SetDefault("log.maxagedays", 28)

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
