// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/danielhkuo/talentflow/simulate"
)

const (
	DefaultPort         = 3318
	DefaultDatabaseURL  = "talentflow.db"
	DefaultDatabaseType = "sqlite"
	DefaultAdminUser    = "admin"
	DefaultAdminPass    = "password123"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSalt   string
	AdminUsername string
	AdminPassword string
	MinDelay      time.Duration
	MaxDelay      time.Duration
	FailureRate   float64
	Seed          bool
	ConfigFile    string
}

// Simulation returns the network simulator settings.
func (c Config) Simulation() simulate.Config {
	return simulate.Config{
		MinDelay:    c.MinDelay,
		MaxDelay:    c.MaxDelay,
		FailureRate: c.FailureRate,
	}
}

// setting ties a flag to its config file key and environment variable.
type setting struct {
	key string
	env string
}

var settings = map[string]setting{
	"p":            {"port", "PORT"},
	"d":            {"database_url", "DATABASE_URL"},
	"t":            {"database_type", "DATABASE_TYPE"},
	"session-salt": {"session_salt", "SESSION_SALT"},
	"admin-user":   {"admin_username", "ADMIN_USERNAME"},
	"admin-pass":   {"admin_password", "ADMIN_PASSWORD"},
	"min-delay":    {"min_delay", "SIM_MIN_DELAY"},
	"max-delay":    {"max_delay", "SIM_MAX_DELAY"},
	"failure-rate": {"failure_rate", "SIM_FAILURE_RATE"},
	"seed":         {"seed", "SEED"},
}

// ParseFlags builds the Config. Precedence: CLI flag, then environment
// variable, then config file, then default.
func ParseFlags(args []string) (Config, error) {
	var configFile string

	fs := flag.NewFlagSet("talentflow", flag.ContinueOnError)
	sim := simulate.DefaultConfig()

	// Network config (can be CLI args, env or config file)
	fs.Int("p", DefaultPort, "Server port")
	fs.String("d", DefaultDatabaseURL, "Database URL (file path for sqlite)")
	fs.String("t", DefaultDatabaseType, "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.String("session-salt", "", "Session token salt (prefer env)")
	fs.String("admin-user", DefaultAdminUser, "Login username")
	fs.String("admin-pass", DefaultAdminPass, "Login password (prefer env)")

	// Network simulation
	fs.Duration("min-delay", sim.MinDelay, "Minimum simulated latency")
	fs.Duration("max-delay", sim.MaxDelay, "Maximum simulated latency")
	fs.Float64("failure-rate", sim.FailureRate, "Fraction of requests that fail (0-1)")

	fs.Bool("seed", true, "Seed demo data into an empty database")
	fs.StringVar(&configFile, "c", "", "Config file (yaml, toml or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("database_type", DefaultDatabaseType)
	v.SetDefault("admin_username", DefaultAdminUser)
	v.SetDefault("admin_password", DefaultAdminPass)
	v.SetDefault("min_delay", sim.MinDelay)
	v.SetDefault("max_delay", sim.MaxDelay)
	v.SetDefault("failure_rate", sim.FailureRate)
	v.SetDefault("seed", true)

	// Fall back to environment variables
	for _, s := range settings {
		if err := v.BindEnv(s.key, s.env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", s.env, err)
		}
	}

	if configFile == "" {
		configFile = os.Getenv("TALENTFLOW_CONFIG")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Only flags given explicitly override env and file values
	fs.Visit(func(f *flag.Flag) {
		if s, ok := settings[f.Name]; ok {
			v.Set(s.key, f.Value.String())
		}
	})

	cfg := Config{
		Port:          v.GetInt("port"),
		DatabaseURL:   v.GetString("database_url"),
		DatabaseType:  v.GetString("database_type"),
		SessionSalt:   v.GetString("session_salt"),
		AdminUsername: v.GetString("admin_username"),
		AdminPassword: v.GetString("admin_password"),
		MinDelay:      v.GetDuration("min_delay"),
		MaxDelay:      v.GetDuration("max_delay"),
		FailureRate:   v.GetFloat64("failure_rate"),
		Seed:          v.GetBool("seed"),
		ConfigFile:    configFile,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return fmt.Errorf("unsupported database type %q (use sqlite or postgres)", c.DatabaseType)
	}
	if c.MinDelay < 0 || c.MaxDelay < 0 {
		return errors.New("simulated delays must not be negative")
	}
	if c.MinDelay > c.MaxDelay {
		return fmt.Errorf("min delay %v exceeds max delay %v", c.MinDelay, c.MaxDelay)
	}
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("failure rate %v outside [0, 1]", c.FailureRate)
	}

	// Secrets - MUST be provided
	if c.SessionSalt == "" {
		return errors.New("SESSION_SALT required")
	}
	return nil
}
