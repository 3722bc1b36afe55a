// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable ParseFlags reads for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range settings {
		t.Setenv(s.env, "")
	}
	t.Setenv("TALENTFLOW_CONFIG", "")
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SALT", "test-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "talentflow.db" || cfg.DatabaseType != "sqlite" {
		t.Errorf("unexpected database defaults: %s / %s", cfg.DatabaseURL, cfg.DatabaseType)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "password123" {
		t.Errorf("unexpected credential defaults: %s / %s", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.MinDelay != 200*time.Millisecond || cfg.MaxDelay != 1200*time.Millisecond {
		t.Errorf("unexpected delay defaults: %v..%v", cfg.MinDelay, cfg.MaxDelay)
	}
	if cfg.FailureRate != 0.07 {
		t.Errorf("expected failure rate 0.07, got %v", cfg.FailureRate)
	}
	if !cfg.Seed {
		t.Error("expected seeding enabled by default")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("SESSION_SALT", "env-salt")
	t.Setenv("SIM_FAILURE_RATE", "0")
	t.Setenv("SIM_MIN_DELAY", "0s")
	t.Setenv("SIM_MAX_DELAY", "0s")
	t.Setenv("SEED", "false")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("database = %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.SessionSalt != "env-salt" {
		t.Errorf("SessionSalt = %q", cfg.SessionSalt)
	}
	if cfg.FailureRate != 0 || cfg.MaxDelay != 0 {
		t.Errorf("simulation = %+v", cfg.Simulation())
	}
	if cfg.Seed {
		t.Error("SEED=false should disable seeding")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_SALT", "env-salt")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db", "-session-salt", "cli-salt", "-max-delay", "2s"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SessionSalt != "cli-salt" {
		t.Errorf("CLI should override env: got salt %q", cfg.SessionSalt)
	}
	if cfg.MaxDelay != 2*time.Second {
		t.Errorf("MaxDelay = %v, want 2s", cfg.MaxDelay)
	}
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "talentflow.yaml")
	content := strings.Join([]string{
		"port: 9100",
		"session_salt: file-salt",
		"min_delay: 50ms",
		"max_delay: 100ms",
		"failure_rate: 0.2",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Run("file values apply", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"-c", path})
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Port != 9100 || cfg.SessionSalt != "file-salt" {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.MinDelay != 50*time.Millisecond || cfg.MaxDelay != 100*time.Millisecond {
			t.Errorf("delays = %v..%v", cfg.MinDelay, cfg.MaxDelay)
		}
		if cfg.FailureRate != 0.2 {
			t.Errorf("FailureRate = %v", cfg.FailureRate)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("PORT", "9200")
		cfg, err := ParseFlags([]string{"-c", path})
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Port != 9200 {
			t.Errorf("expected env port 9200, got %d", cfg.Port)
		}
	})

	t.Run("path from env", func(t *testing.T) {
		t.Setenv("TALENTFLOW_CONFIG", path)
		cfg, err := ParseFlags([]string{})
		if err != nil {
			t.Fatal(err)
		}
		if cfg.SessionSalt != "file-salt" {
			t.Errorf("SessionSalt = %q", cfg.SessionSalt)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := ParseFlags([]string{"-c", filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

func TestParseFlags_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing salt", []string{}, "SESSION_SALT"},
		{"unknown database type", []string{"-session-salt", "s", "-t", "mysql"}, "unsupported database type"},
		{"min above max", []string{"-session-salt", "s", "-min-delay", "2s", "-max-delay", "1s"}, "exceeds max delay"},
		{"failure rate above one", []string{"-session-salt", "s", "-failure-rate", "1.5"}, "failure rate"},
		{"negative failure rate", []string{"-session-salt", "s", "-failure-rate", "-0.1"}, "failure rate"},
		{"bad port", []string{"-session-salt", "s", "-p", "70000"}, "invalid port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := ParseFlags(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
