package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.Output != OutputTable {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputTable)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("ENV", "production")
	os.Setenv("GANZHI_OUTPUT", "yaml")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.Output != OutputYAML {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputYAML)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv()

	os.Setenv("ENV", "bogus")
	os.Setenv("GANZHI_OUTPUT", "xml")
	os.Setenv("LOG_LEVEL", "verbose")
	defer clearEnv()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() succeeded with invalid environment, want error")
	}

	// Every problem is reported, not just the first.
	for _, want := range []string{"ENV", "GANZHI_OUTPUT", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() error = %v, want mention of %s", err, want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	// Table-driven tests for validation
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid table config",
			config:  Config{Env: EnvDevelopment, Output: OutputTable, LogLevel: "info", LogFormat: "text"},
			wantErr: false,
		},
		{
			name:    "valid json config",
			config:  Config{Env: EnvDevelopment, Output: OutputJSON, LogLevel: "error", LogFormat: "json"},
			wantErr: false,
		},
		{
			name:    "valid markdown config",
			config:  Config{Env: EnvDevelopment, Output: OutputMarkdown, LogLevel: "warn", LogFormat: "text"},
			wantErr: false,
		},
		{
			name:    "valid production config",
			config:  Config{Env: EnvProduction, Output: OutputYAML, LogLevel: "info", LogFormat: "json"},
			wantErr: false,
		},
		{
			name:    "invalid env",
			config:  Config{Env: "bogus", Output: OutputTable, LogLevel: "info", LogFormat: "text"},
			wantErr: true,
		},
		{
			name:    "empty env",
			config:  Config{Env: "", Output: OutputTable, LogLevel: "info", LogFormat: "text"},
			wantErr: true,
		},
		{
			name:    "invalid output",
			config:  Config{Env: EnvDevelopment, Output: "csv", LogLevel: "info", LogFormat: "text"},
			wantErr: true,
		},
		{
			name:    "empty output",
			config:  Config{Env: EnvDevelopment, Output: "", LogLevel: "info", LogFormat: "text"},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			config:  Config{Env: EnvDevelopment, Output: OutputTable, LogLevel: "verbose", LogFormat: "text"},
			wantErr: true,
		},
		{
			name:    "invalid log format",
			config:  Config{Env: EnvDevelopment, Output: OutputTable, LogLevel: "info", LogFormat: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}

func TestValidOutputs(t *testing.T) {
	for _, o := range ValidOutputs() {
		cfg := Config{Env: EnvDevelopment, Output: o, LogLevel: "info", LogFormat: "text"}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() for output %q: %v", o, err)
		}
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"ENV", "GANZHI_OUTPUT", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
