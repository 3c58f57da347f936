package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		DataBackend:   "memory",
		SnapshotKey:   "bills",
		SeedDemoBills: true,
		ReminderDays:  3,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid memory backend config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			modify: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = "./test.db"
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			modify: func(c *Config) {
				c.DataBackend = "sheets"
			},
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory file sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			modify: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "file backend missing snapshot file",
			modify: func(c *Config) {
				c.DataBackend = "file"
				c.SnapshotFile = ""
			},
			wantErr:     true,
			errorString: "snapshot file cannot be empty when using file backend",
		},
		{
			name: "empty snapshot key",
			modify: func(c *Config) {
				c.SnapshotKey = "  "
			},
			wantErr:     true,
			errorString: "snapshot key cannot be empty",
		},
		{
			name: "negative reminder days",
			modify: func(c *Config) {
				c.ReminderDays = -1
			},
			wantErr:     true,
			errorString: "invalid reminder days -1: must not be negative",
		},
		{
			name: "reminder days too large",
			modify: func(c *Config) {
				c.ReminderDays = 45
			},
			wantErr:     true,
			errorString: "invalid reminder days 45: must be at most 31",
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.LogLevel = "trace"
			},
			wantErr:     true,
			errorString: "invalid log level 'trace'",
		},
		{
			name: "invalid log format",
			modify: func(c *Config) {
				c.LogFormat = "xml"
			},
			wantErr:     true,
			errorString: "invalid log format 'xml': must be 'text' or 'json'",
		},
		{
			name: "metrics textfile without prom extension",
			modify: func(c *Config) {
				c.MetricsTextfile = "/var/lib/node_exporter/bills.txt"
			},
			wantErr:     true,
			errorString: "must end in .prom",
		},
		{
			name: "several problems are reported together",
			modify: func(c *Config) {
				c.LogFormat = "xml"
				c.ReminderDays = -2
			},
			wantErr:     true,
			errorString: "invalid reminder days -2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else if err != nil {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateCreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := validConfig()
	cfg.DataBackend = "file"
	cfg.SnapshotFile = filepath.Join(tmpDir, "nested", "bills.json")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "nested")); err != nil {
		t.Errorf("snapshot directory should exist: %v", err)
	}
}

func TestLoad(t *testing.T) {
	keys := []string{
		"DATA_BACKEND", "SQLITE_DB_PATH", "SNAPSHOT_FILE", "SNAPSHOT_KEY",
		"SEED_DEMO_BILLS", "REMINDER_DAYS", "LOG_LEVEL", "LOG_FORMAT", "METRICS_TEXTFILE",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()
		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/bills.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/bills.db", cfg.SQLiteDBPath)
		}
		if cfg.SnapshotKey != "bills" {
			t.Errorf("Load() SnapshotKey = %v, want bills", cfg.SnapshotKey)
		}
		if !cfg.SeedDemoBills {
			t.Errorf("Load() SeedDemoBills = false, want true")
		}
		if cfg.ReminderDays != 3 {
			t.Errorf("Load() ReminderDays = %v, want 3", cfg.ReminderDays)
		}
		if cfg.LogFormat != "text" || cfg.LogLevel != "info" {
			t.Errorf("Load() log = %v/%v, want info/text", cfg.LogLevel, cfg.LogFormat)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("DATA_BACKEND", "file")
		t.Setenv("SNAPSHOT_FILE", "/tmp/bills.json")
		t.Setenv("SNAPSHOT_KEY", "household")
		t.Setenv("SEED_DEMO_BILLS", "false")
		t.Setenv("REMINDER_DAYS", "7")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("METRICS_TEXTFILE", "/tmp/bills.prom")

		cfg := Load()
		if cfg.DataBackend != "file" || cfg.SnapshotFile != "/tmp/bills.json" {
			t.Errorf("Load() backend = %v %v", cfg.DataBackend, cfg.SnapshotFile)
		}
		if cfg.SnapshotKey != "household" {
			t.Errorf("Load() SnapshotKey = %v, want household", cfg.SnapshotKey)
		}
		if cfg.SeedDemoBills {
			t.Errorf("Load() SeedDemoBills = true, want false")
		}
		if cfg.ReminderDays != 7 {
			t.Errorf("Load() ReminderDays = %v, want 7", cfg.ReminderDays)
		}
		if cfg.LogFormat != "json" || cfg.MetricsTextfile != "/tmp/bills.prom" {
			t.Errorf("Load() = %+v", cfg)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		t.Setenv("REMINDER_DAYS", "soon")
		t.Setenv("SEED_DEMO_BILLS", "maybe")
		cfg := Load()
		if cfg.ReminderDays != 3 {
			t.Errorf("Load() ReminderDays = %v, want 3 (default for invalid input)", cfg.ReminderDays)
		}
		if !cfg.SeedDemoBills {
			t.Errorf("Load() SeedDemoBills = false, want true (default for invalid input)")
		}
	})
}
