package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Backend selection
	DataBackend string

	// SQLite
	SQLiteDBPath string

	// JSON file backend
	SnapshotFile string

	// Name of the snapshot blob holding the bill collection
	SnapshotKey string

	// Start a new collection with the demo bills
	SeedDemoBills bool

	// Days ahead the startup reminder looks
	ReminderDays int

	// Logging
	LogLevel  string
	LogFormat string

	// Optional node_exporter textfile for metrics
	MetricsTextfile string
}

func Load() *Config {
	cfg := &Config{
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/bills.db"),
		SnapshotFile: getEnv("SNAPSHOT_FILE", "./data/bills.json"),
		SnapshotKey:  getEnv("SNAPSHOT_KEY", "bills"),

		SeedDemoBills: getEnvBool("SEED_DEMO_BILLS", true),
		ReminderDays:  getEnvInt("REMINDER_DAYS", 3),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"memory", "file", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureDir(c.SQLiteDBPath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create SQLite database directory: %v", err))
		}
	case "file":
		if c.SnapshotFile == "" {
			errors = append(errors, "snapshot file cannot be empty when using file backend")
		} else if err := ensureDir(c.SnapshotFile); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create snapshot directory: %v", err))
		}
	}

	if strings.TrimSpace(c.SnapshotKey) == "" {
		errors = append(errors, "snapshot key cannot be empty")
	}

	if c.ReminderDays < 0 {
		errors = append(errors, fmt.Sprintf("invalid reminder days %d: must not be negative", c.ReminderDays))
	} else if c.ReminderDays > 31 {
		errors = append(errors, fmt.Sprintf("invalid reminder days %d: must be at most 31", c.ReminderDays))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	// node_exporter only picks up *.prom files
	if c.MetricsTextfile != "" && filepath.Ext(c.MetricsTextfile) != ".prom" {
		errors = append(errors, fmt.Sprintf("invalid metrics textfile '%s': must end in .prom", c.MetricsTextfile))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
