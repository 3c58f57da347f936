package backend

import (
	"fmt"

	"bills/internal/config"
	"bills/internal/storage"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.DataBackend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.DataBackend)
	}

	return Config{
		Type:         backendType,
		SnapshotKey:  appConfig.SnapshotKey,
		SQLiteDBPath: appConfig.SQLiteDBPath,
		SnapshotFile: appConfig.SnapshotFile,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLite database path is required for sqlite backend")
		}
	case FileBackend:
		if c.SnapshotFile == "" {
			return fmt.Errorf("snapshot file is required for file backend")
		}
	case MemoryBackend:
		// nothing to configure, the snapshot is lost on exit
	}

	return nil
}

func (c Config) snapshotKey() string {
	if c.SnapshotKey == "" {
		return storage.DefaultSnapshotKey
	}
	return c.SnapshotKey
}

// GetBackendTypes returns all valid backend types
func GetBackendTypes() []BackendType {
	return []BackendType{SQLiteBackend, FileBackend, MemoryBackend}
}

// GetBackendTypeStrings returns all valid backend type strings
func GetBackendTypeStrings() []string {
	types := GetBackendTypes()
	strings := make([]string, len(types))
	for i, t := range types {
		strings[i] = t.String()
	}
	return strings
}
