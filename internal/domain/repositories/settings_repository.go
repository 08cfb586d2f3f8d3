package repositories

import (
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// SettingsRepository loads and stores .versionrc configurations.
type SettingsRepository interface {
	// Load reads the configuration at path, layered over the defaults.
	// An empty path returns the defaults alone.
	Load(path string) (*entities.Settings, error)

	// Save writes settings to path atomically, in the format implied by
	// the file extension.
	Save(path string, settings *entities.Settings) error
}
