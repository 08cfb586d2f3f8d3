//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// StubSettingsRepository implements repositories.SettingsRepository with canned settings.
type StubSettingsRepository struct {
	// --- Load ---
	Settings    *entities.Settings // returned for every non-empty path
	LoadErr     error              // returned for every non-empty path
	LoadedPaths []string

	// --- Save ---
	SaveErr error
	Saved   map[string]*entities.Settings
}

var _ repositories.SettingsRepository = (*StubSettingsRepository)(nil)

// Load returns the defaults for an empty path, the canned settings otherwise.
func (s *StubSettingsRepository) Load(path string) (*entities.Settings, error) {
	s.LoadedPaths = append(s.LoadedPaths, path)
	if path == "" {
		return entities.DefaultSettings(), nil
	}
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}

	settings := entities.DefaultSettings()
	if s.Settings != nil {
		copied := *s.Settings
		settings = &copied
	}
	settings.Source = path
	return settings, nil
}

func (s *StubSettingsRepository) Save(path string, settings *entities.Settings) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Saved == nil {
		s.Saved = make(map[string]*entities.Settings)
	}
	s.Saved[path] = settings
	return nil
}
