package commands

import (
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// SourceOptions locates the configuration a command works on.
type SourceOptions struct {
	ConfigPath string // Explicit config file; auto-detected in Dir when empty
	Dir        string // Project root, bump files are relative to it
}

// Root returns the project root, defaulting to the working directory.
func (o SourceOptions) Root() string {
	if o.Dir == "" {
		return "."
	}
	return o.Dir
}

// loadSettings resolves and loads the configuration. When required is false
// a missing configuration falls back to the defaults.
func loadSettings(
	repo repositories.SettingsRepository,
	opts SourceOptions,
	required bool,
) (*entities.Settings, error) {
	path := opts.ConfigPath
	if path == "" {
		found, err := entities.FindConfigFile(opts.Root())
		if err != nil {
			if required {
				return nil, err
			}
			logger.Warnf("%v, using defaults", err)
			return repo.Load("")
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	settings, err := repo.Load(path)
	if err != nil && !required && opts.ConfigPath == "" && errors.Is(err, entities.ErrConfigNotFound) {
		logger.Warnf("%v, using defaults", err)
		return repo.Load("")
	}
	return settings, err
}
