package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/versionrc/internal/infrastructure/repositories"
)

// DefaultConfigName is the file written by init.
const DefaultConfigName = ".versionrc.json"

// ErrConfigExists is returned by init when the target file already exists.
var ErrConfigExists = errors.New("config file already exists")

// Init is the interface for the init command.
type Init interface {
	Execute(ctx context.Context, opts InitOptions) (string, error)
}

// InitOptions holds runtime options for writing a new configuration.
type InitOptions struct {
	Dir       string
	Filename  string   // Defaults to .versionrc.json; a .yaml name writes YAML
	Force     bool     // Overwrite an existing file
	Detect    bool     // Add every top-level file holding a readable version
	BumpFiles []string // Extra bump files, relative to Dir
}

// InitCommand writes a configuration holding the defaults.
type InitCommand struct {
	settingsRepository repositories.SettingsRepository
	updaterRegistry    *infraRepos.UpdaterRegistry
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(
	settingsRepository repositories.SettingsRepository,
	updaterRegistry *infraRepos.UpdaterRegistry,
) *InitCommand {
	return &InitCommand{
		settingsRepository: settingsRepository,
		updaterRegistry:    updaterRegistry,
	}
}

// Execute writes the configuration and returns its path.
func (it *InitCommand) Execute(_ context.Context, opts InitOptions) (string, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	name := opts.Filename
	if name == "" {
		name = DefaultConfigName
	}
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	settings := entities.DefaultSettings()
	files := append([]string{}, opts.BumpFiles...)
	if opts.Detect {
		files = append(files, it.detectBumpFiles(dir)...)
	}
	seen := make(map[string]bool)
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true
		settings.BumpFiles = append(settings.BumpFiles, entities.BumpFile{Filename: f})
	}

	if err := it.settingsRepository.Save(path, settings); err != nil {
		return "", err
	}
	logger.Infof("Wrote %s with %d bump file(s)", path, len(settings.BumpFiles))
	return path, nil
}

// detectBumpFiles returns the top-level files of dir that a registered
// updater can read a version from.
func (it *InitCommand) detectBumpFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warnf("Failed to scan %s for bump files: %v", dir, err)
		return nil
	}

	configNames := make(map[string]bool)
	for _, n := range entities.ConfigFileNames() {
		configNames[n] = true
	}

	var found []string
	for _, entry := range entries {
		if entry.IsDir() || (configNames[entry.Name()] && entry.Name() != "package.json") {
			continue
		}
		updater := it.updaterRegistry.Match(entry.Name())
		if updater == nil {
			continue
		}
		content, readErr := os.ReadFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			continue
		}
		if _, versionErr := updater.ReadVersion(content); versionErr != nil {
			continue
		}
		logger.Debugf("[%s] Detected bump file %s", updater.Name(), entry.Name())
		found = append(found, entry.Name())
	}
	sort.Strings(found)
	return found
}
