package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/versionrc/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/git"
	jsRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/javascript"
	txtRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/plaintext"
	pyRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/python"
	settingsRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/settings"
	tfRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/terraform"
	yamlRepo "github.com/rios0rios0/versionrc/internal/infrastructure/repositories/yamlfile"
)

// NewDefaultUpdaterRegistry returns a registry with every built-in updater.
// Order matters: the first updater matching a file name wins.
func NewDefaultUpdaterRegistry() *UpdaterRegistry {
	reg := NewUpdaterRegistry()
	reg.Register(txtRepo.NewPlainTextUpdaterRepository())
	reg.Register(jsRepo.NewJSONUpdaterRepository())
	reg.Register(pyRepo.NewPythonUpdaterRepository())
	reg.Register(yamlRepo.NewYAMLUpdaterRepository())
	reg.Register(tfRepo.NewHCLUpdaterRepository())
	return reg
}

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewDefaultUpdaterRegistry); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.SettingsRepository {
		return settingsRepo.NewKoanfSettingsRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.GitRepository {
		return gitRepo.NewGoGitRepository()
	}); err != nil {
		return err
	}

	return nil
}
