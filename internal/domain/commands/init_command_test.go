//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
	infraRepos "github.com/rios0rios0/versionrc/internal/infrastructure/repositories"
	"github.com/rios0rios0/versionrc/test/infrastructure/repositorydoubles"
)

func TestInitCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should write the defaults with detected bump files", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeProjectFile(t, root, "VERSION", "1.0.0\n")
		writeProjectFile(t, root, "package.json", `{"name": "app", "version": "1.0.0"}`)
		writeProjectFile(t, root, "tsconfig.json", `{"compilerOptions": {}}`)
		writeProjectFile(t, root, "README.md", "# app\n")
		writeProjectFile(t, root, "src/version.txt", "1.0.0\n")
		repo := &repositorydoubles.StubSettingsRepository{}
		cmd := commands.NewInitCommand(repo, infraRepos.NewDefaultUpdaterRegistry())
		opts := commands.InitOptions{Dir: root, Detect: true, BumpFiles: []string{"VERSION", "chart/Chart.yaml"}}

		// when
		path, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, commands.DefaultConfigName), path)
		saved := repo.Saved[path]
		require.NotNil(t, saved)
		assert.Equal(t, []entities.BumpFile{
			{Filename: "VERSION"},
			{Filename: "chart/Chart.yaml"},
			{Filename: "package.json"},
		}, saved.BumpFiles)
		assert.Equal(t, entities.DefaultTypes(), saved.Types)
		assert.Equal(t, []string{"VERSION", "chart/Chart.yaml"}, opts.BumpFiles)
	})

	t.Run("should refuse to overwrite an existing file", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeProjectFile(t, root, ".versionrc.yaml", "types: []\n")
		repo := &repositorydoubles.StubSettingsRepository{}
		cmd := commands.NewInitCommand(repo, infraRepos.NewDefaultUpdaterRegistry())
		opts := commands.InitOptions{Dir: root, Filename: ".versionrc.yaml"}

		// when
		_, err := cmd.Execute(context.Background(), opts)

		// then
		require.ErrorIs(t, err, commands.ErrConfigExists)
		assert.Empty(t, repo.Saved)
	})

	t.Run("should overwrite an existing file when forced", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		writeProjectFile(t, root, commands.DefaultConfigName, "{}\n")
		repo := &repositorydoubles.StubSettingsRepository{}
		cmd := commands.NewInitCommand(repo, infraRepos.NewDefaultUpdaterRegistry())
		opts := commands.InitOptions{Dir: root, Force: true}

		// when
		path, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		require.Contains(t, repo.Saved, path)
		assert.Empty(t, repo.Saved[path].BumpFiles)
	})

	t.Run("should propagate save errors", func(t *testing.T) {
		t.Parallel()

		// given
		saveErr := errors.New("read-only file system")
		repo := &repositorydoubles.StubSettingsRepository{SaveErr: saveErr}
		cmd := commands.NewInitCommand(repo, infraRepos.NewDefaultUpdaterRegistry())

		// when
		_, err := cmd.Execute(context.Background(), commands.InitOptions{Dir: t.TempDir()})

		// then
		require.ErrorIs(t, err, saveErr)
	})
}
