//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/test/infrastructure/repositorydoubles"
)

func TestShowCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should print the effective configuration as JSON", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewShowCommand(&repositorydoubles.StubSettingsRepository{Settings: cgtwqSettings()})
		opts := commands.ShowOptions{SourceOptions: commands.SourceOptions{ConfigPath: ".versionrc"}}

		// when
		out, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		var decoded entities.Settings
		require.NoError(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, cgtwqSettings().BumpFiles, decoded.BumpFiles)
		assert.NotContains(t, string(out), "Source")
	})

	t.Run("should print the effective configuration as YAML", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewShowCommand(&repositorydoubles.StubSettingsRepository{})
		opts := commands.ShowOptions{
			SourceOptions: commands.SourceOptions{Dir: t.TempDir()},
			Format:        "YAML",
		}

		// when
		out, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		var decoded entities.Settings
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		assert.Equal(t, entities.DefaultCommitURLFormat, decoded.CommitURLFormat)
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewShowCommand(&repositorydoubles.StubSettingsRepository{})
		opts := commands.ShowOptions{
			SourceOptions: commands.SourceOptions{Dir: t.TempDir()},
			Format:        "toml",
		}

		// when
		_, err := cmd.Execute(context.Background(), opts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"toml"`)
	})
}
