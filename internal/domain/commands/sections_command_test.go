//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/test/domain/entitybuilders"
	"github.com/rios0rios0/versionrc/test/infrastructure/repositorydoubles"
)

func TestSectionsCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should group headers under the configured sections", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().
			WithTypes(
				entities.CommitType{Type: "feat", Section: "Features"},
				entities.CommitType{Type: "fix", Section: "Bug Fixes"},
				entities.CommitType{Type: "perf", Section: "Performance"},
				entities.CommitType{Type: "chore", Hidden: true},
			).
			BuildSettings()
		cmd := commands.NewSectionsCommand(&repositorydoubles.StubSettingsRepository{Settings: settings})
		opts := commands.SectionsOptions{
			SourceOptions: commands.SourceOptions{ConfigPath: ".versionrc"},
			Headers: []string{
				"fix(api): handle empty task list",
				"chore: bump deps",
				"perf: cache account lookups",
				"",
				"feat!: drop python 2",
			},
		}

		// when
		result, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		want := []entities.SectionGroup{
			{Section: entities.BreakingSection, Headers: []entities.CommitHeader{
				{Raw: "feat!: drop python 2", Type: "feat", Subject: "drop python 2", Breaking: true},
			}},
			{Section: "Bug Fixes", Headers: []entities.CommitHeader{
				{Raw: "fix(api): handle empty task list", Type: "fix", Scope: "api", Subject: "handle empty task list"},
			}},
			{Section: "Performance", Headers: []entities.CommitHeader{
				{Raw: "perf: cache account lookups", Type: "perf", Subject: "cache account lookups"},
			}},
		}
		if diff := cmp.Diff(want, result.Groups); diff != "" {
			t.Errorf("unexpected groups (-want +got):\n%s", diff)
		}
		require.Len(t, result.Hidden, 1)
		assert.Equal(t, "chore", result.Hidden[0].Header.Type)
	})

	t.Run("should list breaking headers once when a type is named after the breaking section", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entitybuilders.NewSettingsBuilder().
			WithTypes(
				entities.CommitType{Type: "feat", Section: "Features"},
				entities.CommitType{Type: "breaking", Section: entities.BreakingSection},
			).
			BuildSettings()
		cmd := commands.NewSectionsCommand(&repositorydoubles.StubSettingsRepository{Settings: settings})
		opts := commands.SectionsOptions{
			SourceOptions: commands.SourceOptions{ConfigPath: ".versionrc"},
			Headers:       []string{"feat!: drop py2", "breaking: x"},
		}

		// when
		result, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		want := []entities.SectionGroup{
			{Section: entities.BreakingSection, Headers: []entities.CommitHeader{
				{Raw: "feat!: drop py2", Type: "feat", Subject: "drop py2", Breaking: true},
				{Raw: "breaking: x", Type: "breaking", Subject: "x"},
			}},
		}
		if diff := cmp.Diff(want, result.Groups); diff != "" {
			t.Errorf("unexpected groups (-want +got):\n%s", diff)
		}
	})

	t.Run("should fall back to the defaults without a configuration", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewSectionsCommand(&repositorydoubles.StubSettingsRepository{})
		opts := commands.SectionsOptions{
			SourceOptions: commands.SourceOptions{Dir: t.TempDir()},
			Headers:       []string{"perf: faster", "Merge branch 'main'"},
		}

		// when
		result, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Groups)
		require.Len(t, result.Hidden, 2)
		assert.True(t, result.Hidden[0].Known)
		assert.False(t, result.Hidden[1].Conventional)
	})
}
