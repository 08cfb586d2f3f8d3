//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("should prefer .versionrc.json over package.json", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".versionrc.json"), []byte("{}"), 0o600))

		// when
		path, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".versionrc.json"), path)
	})

	t.Run("should ignore directories with a config file name", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".versionrc"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".versionrc.yaml"), []byte("{}"), 0o600))

		// when
		path, err := entities.FindConfigFile(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".versionrc.yaml"), path)
	})

	t.Run("should fail when nothing is found", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		_, err := entities.FindConfigFile(dir)

		// then
		require.ErrorIs(t, err, entities.ErrConfigNotFound)
	})
}
