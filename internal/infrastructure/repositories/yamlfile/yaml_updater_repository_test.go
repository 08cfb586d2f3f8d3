//go:build unit

package yamlfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	"github.com/rios0rios0/versionrc/internal/infrastructure/repositories/yamlfile"
)

func TestYAMLUpdaterRepository(t *testing.T) {
	t.Parallel()

	t.Run("should match yaml files", func(t *testing.T) {
		t.Parallel()

		// given
		u := yamlfile.NewYAMLUpdaterRepository()

		// when / then
		assert.Equal(t, "yaml", u.Name())
		assert.True(t, u.Matches("charts/app/Chart.yaml"))
		assert.True(t, u.Matches("pubspec.yml"))
		assert.False(t, u.Matches("values.json"))
	})

	t.Run("should keep the raw scalar text", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("apiVersion: v2\nname: app\nversion: 1.10\nappVersion: \"3.2.1\"\n")
		u := yamlfile.NewYAMLUpdaterRepository()

		// when
		version, err := u.ReadVersion(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.10", version)
	})

	t.Run("should ignore nested version keys", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("name: app\ndependencies:\n  - name: db\n    version: 1.0.0\n")
		u := yamlfile.NewYAMLUpdaterRepository()

		// when
		_, err := u.ReadVersion(content)

		// then
		require.ErrorIs(t, err, repositories.ErrVersionNotFound)
	})

	t.Run("should fail when the document is not a mapping", func(t *testing.T) {
		t.Parallel()

		// given
		u := yamlfile.NewYAMLUpdaterRepository()

		// when
		_, err := u.ReadVersion([]byte("- 1.0.0\n"))

		// then
		require.ErrorIs(t, err, repositories.ErrVersionNotFound)
	})
}
