//go:build unit

package javascript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	"github.com/rios0rios0/versionrc/internal/infrastructure/repositories/javascript"
)

func TestJSONUpdaterRepository(t *testing.T) {
	t.Parallel()

	t.Run("should match json manifests", func(t *testing.T) {
		t.Parallel()

		// given
		u := javascript.NewJSONUpdaterRepository()

		// when / then
		assert.Equal(t, "json", u.Name())
		assert.True(t, u.Matches("package.json"))
		assert.True(t, u.Matches("web/manifest.JSON"))
		assert.False(t, u.Matches("package.yaml"))
	})

	t.Run("should read the top-level version", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte(`{"name": "cgtwq", "version": "3.2.1", "dependencies": {"x": {"version": "9.9.9"}}}`)
		u := javascript.NewJSONUpdaterRepository()

		// when
		version, err := u.ReadVersion(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "3.2.1", version)
	})

	t.Run("should fail without a version key", func(t *testing.T) {
		t.Parallel()

		// given
		u := javascript.NewJSONUpdaterRepository()

		// when
		_, err := u.ReadVersion([]byte(`{"name": "cgtwq"}`))

		// then
		require.ErrorIs(t, err, repositories.ErrVersionNotFound)
	})

	t.Run("should fail on invalid JSON", func(t *testing.T) {
		t.Parallel()

		// given
		u := javascript.NewJSONUpdaterRepository()

		// when
		_, err := u.ReadVersion([]byte(`{"version": `))

		// then
		require.Error(t, err)
		assert.NotErrorIs(t, err, repositories.ErrVersionNotFound)
	})
}
