//go:build unit

package plaintext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	"github.com/rios0rios0/versionrc/internal/infrastructure/repositories/plaintext"
)

func TestPlainTextUpdaterRepository(t *testing.T) {
	t.Parallel()

	t.Run("should match version files by name", func(t *testing.T) {
		t.Parallel()

		// given
		u := plaintext.NewPlainTextUpdaterRepository()

		// when / then
		assert.Equal(t, "plain-text", u.Name())
		assert.True(t, u.Matches("VERSION"))
		assert.True(t, u.Matches("build/version.txt"))
		assert.False(t, u.Matches("README.md"))
	})

	t.Run("should return the first non-empty line", func(t *testing.T) {
		t.Parallel()

		// given
		u := plaintext.NewPlainTextUpdaterRepository()

		// when
		version, err := u.ReadVersion([]byte("\n  3.2.1  \nignored\n"))

		// then
		require.NoError(t, err)
		assert.Equal(t, "3.2.1", version)
	})

	t.Run("should fail on an empty file", func(t *testing.T) {
		t.Parallel()

		// given
		u := plaintext.NewPlainTextUpdaterRepository()

		// when
		_, err := u.ReadVersion([]byte(" \n\n"))

		// then
		require.ErrorIs(t, err, repositories.ErrVersionNotFound)
	})
}
