//go:build unit

package python_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	"github.com/rios0rios0/versionrc/internal/infrastructure/repositories/python"
)

func TestPythonUpdaterRepository(t *testing.T) {
	t.Parallel()

	t.Run("should match python modules only", func(t *testing.T) {
		t.Parallel()

		// given
		u := python.NewPythonUpdaterRepository()

		// when / then
		assert.Equal(t, "python", u.Name())
		assert.True(t, u.Matches("cgtwq/__version__.py"))
		assert.False(t, u.Matches("setup.cfg"))
	})

	t.Run("should read the __version__ assignment", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("# -*- coding=UTF-8 -*-\n\"\"\"Version info.\"\"\"\n\n__version__ = '3.2.1'\n")
		u := python.NewPythonUpdaterRepository()

		// when
		version, err := u.ReadVersion(content)

		// then
		require.NoError(t, err)
		assert.Equal(t, "3.2.1", version)
	})

	t.Run("should read annotated and unicode assignments", func(t *testing.T) {
		t.Parallel()

		// given
		u := python.NewPythonUpdaterRepository()

		// when
		annotated, annotatedErr := u.ReadVersion([]byte(`__version__: str = "1.0.0"`))
		unicode, unicodeErr := u.ReadVersion([]byte(`__version__ = u"0.9.0"`))

		// then
		require.NoError(t, annotatedErr)
		require.NoError(t, unicodeErr)
		assert.Equal(t, "1.0.0", annotated)
		assert.Equal(t, "0.9.0", unicode)
	})

	t.Run("should ignore indented assignments", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("def f():\n    __version__ = '1.0.0'\n")
		u := python.NewPythonUpdaterRepository()

		// when
		_, err := u.ReadVersion(content)

		// then
		require.ErrorIs(t, err, repositories.ErrVersionNotFound)
	})
}
