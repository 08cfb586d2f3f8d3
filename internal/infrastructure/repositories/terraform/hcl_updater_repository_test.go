//go:build unit

package terraform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	"github.com/rios0rios0/versionrc/internal/infrastructure/repositories/terraform"
)

func TestHCLUpdaterRepository(t *testing.T) {
	t.Parallel()

	t.Run("should match terraform and hcl files", func(t *testing.T) {
		t.Parallel()

		// given
		u := terraform.NewHCLUpdaterRepository()

		// when / then
		assert.Equal(t, "hcl", u.Name())
		assert.True(t, u.Matches("version.tf"))
		assert.True(t, u.Matches("release.hcl"))
		assert.False(t, u.Matches("main.go"))
	})

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "top-level attribute",
			content: "version = \"1.4.0\"\nname = \"module\"\n",
		},
		{
			name:    "locals block",
			content: "locals {\n  name    = \"module\"\n  version = \"1.4.0\"\n}\n",
		},
		{
			name: "variable default",
			content: `variable "region" {
  default = "eu-west-1"
}

variable "version" {
  type    = string
  default = "1.4.0"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run("should read version from "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			u := terraform.NewHCLUpdaterRepository()

			// when
			version, err := u.ReadVersion([]byte(tt.content))

			// then
			require.NoError(t, err)
			assert.Equal(t, "1.4.0", version)
		})
	}

	t.Run("should fail when no version is declared", func(t *testing.T) {
		t.Parallel()

		// given
		u := terraform.NewHCLUpdaterRepository()

		// when
		_, err := u.ReadVersion([]byte("name = \"module\"\n"))

		// then
		require.ErrorIs(t, err, repositories.ErrVersionNotFound)
	})

	t.Run("should fail on invalid HCL", func(t *testing.T) {
		t.Parallel()

		// given
		u := terraform.NewHCLUpdaterRepository()

		// when
		_, err := u.ReadVersion([]byte("version = \n{"))

		// then
		require.Error(t, err)
	})
}
