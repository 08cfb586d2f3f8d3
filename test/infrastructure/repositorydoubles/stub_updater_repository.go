//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// SpyUpdaterRepository implements repositories.VersionUpdaterRepository as a configurable spy.
type SpyUpdaterRepository struct {
	// --- identity ---
	UpdaterName string

	// --- Matches ---
	Suffix string

	// --- ReadVersion ---
	Version     string
	ReadErr     error
	ReadContent [][]byte
}

var _ repositories.VersionUpdaterRepository = (*SpyUpdaterRepository)(nil)

func (u *SpyUpdaterRepository) Name() string { return u.UpdaterName }

func (u *SpyUpdaterRepository) Matches(filename string) bool {
	return u.Suffix != "" && strings.HasSuffix(filename, u.Suffix)
}

func (u *SpyUpdaterRepository) ReadVersion(content []byte) (string, error) {
	u.ReadContent = append(u.ReadContent, content)
	return u.Version, u.ReadErr
}
