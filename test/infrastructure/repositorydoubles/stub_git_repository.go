//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- Remote ---
	RemoteInfo  entities.RemoteInfo
	RemoteErr   error
	RemoteCalls []string

	// --- Tags ---
	TagNames  []string
	TagsErr   error
	TagsCalls int
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (g *SpyGitRepository) Remote(_ context.Context, _, name string) (entities.RemoteInfo, error) {
	g.RemoteCalls = append(g.RemoteCalls, name)
	return g.RemoteInfo, g.RemoteErr
}

func (g *SpyGitRepository) Tags(_ context.Context, _ string) ([]string, error) {
	g.TagsCalls++
	return g.TagNames, g.TagsErr
}
