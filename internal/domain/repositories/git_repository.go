package repositories

import (
	"context"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// GitRepository abstracts read-only access to a local Git repository.
type GitRepository interface {
	// Remote returns the parsed URL of the named remote.
	Remote(ctx context.Context, dir, name string) (entities.RemoteInfo, error)

	// Tags returns the short names of every tag in the repository.
	Tags(ctx context.Context, dir string) ([]string, error)
}
