package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// GoGitRepository implements repositories.GitRepository with go-git, so no
// git binary is needed.
type GoGitRepository struct{}

// NewGoGitRepository creates a new go-git backed repository reader.
func NewGoGitRepository() repositories.GitRepository {
	return &GoGitRepository{}
}

// Remote returns the parsed first URL of the named remote.
func (r *GoGitRepository) Remote(_ context.Context, dir, name string) (entities.RemoteInfo, error) {
	repo, err := open(dir)
	if err != nil {
		return entities.RemoteInfo{}, err
	}

	remote, err := repo.Remote(name)
	if err != nil {
		return entities.RemoteInfo{}, fmt.Errorf("failed to read remote %q: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return entities.RemoteInfo{}, fmt.Errorf("remote %q has no URL", name)
	}

	logger.Debugf("Remote %q points to %s", name, urls[0])
	return entities.ParseRemoteURL(urls[0])
}

// Tags returns the short names of every tag, lightweight and annotated.
func (r *GoGitRepository) Tags(_ context.Context, dir string) ([]string, error) {
	repo, err := open(dir)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var names []string
	if walkErr := iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	}); walkErr != nil {
		return nil, fmt.Errorf("failed to walk tags: %w", walkErr)
	}

	logger.Debugf("Found %d tags in %s", len(names), dir)
	return names, nil
}

func open(dir string) (*gogit.Repository, error) {
	//nolint:exhaustruct // only DetectDotGit is relevant
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}
	return repo, nil
}
