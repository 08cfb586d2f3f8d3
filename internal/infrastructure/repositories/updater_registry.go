package repositories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	domainRepos "github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// ErrUnresolvedUpdater is returned when no registered updater can read a file.
var ErrUnresolvedUpdater = errors.New("no updater can read file")

// UpdaterRegistry manages all registered version updater implementations.
// Registration order decides which updater wins when several match a file.
type UpdaterRegistry struct {
	updaters []domainRepos.VersionUpdaterRepository
	byName   map[string]domainRepos.VersionUpdaterRepository
}

// NewUpdaterRegistry creates an empty updater registry.
func NewUpdaterRegistry() *UpdaterRegistry {
	return &UpdaterRegistry{
		byName: make(map[string]domainRepos.VersionUpdaterRepository),
	}
}

// Register adds an updater under its name, replacing any previous one.
func (r *UpdaterRegistry) Register(u domainRepos.VersionUpdaterRepository) {
	if _, exists := r.byName[u.Name()]; !exists {
		r.updaters = append(r.updaters, u)
	} else {
		for i, existing := range r.updaters {
			if existing.Name() == u.Name() {
				r.updaters[i] = u
			}
		}
	}
	r.byName[u.Name()] = u
}

// Get returns the updater with the given name, or nil if not registered.
func (r *UpdaterRegistry) Get(name string) domainRepos.VersionUpdaterRepository {
	return r.byName[name]
}

// All returns every registered updater in registration order.
func (r *UpdaterRegistry) All() []domainRepos.VersionUpdaterRepository {
	result := make([]domainRepos.VersionUpdaterRepository, len(r.updaters))
	copy(result, r.updaters)
	return result
}

// Names returns the sorted list of registered updater names.
func (r *UpdaterRegistry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match returns the first updater that can read filename, or nil.
func (r *UpdaterRegistry) Match(filename string) domainRepos.VersionUpdaterRepository {
	for _, u := range r.updaters {
		if u.Matches(filename) {
			return u
		}
	}
	return nil
}

// Resolve picks the updater for a bump file:
//   - "type" selects a built-in updater by name;
//   - "updater" naming a registered updater selects it;
//   - "updater" as a script path must exist under root; the built-in whose
//     name appears in the script name wins, otherwise the file name decides;
//   - with neither set, the file name decides.
//
// Custom scripts are never executed.
func (r *UpdaterRegistry) Resolve(root string, file entities.BumpFile) (domainRepos.VersionUpdaterRepository, error) {
	if file.Type != "" {
		if u := r.Get(file.Type); u != nil {
			return u, nil
		}
		return nil, fmt.Errorf("%w: unknown type %q", ErrUnresolvedUpdater, file.Type)
	}

	if file.Updater != "" {
		if u := r.Get(file.Updater); u != nil {
			return u, nil
		}
		return r.resolveScript(root, file)
	}

	if u := r.Match(file.Filename); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("%w %q, set \"type\" or \"updater\"", ErrUnresolvedUpdater, file.Filename)
}

func (r *UpdaterRegistry) resolveScript(root string, file entities.BumpFile) (domainRepos.VersionUpdaterRepository, error) {
	script := file.Updater
	if !filepath.IsAbs(script) {
		script = filepath.Join(root, script)
	}
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("custom updater %q: %w", file.Updater, err)
	}

	base := strings.ToLower(filepath.Base(file.Updater))
	for _, u := range r.updaters {
		if strings.Contains(base, u.Name()) {
			return u, nil
		}
	}

	if u := r.Match(file.Filename); u != nil {
		return u, nil
	}
	return nil, fmt.Errorf("%w %q with custom updater %q", ErrUnresolvedUpdater, file.Filename, file.Updater)
}
