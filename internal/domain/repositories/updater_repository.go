package repositories

import "errors"

// ErrVersionNotFound is returned when a file holds no recognisable version.
var ErrVersionNotFound = errors.New("version not found")

// VersionUpdaterRepository reads the version string held by one kind of
// bump file (plain text, package.json, a Python module, ...).
type VersionUpdaterRepository interface {
	// Name returns the updater identifier (e.g. "plain-text", "json").
	Name() string

	// Matches returns true if the updater knows how to read the given file name.
	Matches(filename string) bool

	// ReadVersion extracts the version from the file contents.
	ReadVersion(content []byte) (string, error)
}
