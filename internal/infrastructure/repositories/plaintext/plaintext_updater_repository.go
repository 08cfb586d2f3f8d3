package plaintext

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// PlainTextUpdaterRepository reads files whose whole content is the version,
// such as VERSION or version.txt.
type PlainTextUpdaterRepository struct{}

// NewPlainTextUpdaterRepository creates a new plain-text version reader.
func NewPlainTextUpdaterRepository() repositories.VersionUpdaterRepository {
	return &PlainTextUpdaterRepository{}
}

func (u *PlainTextUpdaterRepository) Name() string { return entities.PlainTextType }

// Matches returns true for VERSION, version.txt and .version style files.
func (u *PlainTextUpdaterRepository) Matches(filename string) bool {
	switch strings.ToLower(filepath.Base(filename)) {
	case "version", "version.txt", ".version":
		return true
	default:
		return false
	}
}

// ReadVersion returns the first non-empty line of the file.
func (u *PlainTextUpdaterRepository) ReadVersion(content []byte) (string, error) {
	for _, line := range strings.Split(string(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, nil
		}
	}
	return "", fmt.Errorf("%w: file is empty", repositories.ErrVersionNotFound)
}
