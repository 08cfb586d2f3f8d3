package javascript

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// JSONUpdaterRepository reads the top-level "version" key of JSON manifests
// (package.json, package-lock.json, manifest.json, bower.json, ...).
type JSONUpdaterRepository struct{}

// NewJSONUpdaterRepository creates a new JSON version reader.
func NewJSONUpdaterRepository() repositories.VersionUpdaterRepository {
	return &JSONUpdaterRepository{}
}

func (u *JSONUpdaterRepository) Name() string { return entities.JSONType }

// Matches returns true for .json files.
func (u *JSONUpdaterRepository) Matches(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".json")
}

// ReadVersion decodes the manifest and returns its "version".
func (u *JSONUpdaterRepository) ReadVersion(content []byte) (string, error) {
	var manifest struct {
		Version *string `json:"version"`
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return "", fmt.Errorf("failed to parse JSON manifest: %w", err)
	}
	if manifest.Version == nil || strings.TrimSpace(*manifest.Version) == "" {
		return "", fmt.Errorf("%w: no \"version\" key", repositories.ErrVersionNotFound)
	}
	return strings.TrimSpace(*manifest.Version), nil
}
