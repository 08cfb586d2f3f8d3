package yamlfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

const updaterName = "yaml"

// YAMLUpdaterRepository reads the top-level `version:` key of YAML
// manifests such as Chart.yaml or pubspec.yaml.
type YAMLUpdaterRepository struct{}

// NewYAMLUpdaterRepository creates a new YAML version reader.
func NewYAMLUpdaterRepository() repositories.VersionUpdaterRepository {
	return &YAMLUpdaterRepository{}
}

func (u *YAMLUpdaterRepository) Name() string { return updaterName }

// Matches returns true for .yaml and .yml files.
func (u *YAMLUpdaterRepository) Matches(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// ReadVersion returns the scalar stored under the top-level "version" key.
// The raw scalar text is used so that "1.10" is not read as a float.
func (u *YAMLUpdaterRepository) ReadVersion(content []byte) (string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("failed to parse YAML manifest: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return "", fmt.Errorf("%w: document is not a mapping", repositories.ErrVersionNotFound)
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value != "version" {
			continue
		}
		if value.Kind != yaml.ScalarNode || strings.TrimSpace(value.Value) == "" {
			break
		}
		return strings.TrimSpace(value.Value), nil
	}
	return "", fmt.Errorf("%w: no \"version\" key", repositories.ErrVersionNotFound)
}
