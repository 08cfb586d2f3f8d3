package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PackageJSONKey is the package.json key that may hold the configuration.
const PackageJSONKey = "standard-version"

// ErrConfigNotFound is returned when no configuration file exists.
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileNames lists the recognised configuration files, in lookup order.
// package.json only counts when it carries a "standard-version" key, which
// is decided by the loader.
func ConfigFileNames() []string {
	return []string{
		".versionrc",
		".versionrc.json",
		".versionrc.yaml",
		".versionrc.yml",
		".versionrc.js",
		".versionrc.cjs",
		"package.json",
	}
}

// FindConfigFile returns the first configuration file present in dir.
func FindConfigFile(dir string) (string, error) {
	for _, name := range ConfigFileNames() {
		p := filepath.Join(dir, name)
		info, statErr := os.Stat(p)
		if statErr != nil || info.IsDir() {
			continue
		}
		return p, nil
	}
	return "", fmt.Errorf("%w in %q", ErrConfigNotFound, dir)
}
