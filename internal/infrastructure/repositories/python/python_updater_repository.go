package python

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

const updaterName = "python"

// versionPattern matches a module level `__version__ = "1.2.3"` assignment,
// optionally type annotated.
var versionPattern = regexp.MustCompile(
	`(?m)^__version__\s*(?::\s*str\s*)?=\s*(?:u|r)?["']([^"']+)["']`,
)

// PythonUpdaterRepository reads the version from a Python module such as
// `pkg/__version__.py` or `pkg/__about__.py`.
type PythonUpdaterRepository struct{}

// NewPythonUpdaterRepository creates a new Python version reader.
func NewPythonUpdaterRepository() repositories.VersionUpdaterRepository {
	return &PythonUpdaterRepository{}
}

func (u *PythonUpdaterRepository) Name() string { return updaterName }

// Matches returns true for .py files.
func (u *PythonUpdaterRepository) Matches(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".py")
}

// ReadVersion returns the first `__version__` assignment in the module.
func (u *PythonUpdaterRepository) ReadVersion(content []byte) (string, error) {
	match := versionPattern.FindSubmatch(content)
	if match == nil {
		return "", fmt.Errorf("%w: no __version__ assignment", repositories.ErrVersionNotFound)
	}
	return strings.TrimSpace(string(match[1])), nil
}
