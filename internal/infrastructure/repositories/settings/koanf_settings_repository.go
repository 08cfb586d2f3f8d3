package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	jsonparser "github.com/knadh/koanf/parsers/json"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

const (
	// EnvPrefix is the prefix of environment variables overriding scalar keys,
	// e.g. VERSIONRC_COMMITURLFORMAT.
	EnvPrefix = "VERSIONRC_"

	configFileMode = 0o644
)

// ErrUnsupportedFormat is returned for configuration files that cannot be
// read without executing them (.versionrc.js) or cannot be written safely.
var ErrUnsupportedFormat = errors.New("unsupported config format")

type format int

const (
	formatJSON format = iota
	formatYAML
	formatPackageJSON
	formatScript
)

// KoanfSettingsRepository loads settings with priority:
// environment variables > config file > defaults.
type KoanfSettingsRepository struct{}

// NewKoanfSettingsRepository creates a new koanf backed settings repository.
func NewKoanfSettingsRepository() repositories.SettingsRepository {
	return &KoanfSettingsRepository{}
}

// Load reads the configuration at path layered over the defaults.
func (r *KoanfSettingsRepository) Load(path string) (*entities.Settings, error) {
	k := koanf.New(".")
	loadDefaults(k)

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	if err := loadEnvironment(k); err != nil {
		return nil, err
	}

	var settings entities.Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	settings.Source = path
	return &settings, nil
}

// Save writes settings to path atomically. JSON is used unless the file
// has a YAML extension.
func (r *KoanfSettingsRepository) Save(path string, settings *entities.Settings) error {
	var (
		data []byte
		err  error
	)

	switch detectFormat(path) {
	case formatYAML:
		data, err = yaml.Marshal(settings)
	case formatJSON:
		data, err = json.MarshalIndent(settings, "", "  ")
		data = append(data, '\n')
	case formatPackageJSON, formatScript:
		return fmt.Errorf("%w: refusing to write %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if writeErr := renameio.WriteFile(path, data, configFileMode); writeErr != nil {
		return fmt.Errorf("failed to write config %s: %w", path, writeErr)
	}
	logger.Debugf("Wrote %d bytes to %s", len(data), path)
	return nil
}

func detectFormat(path string) format {
	base := strings.ToLower(filepath.Base(path))
	if base == "package.json" {
		return formatPackageJSON
	}
	switch filepath.Ext(base) {
	case ".yaml", ".yml":
		return formatYAML
	case ".js", ".cjs", ".mjs", ".ts":
		return formatScript
	default:
		return formatJSON
	}
}

func loadDefaults(k *koanf.Koanf) {
	for key, value := range entities.DefaultValues() {
		_ = k.Set(key, value)
	}
}

func loadFile(k *koanf.Koanf, path string) error {
	switch detectFormat(path) {
	case formatScript:
		return fmt.Errorf(
			"%w: %s is executable JavaScript, convert it to .versionrc.json or .versionrc.yaml",
			ErrUnsupportedFormat, path,
		)
	case formatYAML:
		if err := k.Load(file.Provider(path), yamlparser.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case formatJSON:
		if err := k.Load(file.Provider(path), jsonparser.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case formatPackageJSON:
		return loadPackageJSON(k, path)
	}
	logger.Debugf("Loaded config from %s", path)
	return nil
}

func loadPackageJSON(k *koanf.Koanf, path string) error {
	pkg := koanf.New(".")
	if err := pkg.Load(file.Provider(path), jsonparser.Parser()); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	if !pkg.Exists(entities.PackageJSONKey) {
		return fmt.Errorf("%w: %s has no %q key", entities.ErrConfigNotFound, path, entities.PackageJSONKey)
	}
	if err := k.Merge(pkg.Cut(entities.PackageJSONKey)); err != nil {
		return fmt.Errorf("failed to merge %q from %s: %w", entities.PackageJSONKey, path, err)
	}
	logger.Debugf("Loaded config from %s (%q key)", path, entities.PackageJSONKey)
	return nil
}

func loadEnvironment(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform maps VERSIONRC_COMMITURLFORMAT to commitUrlFormat. Variables
// that do not name a scalar key are ignored.
func envTransform(name string) string {
	wanted := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	for _, key := range entities.ScalarKeys() {
		if strings.ToLower(key) == wanted {
			return key
		}
	}
	return ""
}
