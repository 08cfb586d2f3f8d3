package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// Show is the interface for the show command.
type Show interface {
	Execute(ctx context.Context, opts ShowOptions) ([]byte, error)
}

// ShowOptions holds runtime options for printing the effective configuration.
type ShowOptions struct {
	SourceOptions
	Format string // "json" (default) or "yaml"
}

// ShowCommand prints the configuration after defaults and environment
// overrides have been applied.
type ShowCommand struct {
	settingsRepository repositories.SettingsRepository
}

// NewShowCommand creates a new ShowCommand.
func NewShowCommand(settingsRepository repositories.SettingsRepository) *ShowCommand {
	return &ShowCommand{settingsRepository: settingsRepository}
}

// Execute encodes the effective settings.
func (it *ShowCommand) Execute(_ context.Context, opts ShowOptions) ([]byte, error) {
	settings, err := loadSettings(it.settingsRepository, opts.SourceOptions, false)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(opts.Format) {
	case "", "json":
		data, marshalErr := json.MarshalIndent(settings, "", "  ")
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode config: %w", marshalErr)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, marshalErr := yaml.Marshal(settings)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode config: %w", marshalErr)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected json or yaml", opts.Format)
	}
}
