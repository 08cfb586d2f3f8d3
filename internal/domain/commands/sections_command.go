package commands

import (
	"context"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

// Sections is the interface for the sections command.
type Sections interface {
	Execute(ctx context.Context, opts SectionsOptions) (*SectionsResult, error)
}

// SectionsOptions holds the commit headers to classify.
type SectionsOptions struct {
	SourceOptions
	Headers []string
}

// SectionsResult is the classification of a batch of commit headers.
type SectionsResult struct {
	Groups []entities.SectionGroup
	Hidden []entities.Classification
}

// SectionsCommand shows which changelog section each commit would land in.
type SectionsCommand struct {
	settingsRepository repositories.SettingsRepository
}

// NewSectionsCommand creates a new SectionsCommand.
func NewSectionsCommand(settingsRepository repositories.SettingsRepository) *SectionsCommand {
	return &SectionsCommand{settingsRepository: settingsRepository}
}

// Execute classifies every header against the configured types.
func (it *SectionsCommand) Execute(_ context.Context, opts SectionsOptions) (*SectionsResult, error) {
	settings, err := loadSettings(it.settingsRepository, opts.SourceOptions, false)
	if err != nil {
		return nil, err
	}

	groups, hidden := settings.GroupBySection(opts.Headers)
	return &SectionsResult{Groups: groups, Hidden: hidden}, nil
}
