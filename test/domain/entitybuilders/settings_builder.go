//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/versionrc/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	types        []entities.CommitType
	commitURL    string
	compareURL   string
	issueURL     string
	userURL      string
	bumpFiles    []entities.BumpFile
	packageFiles []entities.BumpFile
}

// NewSettingsBuilder creates a new settings builder starting from the defaults.
func NewSettingsBuilder() *SettingsBuilder {
	defaults := entities.DefaultSettings()
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		types:       defaults.Types,
		commitURL:   defaults.CommitURLFormat,
		compareURL:  defaults.CompareURLFormat,
		issueURL:    defaults.IssueURLFormat,
		userURL:     defaults.UserURLFormat,
	}
}

// WithTypes replaces the commit types.
func (b *SettingsBuilder) WithTypes(types ...entities.CommitType) *SettingsBuilder {
	b.types = types
	return b
}

// WithCommitURL sets the commit URL template.
func (b *SettingsBuilder) WithCommitURL(format string) *SettingsBuilder {
	b.commitURL = format
	return b
}

// WithCompareURL sets the compare URL template.
func (b *SettingsBuilder) WithCompareURL(format string) *SettingsBuilder {
	b.compareURL = format
	return b
}

// WithIssueURL sets the issue URL template.
func (b *SettingsBuilder) WithIssueURL(format string) *SettingsBuilder {
	b.issueURL = format
	return b
}

// WithUserURL sets the user URL template.
func (b *SettingsBuilder) WithUserURL(format string) *SettingsBuilder {
	b.userURL = format
	return b
}

// WithBumpFile appends a bump file.
func (b *SettingsBuilder) WithBumpFile(file entities.BumpFile) *SettingsBuilder {
	b.bumpFiles = append(b.bumpFiles, file)
	return b
}

// WithPackageFile appends a package file.
func (b *SettingsBuilder) WithPackageFile(file entities.BumpFile) *SettingsBuilder {
	b.packageFiles = append(b.packageFiles, file)
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Types = append([]entities.CommitType{}, b.types...)
	settings.CommitURLFormat = b.commitURL
	settings.CompareURLFormat = b.compareURL
	settings.IssueURLFormat = b.issueURL
	settings.UserURLFormat = b.userURL
	settings.BumpFiles = append([]entities.BumpFile{}, b.bumpFiles...)
	settings.PackageFiles = append([]entities.BumpFile{}, b.packageFiles...)
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewSettingsBuilder()
	b.types = fresh.types
	b.commitURL = fresh.commitURL
	b.compareURL = fresh.compareURL
	b.issueURL = fresh.issueURL
	b.userURL = fresh.userURL
	b.bumpFiles = nil
	b.packageFiles = nil
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		types:        append([]entities.CommitType{}, b.types...),
		commitURL:    b.commitURL,
		compareURL:   b.compareURL,
		issueURL:     b.issueURL,
		userURL:      b.userURL,
		bumpFiles:    append([]entities.BumpFile{}, b.bumpFiles...),
		packageFiles: append([]entities.BumpFile{}, b.packageFiles...),
	}
}
