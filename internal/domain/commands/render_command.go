package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
)

const defaultRemote = "origin"

// Render is the interface for the render command.
type Render interface {
	Execute(ctx context.Context, opts RenderOptions) (string, error)
}

// RenderOptions holds runtime options for rendering one template.
type RenderOptions struct {
	SourceOptions
	Kind   entities.TemplateKind
	Values map[string]string // Explicit values, they win over anything detected
	Remote string            // Remote used for host/owner/repository, defaults to origin
	NoGit  bool              // Do not look at the Git repository at all
}

// RenderCommand expands a URL or message template from the configuration.
type RenderCommand struct {
	settingsRepository repositories.SettingsRepository
	gitRepository      repositories.GitRepository
}

// NewRenderCommand creates a new RenderCommand.
func NewRenderCommand(
	settingsRepository repositories.SettingsRepository,
	gitRepository repositories.GitRepository,
) *RenderCommand {
	return &RenderCommand{
		settingsRepository: settingsRepository,
		gitRepository:      gitRepository,
	}
}

// Execute renders the requested template. Placeholders not given explicitly
// are filled from the Git repository: host, owner and repository from the
// remote; currentTag and previousTag from the two newest semver tags.
func (it *RenderCommand) Execute(ctx context.Context, opts RenderOptions) (string, error) {
	settings, err := loadSettings(it.settingsRepository, opts.SourceOptions, false)
	if err != nil {
		return "", err
	}

	tmpl, err := settings.Template(opts.Kind)
	if err != nil {
		return "", err
	}

	values := make(map[string]string)
	if len(settings.IssuePrefixes) > 0 {
		values["prefix"] = settings.IssuePrefixes[0]
	}
	if !opts.NoGit {
		it.detectValues(ctx, opts, missingNames(tmpl, opts.Values), values)
	}
	for k, v := range opts.Values {
		values[k] = v
	}

	return tmpl.Render(values)
}

func (it *RenderCommand) detectValues(
	ctx context.Context,
	opts RenderOptions,
	missing map[string]bool,
	values map[string]string,
) {
	if missing["host"] || missing["owner"] || missing["repository"] {
		remoteName := opts.Remote
		if remoteName == "" {
			remoteName = defaultRemote
		}
		remote, err := it.gitRepository.Remote(ctx, opts.Root(), remoteName)
		if err != nil {
			logger.Warnf("Could not detect repository URL: %v", err)
		} else {
			for k, v := range remote.Values() {
				values[k] = v
			}
		}
	}

	if missing["currentTag"] || missing["previousTag"] {
		tags, err := it.gitRepository.Tags(ctx, opts.Root())
		if err != nil {
			logger.Warnf("Could not list tags: %v", err)
			return
		}
		latest := entities.LatestTags(tags)
		if len(latest) > 0 {
			values["currentTag"] = latest[0]
		}
		if len(latest) > 1 {
			values["previousTag"] = latest[1]
		}
	}
}

// missingNames returns the placeholders of tmpl not present in given.
func missingNames(tmpl entities.Template, given map[string]string) map[string]bool {
	missing := make(map[string]bool)
	for _, name := range tmpl.Placeholders() {
		if _, ok := given[name]; !ok {
			missing[name] = true
		}
	}
	return missing
}
