package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
	"github.com/rios0rios0/versionrc/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/versionrc/internal/infrastructure/repositories"
)

const defaultConcurrency = 4

// ErrValidationFailed is returned when a check finds error-severity issues.
var ErrValidationFailed = errors.New("configuration is invalid")

// Check is the interface for the check command.
type Check interface {
	Execute(ctx context.Context, opts CheckOptions) (*entities.CheckReport, error)
}

// CheckOptions holds runtime options for a single check.
type CheckOptions struct {
	SourceOptions
	SkipFiles   bool // Only validate the configuration, do not read bump files
	Concurrency int  // Bump files read in parallel, defaults to 4
}

// CheckCommand validates a configuration and the bump files it declares.
type CheckCommand struct {
	settingsRepository repositories.SettingsRepository
	updaterRegistry    *infraRepos.UpdaterRegistry
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(
	settingsRepository repositories.SettingsRepository,
	updaterRegistry *infraRepos.UpdaterRegistry,
) *CheckCommand {
	return &CheckCommand{
		settingsRepository: settingsRepository,
		updaterRegistry:    updaterRegistry,
	}
}

// Execute loads the configuration, validates it and reads every bump file.
// The report is returned even when validation fails.
func (it *CheckCommand) Execute(ctx context.Context, opts CheckOptions) (*entities.CheckReport, error) {
	settings, err := loadSettings(it.settingsRepository, opts.SourceOptions, true)
	if err != nil {
		return nil, err
	}

	report := &entities.CheckReport{
		Source: settings.Source,
		Issues: settings.Validate(),
	}

	if !opts.SkipFiles {
		report.Targets = it.inspectTargets(ctx, opts.Root(), settings.Targets(), opts.Concurrency)
		for _, target := range report.Targets {
			if target.Err != nil {
				report.Issues = append(report.Issues, targetIssue(target))
			}
		}
		report.Issues = append(report.Issues, entities.VersionIssues(report.Targets)...)
	}

	errCount, warnCount := report.Counts()
	logger.Debugf("Check of %s: %d errors, %d warnings", report.Source, errCount, warnCount)
	if errCount > 0 {
		return report, fmt.Errorf("%w: %d error(s)", ErrValidationFailed, errCount)
	}
	return report, nil
}

// inspectTargets reads every target concurrently. Each goroutine owns one
// slot of the result slice.
func (it *CheckCommand) inspectTargets(
	ctx context.Context,
	root string,
	targets []entities.BumpTarget,
	concurrency int,
) []entities.BumpTarget {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i := range targets {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				targets[i].Err = ctxErr
				return nil
			}
			targets[i] = it.inspect(root, targets[i])
			return nil
		})
	}
	_ = group.Wait()
	return targets
}

func (it *CheckCommand) inspect(root string, target entities.BumpTarget) entities.BumpTarget {
	updater, err := it.updaterRegistry.Resolve(root, target.File)
	if err != nil {
		target.Err = err
		return target
	}
	target.Updater = updater.Name()

	content, err := os.ReadFile(filepath.Join(root, target.File.Filename))
	if err != nil {
		target.Err = err
		return target
	}

	version, err := updater.ReadVersion(content)
	if err != nil {
		target.Err = err
		return target
	}

	logger.Debugf("[%s] %s holds version %s", updater.Name(), target.File.Filename, version)
	target.Version = version
	return target
}

func targetIssue(target entities.BumpTarget) entities.Issue {
	message := fmt.Sprintf("%s: %v", target.File.Filename, target.Err)
	if errors.Is(target.Err, fs.ErrNotExist) && target.Updater != "" {
		message = fmt.Sprintf("file %q does not exist", target.File.Filename)
	}
	return entities.Issue{
		Severity: entities.SeverityError,
		Field:    target.Field,
		Message:  message,
	}
}
