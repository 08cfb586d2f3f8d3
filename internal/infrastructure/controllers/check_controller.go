package controllers

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

//nolint:gochecknoglobals // terminal styles
var (
	okMark     = color.New(color.FgGreen, color.Bold).SprintFunc()
	failMark   = color.New(color.FgRed, color.Bold).SprintFunc()
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	warnLabel  = color.New(color.FgYellow, color.Bold).SprintFunc()
	fieldText  = color.New(color.FgCyan).SprintFunc()
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check",
		Short: "Validate the release configuration and its bump files",
		Long: `Validate the release configuration: type tags must be unique, templates
may only use the placeholders their field supports, and every bump file must
exist and hold the same semantic version.

Exits with a non-zero status when any error is found.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the check-specific flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-files", false, "Only validate the configuration, do not read bump files")
	cmd.Flags().Int("concurrency", 4, "Number of bump files read in parallel") //nolint:mnd // default
}

// Execute runs the check and prints the report.
func (it *CheckController) Execute(cmd *cobra.Command, _ []string) error {
	skipFiles, _ := cmd.Flags().GetBool("skip-files")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	report, err := it.command.Execute(context.Background(), commands.CheckOptions{
		SourceOptions: sourceOptions(cmd),
		SkipFiles:     skipFiles,
		Concurrency:   concurrency,
	})
	if report != nil {
		printReport(cmd.OutOrStdout(), report)
	}
	if err != nil {
		logger.Errorf("Check failed: %v", err)
		return err
	}
	return nil
}

func printReport(w io.Writer, report *entities.CheckReport) {
	_, _ = fmt.Fprintf(w, "Config: %s\n", report.Source)

	for _, target := range report.Targets {
		if target.Err != nil {
			_, _ = fmt.Fprintf(w, "  %s %s %s\n", failMark("✗"), fieldText(target.Field), target.File.Filename)
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s %s  %s (%s)\n",
			okMark("✓"), fieldText(target.Field), target.File.Filename, target.Version, target.Updater)
	}

	for _, issue := range report.Issues {
		label := warnLabel("warning")
		if issue.Severity == entities.SeverityError {
			label = errorLabel("error")
		}
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", label, fieldText(issue.Field), issue.Message)
	}

	errs, warns := report.Counts()
	_, _ = fmt.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warns)
}
