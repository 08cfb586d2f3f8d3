package controllers

import (
	"bufio"
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// maxHeaderLine bounds a single line read from standard input.
const maxHeaderLine = 16 * 1024 * 1024

// SectionsController handles the "sections" subcommand.
type SectionsController struct {
	command commands.Sections
}

// NewSectionsController creates a new SectionsController.
func NewSectionsController(command commands.Sections) *SectionsController {
	return &SectionsController{command: command}
}

// GetBind returns the Cobra command metadata for the sections controller.
func (it *SectionsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sections [header...]",
		Short: "Show the changelog section of each commit header",
		Long: `Classify conventional commit headers against the configured types and
print them grouped by changelog section. Headers are read from the arguments,
or one per line from standard input when no argument is given.

  git log --format=%s v1.0.0..HEAD | versionrc sections`,
	}
}

// AddFlags adds the sections-specific flags to the given Cobra command.
func (it *SectionsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("hidden", false, "Also list commits that would be hidden")
}

// Execute classifies the headers and prints the groups.
func (it *SectionsController) Execute(cmd *cobra.Command, args []string) error {
	showHidden, _ := cmd.Flags().GetBool("hidden")

	headers := args
	if len(headers) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxHeaderLine)
		for scanner.Scan() {
			headers = append(headers, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read commit headers: %w", err)
		}
	}

	result, err := it.command.Execute(context.Background(), commands.SectionsOptions{
		SourceOptions: sourceOptions(cmd),
		Headers:       headers,
	})
	if err != nil {
		logger.Errorf("Classification failed: %v", err)
		return err
	}

	w := cmd.OutOrStdout()
	for _, group := range result.Groups {
		_, _ = fmt.Fprintf(w, "### %s\n\n", group.Section)
		for _, header := range group.Headers {
			_, _ = fmt.Fprintf(w, "* %s\n", describe(header))
		}
		_, _ = fmt.Fprintln(w)
	}

	if showHidden && len(result.Hidden) > 0 {
		_, _ = fmt.Fprintf(w, "### (hidden)\n\n")
		for _, c := range result.Hidden {
			_, _ = fmt.Fprintf(w, "* %s\n", c.Header.Raw)
		}
		_, _ = fmt.Fprintln(w)
	}
	return nil
}

func describe(header entities.CommitHeader) string {
	if header.Scope == "" {
		return header.Subject
	}
	return fmt.Sprintf("**%s:** %s", header.Scope, header.Subject)
}
