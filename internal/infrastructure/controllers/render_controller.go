package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// RenderController handles the "render" subcommand.
type RenderController struct {
	command commands.Render
}

// NewRenderController creates a new RenderController.
func NewRenderController(command commands.Render) *RenderController {
	return &RenderController{command: command}
}

// GetBind returns the Cobra command metadata for the render controller.
func (it *RenderController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "render <commit|compare|issue|user|release> [name=value...]",
		Short: "Expand a URL or release message template",
		Long: `Expand one of the configured templates.

Placeholders that are not given as name=value arguments are detected from
the Git repository: host, owner and repository from the remote, currentTag
and previousTag from the two newest semantic version tags.

Examples:
  versionrc render commit hash=1a2b3c4
  versionrc render compare
  versionrc render issue id=42`,
		Args: cobra.MinimumNArgs(1),
	}
}

// AddFlags adds the render-specific flags to the given Cobra command.
func (it *RenderController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("remote", "origin", "Git remote used to detect host, owner and repository")
	cmd.Flags().Bool("no-git", false, "Do not read anything from the Git repository")
}

// Execute renders the template and prints it.
func (it *RenderController) Execute(cmd *cobra.Command, args []string) error {
	kind, err := entities.ParseTemplateKind(args[0])
	if err != nil {
		return err
	}

	values, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	remote, _ := cmd.Flags().GetString("remote")
	noGit, _ := cmd.Flags().GetBool("no-git")

	out, err := it.command.Execute(context.Background(), commands.RenderOptions{
		SourceOptions: sourceOptions(cmd),
		Kind:          kind,
		Values:        values,
		Remote:        remote,
		NoGit:         noGit,
	})
	if err != nil {
		logger.Errorf("Render failed: %v", err)
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid argument %q, expected name=value", arg)
		}
		values[strings.TrimSpace(name)] = value
	}
	return values, nil
}
