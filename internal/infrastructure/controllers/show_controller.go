package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// ShowController handles the "show" subcommand.
type ShowController struct {
	command commands.Show
}

// NewShowController creates a new ShowController.
func NewShowController(command commands.Show) *ShowController {
	return &ShowController{command: command}
}

// GetBind returns the Cobra command metadata for the show controller.
func (it *ShowController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults and VERSIONRC_* environment
overrides have been applied.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the show-specific flags to the given Cobra command.
func (it *ShowController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "json", "Output format (json, yaml)")
}

// Execute prints the configuration.
func (it *ShowController) Execute(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")

	out, err := it.command.Execute(context.Background(), commands.ShowOptions{
		SourceOptions: sourceOptions(cmd),
		Format:        format,
	})
	if err != nil {
		logger.Errorf("Show failed: %v", err)
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
