package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command commands.Init
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init) *InitController {
	return &InitController{command: command}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Write a configuration with the default settings",
		Long: `Write a .versionrc.json holding the default commit types and URL templates.
Top-level files that hold a readable version (VERSION, package.json, ...) are
added as bump files unless --no-detect is given.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the init-specific flags to the given Cobra command.
func (it *InitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force", false, "Overwrite an existing configuration")
	cmd.Flags().String("filename", commands.DefaultConfigName, "Name of the file to write (.yaml writes YAML)")
	cmd.Flags().Bool("no-detect", false, "Do not detect bump files")
	cmd.Flags().StringSlice("bump-file", nil, "Bump file to declare (repeatable)")
}

// Execute writes the configuration.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	filename, _ := cmd.Flags().GetString("filename")
	noDetect, _ := cmd.Flags().GetBool("no-detect")
	bumpFiles, _ := cmd.Flags().GetStringSlice("bump-file")

	path, err := it.command.Execute(context.Background(), commands.InitOptions{
		Dir:       sourceOptions(cmd).Dir,
		Filename:  filename,
		Force:     force,
		Detect:    !noDetect,
		BumpFiles: bumpFiles,
	})
	if err != nil {
		logger.Errorf("Init failed: %v", err)
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
