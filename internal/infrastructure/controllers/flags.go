package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
)

// sourceOptions reads the global --config and --dir flags.
func sourceOptions(cmd *cobra.Command) commands.SourceOptions {
	configPath, _ := cmd.Flags().GetString("config")
	dir, _ := cmd.Flags().GetString("dir")
	return commands.SourceOptions{ConfigPath: configPath, Dir: dir}
}
