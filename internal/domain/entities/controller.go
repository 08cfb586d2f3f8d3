package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra metadata a controller is registered under.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
}

// Controller is a CLI entry point bound to a single subcommand.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

// FlagController is implemented by controllers that own subcommand flags.
type FlagController interface {
	Controller
	AddFlags(cmd *cobra.Command)
}
