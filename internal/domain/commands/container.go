package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []any{
		NewCheckCommand,
		NewRenderCommand,
		NewSectionsCommand,
		NewInitCommand,
		NewShowCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []any{
		func(impl *CheckCommand) Check { return impl },
		func(impl *RenderCommand) Render { return impl },
		func(impl *SectionsCommand) Sections { return impl },
		func(impl *InitCommand) Init { return impl },
		func(impl *ShowCommand) Show { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
