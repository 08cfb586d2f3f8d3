package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	for _, constructor := range []any{
		NewCheckController,
		NewRenderController,
		NewSectionsController,
		NewInitController,
		NewShowController,
		NewControllers,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	checkController *CheckController,
	renderController *RenderController,
	sectionsController *SectionsController,
	initController *InitController,
	showController *ShowController,
) *[]entities.Controller {
	return &[]entities.Controller{
		checkController,
		renderController,
		sectionsController,
		initController,
		showController,
	}
}
