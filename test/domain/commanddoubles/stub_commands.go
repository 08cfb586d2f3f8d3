//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/versionrc/internal/domain/commands"
	"github.com/rios0rios0/versionrc/internal/domain/entities"
)

// StubCheckCommand is a stub implementation of commands.Check.
type StubCheckCommand struct {
	ExecuteCallCount int
	Report           *entities.CheckReport
	ExecuteErr       error
	LastOpts         commands.CheckOptions
}

var _ commands.Check = (*StubCheckCommand)(nil)

func (s *StubCheckCommand) Execute(_ context.Context, opts commands.CheckOptions) (*entities.CheckReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubRenderCommand is a stub implementation of commands.Render.
type StubRenderCommand struct {
	ExecuteCallCount int
	Output           string
	ExecuteErr       error
	LastOpts         commands.RenderOptions
}

var _ commands.Render = (*StubRenderCommand)(nil)

func (s *StubRenderCommand) Execute(_ context.Context, opts commands.RenderOptions) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Output, s.ExecuteErr
}

// StubSectionsCommand is a stub implementation of commands.Sections.
type StubSectionsCommand struct {
	ExecuteCallCount int
	Result           *commands.SectionsResult
	ExecuteErr       error
	LastOpts         commands.SectionsOptions
}

var _ commands.Sections = (*StubSectionsCommand)(nil)

func (s *StubSectionsCommand) Execute(
	_ context.Context,
	opts commands.SectionsOptions,
) (*commands.SectionsResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.Result == nil && s.ExecuteErr == nil {
		return &commands.SectionsResult{}, nil
	}
	return s.Result, s.ExecuteErr
}
