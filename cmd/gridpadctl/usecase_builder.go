package main

import (
	"github.com/gridpad/gridpad/adapters/store/slot"
	"github.com/gridpad/gridpad/internal/llm"
	"github.com/gridpad/gridpad/usecase/layout"
	"github.com/gridpad/gridpad/usecase/workspace"
	"github.com/spf13/cobra"
)

// buildLayoutUseCase creates the layout use case with a scope-bound
// repository. The LLM client is optional; describe falls back without one.
func buildLayoutUseCase(cmd *cobra.Command) (*layout.UseCase, func() error, error) {
	backend, closer, err := buildBackend(cmd)
	if err != nil {
		return nil, closer, err
	}
	uc := &layout.UseCase{
		Repos: &layout.Repos{
			Layout: slot.NewLayoutRepository(backend, getScope(cmd)),
		},
	}
	if client, err := llm.NewOpenAIClient("", ""); err == nil {
		uc.LLM = client
	}
	return uc, closer, nil
}

// buildWorkspaceUseCase creates the workspace use case with a scope-bound
// repository.
func buildWorkspaceUseCase(cmd *cobra.Command) (*workspace.UseCase, func() error, error) {
	backend, closer, err := buildBackend(cmd)
	if err != nil {
		return nil, closer, err
	}
	uc := &workspace.UseCase{
		Repos: &workspace.Repos{
			Workspace: slot.NewWorkspaceRepository(backend, getScope(cmd)),
		},
	}
	return uc, closer, nil
}
