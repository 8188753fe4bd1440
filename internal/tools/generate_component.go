package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/generation"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type generateComponentTool struct {
	store     *workspace.Store
	generator *generation.Generator
}

type GenerateComponentArguments struct {
	Prompt string `json:"prompt" validate:"required"`
}

func NewGenerateComponentTool(store *workspace.Store, generator *generation.Generator) *generateComponentTool {
	return &generateComponentTool{
		store:     store,
		generator: generator,
	}
}

func (g *generateComponentTool) GetTool() mcp.Tool {
	return mcp.NewTool("generate_component",
		mcp.WithDescription("Generate a UI component for the active project from a natural-language prompt. The prompt is validated, the component is picked from the catalog by keyword, saved with an initial version and made current. Only one generation can run at a time; use cancel_generation to abort."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("What to build (10-2000 characters). Keywords steer the result: hero/landing/header, card/feature/grid, stat/number/metric."),
		),
	)
}

func (g *generateComponentTool) GetHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args GenerateComponentArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		generated, err := g.generator.Generate(ctx, args.Prompt)
		if err != nil {
			switch {
			case errors.Is(err, generation.ErrCancelled):
				return mcp.NewToolResultError("Generation cancelled"), nil
			case errors.Is(err, generation.ErrInProgress):
				return mcp.NewToolResultError("A generation is already in progress"), nil
			default:
				return mcp.NewToolResultError(err.Error()), nil
			}
		}

		component, ok := g.store.CurrentComponent()
		if !ok {
			return mcp.NewToolResultError("Generation finished but no component is current"), nil
		}

		result := map[string]any{
			"component_id":   component.ID,
			"component_name": generated.ComponentName,
			"code":           generated.Code,
			"message":        "Component generated and saved as version 1",
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Component generated successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}
}
