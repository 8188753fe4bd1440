package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"github.com/rxtech-lab/workspace-mcp/internal/validation"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type CreateProjectArguments struct {
	// Required fields
	Name string `json:"name" validate:"required"`

	// Optional fields
	Framework   string `json:"framework,omitempty"`
	Description string `json:"description,omitempty"`
}

func NewCreateProjectTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("create_project",
		mcp.WithDescription("Create a new workspace project and make it the active one. The conversation and component panes are reset to the new project."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name (2-50 characters, starting with a letter or number)"),
		),
		mcp.WithString("framework",
			mcp.Description("Target framework: nextjs, react, vue or svelte (default: nextjs)"),
		),
		mcp.WithString("description",
			mcp.Description("Short description of what the project is for"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CreateProjectArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		if result := validation.ValidateProjectName(args.Name); !result.IsValid {
			return mcp.NewToolResultError(result.Errors[0]), nil
		}

		framework := args.Framework
		if framework == "" {
			framework = string(models.FrameworkNextJS)
		}
		if !models.IsValidFramework(framework) {
			return mcp.NewToolResultError("Invalid framework. Supported values: nextjs, react, vue, svelte"), nil
		}

		project, err := store.CreateProject(ctx, args.Name, models.Framework(framework), args.Description)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating project: %v", err)), nil
		}

		result := map[string]interface{}{
			"id":          project.ID,
			"name":        project.Name,
			"framework":   project.Framework,
			"description": project.Description,
			"created_at":  project.CreatedAt,
			"message":     "Project created and activated",
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Project created successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
