package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type RestoreVersionArguments struct {
	VersionID string `json:"version_id" validate:"required"`
}

func NewRestoreVersionTool(store *workspace.Store, versionService services.VersionService) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("restore_version",
		mcp.WithDescription("Overwrite a component's code with one of its saved snapshots. Restoring does not record a new version; save_version first to keep the pre-restore code."),
		mcp.WithString("version_id",
			mcp.Required(),
			mcp.Description("ID of the version to restore"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RestoreVersionArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		version, err := versionService.GetVersionByID(args.VersionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Version not found: %s", args.VersionID)), nil
		}

		if err := store.RestoreVersion(ctx, args.VersionID); err != nil {
			if errors.Is(err, workspace.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Version not found: %s", args.VersionID)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error restoring version: %v", err)), nil
		}

		result := map[string]any{
			"version_id":     version.ID,
			"version_number": version.VersionNumber,
			"component_id":   version.ComponentID,
			"message":        "Component code restored to the selected snapshot",
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Version restored successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
