package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/diff"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
)

type CompareVersionsArguments struct {
	OldVersionID string `json:"old_version_id" validate:"required"`
	NewVersionID string `json:"new_version_id" validate:"required"`
}

func NewCompareVersionsTool(versionService services.VersionService) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("compare_versions",
		mcp.WithDescription("Compare two saved versions line by line. Lines are paired by position; both sides of the result always have equal length, with empty filler rows where one side is shorter."),
		mcp.WithString("old_version_id",
			mcp.Required(),
			mcp.Description("Version shown on the left (before) side"),
		),
		mcp.WithString("new_version_id",
			mcp.Required(),
			mcp.Description("Version shown on the right (after) side"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CompareVersionsArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		oldVersion, err := versionService.GetVersionByID(args.OldVersionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Version not found: %s", args.OldVersionID)), nil
		}
		newVersion, err := versionService.GetVersionByID(args.NewVersionID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Version not found: %s", args.NewVersionID)), nil
		}

		comparison := diff.Compute(oldVersion.Code, newVersion.Code)

		result := map[string]any{
			"old_version": map[string]any{
				"id":             oldVersion.ID,
				"version_number": oldVersion.VersionNumber,
				"label":          oldVersion.Label,
			},
			"new_version": map[string]any{
				"id":             newVersion.ID,
				"version_number": newVersion.VersionNumber,
				"label":          newVersion.Label,
			},
			"diff": comparison,
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(fmt.Sprintf("Versions compared: %d added, %d removed: ", comparison.AddedCount, comparison.RemovedCount)),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
