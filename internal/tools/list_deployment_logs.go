package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func NewListDeploymentLogsTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("list_deployment_logs",
		mcp.WithDescription("List the log entries a deployment produced, oldest first. Defaults to the most recent deployment in this workspace."),
		mcp.WithString("deployment_id",
			mcp.Description("Deployment whose logs to list (default: the current deployment)"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deploymentID := request.GetString("deployment_id", "")
		if deploymentID == "" {
			current := store.State().Deployment
			if current == nil {
				return mcp.NewToolResultError("No deployment yet. Pass deployment_id or run deploy_project first."), nil
			}
			deploymentID = current.ID
		}

		logs, err := store.DeploymentService().ListLogsByDeployment(deploymentID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing deployment logs: %v", err)), nil
		}

		logList := make([]map[string]any, len(logs))
		for i, entry := range logs {
			logList[i] = map[string]any{
				"type":       entry.LogType,
				"message":    entry.Message,
				"created_at": entry.CreatedAt,
			}
		}

		result := map[string]any{
			"deployment_id": deploymentID,
			"logs":          logList,
			"count":         len(logList),
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Deployment logs listed successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
