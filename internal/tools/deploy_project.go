package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/deployment"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type deployProjectTool struct {
	store    *workspace.Store
	deployer *deployment.Deployer
}

func NewDeployProjectTool(store *workspace.Store, deployer *deployment.Deployer) *deployProjectTool {
	return &deployProjectTool{
		store:    store,
		deployer: deployer,
	}
}

func (d *deployProjectTool) GetTool() mcp.Tool {
	return mcp.NewTool("deploy_project",
		mcp.WithDescription("Run the deployment pipeline for the active project. Each stage appends a log entry; on success the tool returns the public preview URL. A small fraction of runs fails with a build error, leaving the deployment failed with its error recorded."),
	)
}

func (d *deployProjectTool) GetHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := d.deployer.Deploy(ctx)
		if err != nil {
			switch {
			case errors.Is(err, workspace.ErrNoActiveProject):
				return mcp.NewToolResultError("No active project. Use create_project or switch_project first."), nil
			case errors.Is(err, deployment.ErrCancelled):
				return mcp.NewToolResultError(deployment.CancelledMessage), nil
			case errors.Is(err, deployment.ErrInProgress):
				return mcp.NewToolResultError("A deployment is already in progress"), nil
			default:
				return mcp.NewToolResultError(fmt.Sprintf("Deployment failed: %v", err)), nil
			}
		}

		state := d.store.State()
		result := map[string]any{
			"url":     url,
			"status":  "success",
			"message": "Deployment successful!",
		}
		if state.Deployment != nil {
			result["deployment_id"] = state.Deployment.ID
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Project deployed successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}
}
