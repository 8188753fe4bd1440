package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func NewListMessagesTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("list_messages",
		mcp.WithDescription("List the active project's conversation in order, including any unpersisted error turns from failed generations."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		state := store.State()
		if state.ActiveProjectID == "" {
			return mcp.NewToolResultError("No active project. Use create_project or switch_project first."), nil
		}

		messageList := make([]map[string]any, len(state.Messages))
		for i, message := range state.Messages {
			entry := map[string]any{
				"id":         message.ID,
				"role":       message.Role,
				"content":    message.Content,
				"created_at": message.CreatedAt,
			}
			if message.ComponentName != "" {
				entry["component_name"] = message.ComponentName
			}
			if message.Error != "" {
				entry["error"] = message.Error
				entry["is_retryable"] = message.IsRetryable
			}
			messageList[i] = entry
		}

		result := map[string]any{
			"project_id": state.ActiveProjectID,
			"messages":   messageList,
			"count":      len(messageList),
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Messages listed successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
