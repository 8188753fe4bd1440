package tools

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func setupTestStore(t *testing.T) (*workspace.Store, *gorm.DB) {
	dbService, err := services.NewSqliteDBService(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbService.Close() })

	store := workspace.NewStore(dbService.GetDB(), workspace.StaticActorResolver("testuser"))
	return store, dbService.GetDB()
}

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult, index int) string {
	t.Helper()
	require.NotNil(t, result)
	require.Greater(t, len(result.Content), index)
	text, ok := result.Content[index].(mcp.TextContent)
	require.True(t, ok, "content %d is not text", index)
	return text.Text
}
