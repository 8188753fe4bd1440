package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/workspace-mcp/internal/models"
)

func TestListProjectsHandler_Empty(t *testing.T) {
	store, _ := setupTestStore(t)
	_, handler := NewListProjectsTool(store)

	result, err := handler(context.Background(), newRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(t, result, 0), "No projects yet. Use create_project to start one.")
}

func TestListProjectsHandler_MarksActive(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	_, err := store.CreateProject(ctx, "First", models.FrameworkNextJS, "")
	require.NoError(t, err)
	second, err := store.CreateProject(ctx, "Second", models.FrameworkVue, "")
	require.NoError(t, err)

	_, handler := NewListProjectsTool(store)
	result, err := handler(ctx, newRequest(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload struct {
		Projects []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Active bool   `json:"active"`
		} `json:"projects"`
		Count           int    `json:"count"`
		ActiveProjectID string `json:"active_project_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result, 1)), &payload))

	assert.Equal(t, 2, payload.Count)
	assert.Equal(t, second.ID, payload.ActiveProjectID)

	activeCount := 0
	for _, p := range payload.Projects {
		if p.Active {
			activeCount++
			assert.Equal(t, second.ID, p.ID)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestSwitchProjectHandler(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	first, err := store.CreateProject(ctx, "First", models.FrameworkNextJS, "")
	require.NoError(t, err)
	_, err = store.AddUserMessage(ctx, "create a hero section for me")
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, "Second", models.FrameworkReact, "")
	require.NoError(t, err)

	_, handler := NewSwitchProjectTool(store)

	t.Run("switches_and_reports_counts", func(t *testing.T) {
		result, err := handler(ctx, newRequest(map[string]interface{}{"project_id": first.ID}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result, 1)), &payload))
		assert.Equal(t, first.ID, payload["id"])
		assert.Equal(t, "First", payload["name"])
		assert.EqualValues(t, 1, payload["messages"])

		assert.Equal(t, first.ID, store.State().ActiveProjectID)
	})

	t.Run("unknown_project", func(t *testing.T) {
		result, err := handler(ctx, newRequest(map[string]interface{}{"project_id": "nope"}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result, 0), "Project not found: nope")
	})

	t.Run("missing_project_id", func(t *testing.T) {
		result, err := handler(ctx, newRequest(map[string]interface{}{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result, 0), "Invalid arguments")
	})
}

func TestDeleteProjectHandler(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)

	project, err := store.CreateProject(ctx, "Doomed", models.FrameworkNextJS, "")
	require.NoError(t, err)

	_, handler := NewDeleteProjectTool(store)
	result, err := handler(ctx, newRequest(map[string]interface{}{"project_id": project.ID}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	state := store.State()
	assert.Empty(t, state.Projects)
	assert.Empty(t, state.ActiveProjectID)
}

func TestListMessagesHandler(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStore(t)
	_, handler := NewListMessagesTool(store)

	t.Run("requires_active_project", func(t *testing.T) {
		result, err := handler(ctx, newRequest(nil))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(t, result, 0), "No active project")
	})

	_, err := store.CreateProject(ctx, "Chat", models.FrameworkNextJS, "")
	require.NoError(t, err)
	_, err = store.AddUserMessage(ctx, "please build a stats section")
	require.NoError(t, err)
	store.AddErrorMessage("Something went wrong", true)

	t.Run("includes_error_turns", func(t *testing.T) {
		result, err := handler(ctx, newRequest(nil))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var payload struct {
			Messages []map[string]interface{} `json:"messages"`
			Count    int                      `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result, 1)), &payload))
		require.Equal(t, 2, payload.Count)

		assert.Equal(t, "user", payload.Messages[0]["role"])
		assert.Nil(t, payload.Messages[0]["error"])

		assert.Equal(t, "assistant", payload.Messages[1]["role"])
		assert.Equal(t, "Something went wrong", payload.Messages[1]["error"])
		assert.Equal(t, true, payload.Messages[1]["is_retryable"])
	})
}
