package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/workspace-mcp/internal/models"
)

func TestReduce_ProjectActions(t *testing.T) {
	state := NewState()

	state = Reduce(state, AddProject{Project: models.Project{ID: "p1", Name: "One"}})
	state = Reduce(state, AddProject{Project: models.Project{ID: "p2", Name: "Two"}})
	require.Len(t, state.Projects, 2)

	state = Reduce(state, SetActiveProject{ID: "p1"})
	assert.Equal(t, "p1", state.ActiveProjectID)

	name := "Renamed"
	state = Reduce(state, UpdateProject{ID: "p2", Patch: ProjectPatch{Name: &name}})
	assert.Equal(t, "One", state.Projects[0].Name)
	assert.Equal(t, "Renamed", state.Projects[1].Name)

	state = Reduce(state, DeleteProject{ID: "p2"})
	require.Len(t, state.Projects, 1)
	assert.Equal(t, "p1", state.ActiveProjectID)
}

func TestReduce_DeleteActiveProjectClearsSelection(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddProject{Project: models.Project{ID: "p1"}})
	state = Reduce(state, SetActiveProject{ID: "p1"})

	state = Reduce(state, DeleteProject{ID: "p1"})
	assert.Empty(t, state.Projects)
	assert.Empty(t, state.ActiveProjectID)
}

func TestReduce_MessageActions(t *testing.T) {
	state := NewState()

	state = Reduce(state, AddMessage{Message: models.Message{ID: "m1", Role: models.MessageRoleUser, Content: "hello"}})
	state = Reduce(state, AddMessage{Message: models.Message{ID: "m2", Role: models.MessageRoleAssistant, Content: "hi"}})
	require.Len(t, state.Messages, 2)

	content := "edited"
	retryable := true
	state = Reduce(state, UpdateMessage{ID: "m2", Patch: MessagePatch{Content: &content, IsRetryable: &retryable}})
	assert.Equal(t, "hello", state.Messages[0].Content)
	assert.Equal(t, "edited", state.Messages[1].Content)
	assert.True(t, state.Messages[1].IsRetryable)

	state = Reduce(state, ClearMessages{})
	assert.Empty(t, state.Messages)
}

func TestReduce_GenerationActions(t *testing.T) {
	state := NewState()
	assert.Equal(t, models.GenerationStatusIdle, state.GenerationStatus)

	state = Reduce(state, SetGenerationStatus{Status: models.GenerationStatusGenerating})
	state = Reduce(state, SetGenerationError{Error: "boom"})
	assert.Equal(t, models.GenerationStatusGenerating, state.GenerationStatus)
	assert.Equal(t, "boom", state.GenerationError)

	state = Reduce(state, SetGenerationError{Error: ""})
	assert.Empty(t, state.GenerationError)
}

func TestReduce_ComponentActions(t *testing.T) {
	state := NewState()

	state = Reduce(state, AddComponent{Component: models.GeneratedComponent{ID: "c1", Name: "Hero Section", Code: "old"}})
	state = Reduce(state, SetCurrentComponent{ID: "c1"})

	code := "new"
	state = Reduce(state, UpdateComponent{ID: "c1", Patch: ComponentPatch{Code: &code}})
	assert.Equal(t, "new", state.GeneratedComponents[0].Code)
	assert.Equal(t, "Hero Section", state.GeneratedComponents[0].Name)

	state = Reduce(state, DeleteComponent{ID: "c1"})
	assert.Empty(t, state.GeneratedComponents)
	assert.Empty(t, state.CurrentComponentID)
}

func TestReduce_VersionActions(t *testing.T) {
	state := NewState()

	state = Reduce(state, AddVersion{Version: models.ComponentVersion{ID: "v1", ComponentID: "c1", VersionNumber: 1}})
	state = Reduce(state, AddVersion{Version: models.ComponentVersion{ID: "v2", ComponentID: "c1", VersionNumber: 2}})
	require.Len(t, state.Versions, 2)

	state = Reduce(state, SetSelectedVersion{ID: "v1"})
	assert.Equal(t, "v1", state.SelectedVersionID)

	state = Reduce(state, SetVersions{})
	assert.Empty(t, state.Versions)
}

func TestReduce_DeploymentActions(t *testing.T) {
	state := NewState()

	// Updating with no deployment in flight is a no-op.
	status := models.DeploymentStatusSuccess
	state = Reduce(state, UpdateDeployment{Patch: DeploymentPatch{Status: &status}})
	assert.Nil(t, state.Deployment)

	state = Reduce(state, SetDeployment{Deployment: &models.Deployment{ID: "d1", Status: models.DeploymentStatusBuilding}})
	require.NotNil(t, state.Deployment)

	url := "https://my-app.vercel.app"
	now := time.Now()
	state = Reduce(state, UpdateDeployment{Patch: DeploymentPatch{Status: &status, URL: &url, CompletedAt: &now}})
	assert.Equal(t, models.DeploymentStatusSuccess, state.Deployment.Status)
	assert.Equal(t, url, state.Deployment.URL)
	require.NotNil(t, state.Deployment.CompletedAt)
}

func TestReduce_DeploymentUpdateDoesNotAliasPrevious(t *testing.T) {
	state := NewState()
	state = Reduce(state, SetDeployment{Deployment: &models.Deployment{ID: "d1", Status: models.DeploymentStatusBuilding}})
	before := state

	status := models.DeploymentStatusFailed
	after := Reduce(state, UpdateDeployment{Patch: DeploymentPatch{Status: &status}})

	assert.Equal(t, models.DeploymentStatusBuilding, before.Deployment.Status)
	assert.Equal(t, models.DeploymentStatusFailed, after.Deployment.Status)
}

func TestReduce_DeploymentLogNotMirrored(t *testing.T) {
	state := NewState()
	next := Reduce(state, AddDeploymentLog{Log: models.DeploymentLog{ID: "l1", Message: "Installing dependencies..."}})
	assert.Equal(t, state, next)
}

func TestReduce_ViewAndUIActions(t *testing.T) {
	state := NewState()
	assert.Equal(t, models.ViewModePreview, state.ViewMode)
	assert.Equal(t, models.ViewportDesktop, state.Viewport)
	assert.True(t, state.SidebarOpen)

	state = Reduce(state, SetViewMode{Mode: models.ViewModeCode})
	state = Reduce(state, SetViewport{Size: models.ViewportMobile})
	state = Reduce(state, SetSidebarOpen{Open: false})
	state = Reduce(state, SetSettingsOpen{Open: true})
	state = Reduce(state, SetSearchQuery{Query: "hero"})

	assert.Equal(t, models.ViewModeCode, state.ViewMode)
	assert.Equal(t, models.ViewportMobile, state.Viewport)
	assert.False(t, state.SidebarOpen)
	assert.True(t, state.SettingsOpen)
	assert.Equal(t, "hero", state.SearchQuery)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := NewState()
	state = Reduce(state, AddProject{Project: models.Project{ID: "p1", Name: "Original"}})
	state = Reduce(state, AddMessage{Message: models.Message{ID: "m1", Content: "first"}})

	name := "Changed"
	content := "second"
	_ = Reduce(state, UpdateProject{ID: "p1", Patch: ProjectPatch{Name: &name}})
	_ = Reduce(state, UpdateMessage{ID: "m1", Patch: MessagePatch{Content: &content}})
	_ = Reduce(state, DeleteProject{ID: "p1"})

	assert.Equal(t, "Original", state.Projects[0].Name)
	assert.Equal(t, "first", state.Messages[0].Content)
	require.Len(t, state.Projects, 1)
}

func TestState_Selectors(t *testing.T) {
	state := NewState()
	state.Projects = []models.Project{{ID: "p1"}}
	state.GeneratedComponents = []models.GeneratedComponent{{ID: "c1"}, {ID: "c2"}}
	state.Versions = []models.ComponentVersion{
		{ID: "v1", ComponentID: "c1"},
		{ID: "v2", ComponentID: "c2"},
		{ID: "v3", ComponentID: "c1"},
	}

	// Empty selections never match, even against empty IDs in the data.
	_, ok := state.ActiveProject()
	assert.False(t, ok)
	_, ok = state.CurrentComponent()
	assert.False(t, ok)
	assert.Nil(t, state.CurrentVersions())

	state.ActiveProjectID = "p1"
	state.CurrentComponentID = "c1"

	project, ok := state.ActiveProject()
	require.True(t, ok)
	assert.Equal(t, "p1", project.ID)

	component, ok := state.CurrentComponent()
	require.True(t, ok)
	assert.Equal(t, "c1", component.ID)

	versions := state.CurrentVersions()
	require.Len(t, versions, 2)
	assert.Equal(t, "v1", versions[0].ID)
	assert.Equal(t, "v3", versions[1].ID)

	// Stale pointers yield not-found rather than a zero-value hit.
	state.ActiveProjectID = "gone"
	_, ok = state.ActiveProject()
	assert.False(t, ok)

	_, ok = state.ComponentByID("c2")
	assert.True(t, ok)
	_, ok = state.VersionByID("v9")
	assert.False(t, ok)
}
