package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
)

func setupStore(t *testing.T) *Store {
	dbService, err := services.NewSqliteDBService(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbService.Close() })

	return NewStore(dbService.GetDB(), StaticActorResolver("testuser"))
}

func TestStore_CreateProjectActivatesAndResets(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	first, err := store.CreateProject(ctx, "First", models.FrameworkNextJS, "landing page")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, first.ID, store.State().ActiveProjectID)

	// Seed some conversation state, then create a second project.
	_, err = store.AddUserMessage(ctx, "make me a hero section please")
	require.NoError(t, err)
	_, err = store.AddGeneratedComponent(ctx, "Hero Section", "make me a hero section please", "export function Hero() {}")
	require.NoError(t, err)

	second, err := store.CreateProject(ctx, "Second", models.FrameworkVue, "")
	require.NoError(t, err)

	state := store.State()
	assert.Equal(t, second.ID, state.ActiveProjectID)
	require.Len(t, state.Projects, 2)
	assert.Empty(t, state.Messages)
	assert.Empty(t, state.GeneratedComponents)
	assert.Empty(t, state.Versions)
}

func TestStore_SwitchProjectLoadsConversation(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	first, err := store.CreateProject(ctx, "First", models.FrameworkNextJS, "")
	require.NoError(t, err)
	_, err = store.AddUserMessage(ctx, "build a stats dashboard section")
	require.NoError(t, err)
	_, err = store.AddGeneratedComponent(ctx, "Stats Section", "stats", "export function Stats() {}")
	require.NoError(t, err)

	_, err = store.CreateProject(ctx, "Second", models.FrameworkReact, "")
	require.NoError(t, err)
	require.Empty(t, store.State().Messages)

	require.NoError(t, store.SwitchProject(ctx, first.ID))

	state := store.State()
	assert.Equal(t, first.ID, state.ActiveProjectID)
	require.Len(t, state.Messages, 1)
	assert.Equal(t, "build a stats dashboard section", state.Messages[0].Content)
	require.Len(t, state.GeneratedComponents, 1)
	assert.Equal(t, "Stats Section", state.GeneratedComponents[0].Name)

	// Switching never carries component selection across projects.
	assert.Empty(t, state.CurrentComponentID)
	assert.Empty(t, state.Versions)
}

func TestStore_SwitchProjectUnknownID(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	project, err := store.CreateProject(ctx, "Only", models.FrameworkNextJS, "")
	require.NoError(t, err)

	err = store.SwitchProject(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, project.ID, store.State().ActiveProjectID)
}

func TestStore_DeleteProject(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	kept, err := store.CreateProject(ctx, "Kept", models.FrameworkNextJS, "")
	require.NoError(t, err)
	doomed, err := store.CreateProject(ctx, "Doomed", models.FrameworkReact, "")
	require.NoError(t, err)
	_, err = store.AddUserMessage(ctx, "this conversation goes away too")
	require.NoError(t, err)

	require.NoError(t, store.DeleteProject(ctx, doomed.ID))

	state := store.State()
	require.Len(t, state.Projects, 1)
	assert.Equal(t, kept.ID, state.Projects[0].ID)
	assert.Empty(t, state.ActiveProjectID)
	assert.Empty(t, state.Messages)
}

func TestStore_AddMessageRequiresActiveProject(t *testing.T) {
	store := setupStore(t)

	_, err := store.AddUserMessage(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNoActiveProject)

	_, err = store.AddAssistantMessage(context.Background(), "hi", "")
	assert.ErrorIs(t, err, ErrNoActiveProject)
}

func TestStore_AddMessageRequiresActor(t *testing.T) {
	ctx := context.Background()
	dbService, err := services.NewSqliteDBService(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbService.Close() })

	seeded := NewStore(dbService.GetDB(), StaticActorResolver("testuser"))
	project, err := seeded.CreateProject(ctx, "Shared", models.FrameworkNextJS, "")
	require.NoError(t, err)

	anon := NewStore(dbService.GetDB(), StaticActorResolver(""))
	require.NoError(t, anon.SwitchProject(ctx, project.ID))

	_, err = anon.AddUserMessage(ctx, "who am I")
	assert.ErrorIs(t, err, services.ErrActorRequired)
	assert.Empty(t, anon.State().Messages)
}

func TestStore_AddErrorMessageIsLocalOnly(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	project, err := store.CreateProject(ctx, "Errors", models.FrameworkNextJS, "")
	require.NoError(t, err)

	message := store.AddErrorMessage("Prompt contains empty brackets. Consider filling in specific values.", false)
	assert.NotEmpty(t, message.ID)
	assert.Equal(t, models.MessageRoleAssistant, message.Role)
	assert.False(t, message.IsRetryable)

	state := store.State()
	require.Len(t, state.Messages, 1)
	assert.Equal(t, message.Error, state.Messages[0].Error)

	// Reloading from storage drops the ephemeral turn.
	require.NoError(t, store.SwitchProject(ctx, project.ID))
	assert.Empty(t, store.State().Messages)
}

func TestStore_AddGeneratedComponent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Gen", models.FrameworkNextJS, "")
	require.NoError(t, err)

	component, err := store.AddGeneratedComponent(ctx, "Feature Cards", "show me a card grid", "export function Features() {}")
	require.NoError(t, err)

	state := store.State()
	assert.Equal(t, component.ID, state.CurrentComponentID)
	require.Len(t, state.GeneratedComponents, 1)

	// The first version is recorded automatically.
	require.Len(t, state.Versions, 1)
	assert.Equal(t, component.ID, state.Versions[0].ComponentID)
	assert.Equal(t, 1, state.Versions[0].VersionNumber)
	assert.Equal(t, "Initial generation", state.Versions[0].Label)
	assert.Equal(t, component.Code, state.Versions[0].Code)
}

func TestStore_SaveVersionIncrementsNumber(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Versions", models.FrameworkNextJS, "")
	require.NoError(t, err)
	component, err := store.AddGeneratedComponent(ctx, "Hero Section", "hero", "v1 code")
	require.NoError(t, err)

	code := "v2 code"
	require.NoError(t, store.UpdateComponent(ctx, component.ID, ComponentPatch{Code: &code}))

	version, err := store.SaveVersion(ctx, component.ID, "Tweaked copy")
	require.NoError(t, err)
	assert.Equal(t, 2, version.VersionNumber)
	assert.Equal(t, "Tweaked copy", version.Label)
	assert.Equal(t, "v2 code", version.Code)

	require.Len(t, store.State().Versions, 2)
}

func TestStore_SaveVersionUnknownComponent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Versions", models.FrameworkNextJS, "")
	require.NoError(t, err)

	_, err = store.SaveVersion(ctx, "missing", "label")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_RestoreVersion(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Restore", models.FrameworkNextJS, "")
	require.NoError(t, err)
	component, err := store.AddGeneratedComponent(ctx, "Hero Section", "hero", "original code")
	require.NoError(t, err)

	code := "edited code"
	require.NoError(t, store.UpdateComponent(ctx, component.ID, ComponentPatch{Code: &code}))
	_, err = store.SaveVersion(ctx, component.ID, "Edited")
	require.NoError(t, err)

	state := store.State()
	firstVersion := state.Versions[0]
	store.SetSelectedVersion(firstVersion.ID)

	require.NoError(t, store.RestoreVersion(ctx, firstVersion.ID))

	state = store.State()
	current, ok := state.CurrentComponent()
	require.True(t, ok)
	assert.Equal(t, "original code", current.Code)
	assert.Empty(t, state.SelectedVersionID)

	// Restoring is not itself a new snapshot.
	assert.Len(t, state.Versions, 2)
}

func TestStore_RestoreVersionUnknownID(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Restore", models.FrameworkNextJS, "")
	require.NoError(t, err)

	err = store.RestoreVersion(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeploymentLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Deploys", models.FrameworkNextJS, "")
	require.NoError(t, err)

	deployment, err := store.StartDeployment(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DeploymentStatusBuilding, deployment.Status)

	store.AddDeploymentLog(ctx, models.DeploymentLogTypeInfo, "Installing dependencies...")
	store.AddDeploymentLog(ctx, models.DeploymentLogTypeSuccess, "Deployment successful!")

	require.NoError(t, store.CompleteDeployment(ctx, "https://deploys.vercel.app"))

	state := store.State()
	require.NotNil(t, state.Deployment)
	assert.Equal(t, models.DeploymentStatusSuccess, state.Deployment.Status)
	assert.Equal(t, "https://deploys.vercel.app", state.Deployment.URL)
	require.NotNil(t, state.Deployment.CompletedAt)

	logs, err := store.DeploymentService().ListLogsByDeployment(deployment.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.DeploymentLogTypeInfo, logs[0].LogType)
	assert.Equal(t, "Installing dependencies...", logs[0].Message)
	assert.Equal(t, models.DeploymentLogTypeSuccess, logs[1].LogType)

	persisted, err := store.DeploymentService().GetDeploymentByID(deployment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeploymentStatusSuccess, persisted.Status)
	assert.Equal(t, "https://deploys.vercel.app", persisted.URL)
	require.NotNil(t, persisted.CompletedAt)
}

func TestStore_FailDeployment(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	_, err := store.CreateProject(ctx, "Deploys", models.FrameworkNextJS, "")
	require.NoError(t, err)

	deployment, err := store.StartDeployment(ctx)
	require.NoError(t, err)

	require.NoError(t, store.FailDeployment(ctx, "Build failed: TypeScript error in component"))

	state := store.State()
	assert.Equal(t, models.DeploymentStatusFailed, state.Deployment.Status)
	assert.Equal(t, "Build failed: TypeScript error in component", state.Deployment.Error)

	persisted, err := store.DeploymentService().GetDeploymentByID(deployment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DeploymentStatusFailed, persisted.Status)
	assert.Equal(t, "Build failed: TypeScript error in component", persisted.Error)
}

func TestStore_DeploymentRequiresActiveProject(t *testing.T) {
	store := setupStore(t)

	_, err := store.StartDeployment(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveProject)

	assert.ErrorIs(t, store.CompleteDeployment(context.Background(), "https://x.vercel.app"), ErrNotFound)
	assert.ErrorIs(t, store.FailDeployment(context.Background(), "boom"), ErrNotFound)
}

func TestStore_ViewSetters(t *testing.T) {
	store := setupStore(t)

	store.SetViewMode(models.ViewModeDiff)
	store.SetViewport(models.ViewportTablet)
	store.SetSidebarOpen(false)
	store.SetSettingsOpen(true)
	store.SetSearchQuery("stats")

	state := store.State()
	assert.Equal(t, models.ViewModeDiff, state.ViewMode)
	assert.Equal(t, models.ViewportTablet, state.Viewport)
	assert.False(t, state.SidebarOpen)
	assert.True(t, state.SettingsOpen)
	assert.Equal(t, "stats", state.SearchQuery)
}
