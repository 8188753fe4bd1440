package workspace

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrNoActiveProject = errors.New("no active project")
	ErrNotFound        = errors.New("not found")
)

// ActorResolver resolves the acting user for a call. Writes that require an
// authenticated actor fail when the resolver reports none.
type ActorResolver func(ctx context.Context) (string, bool)

// ContextActorResolver reads the actor from the request context, as set by
// the authentication middleware.
func ContextActorResolver(ctx context.Context) (string, bool) {
	user, ok := utils.GetAuthenticatedUser(ctx)
	if !ok {
		return "", false
	}
	return user.Sub, true
}

// StaticActorResolver always resolves the same actor. Used by the local
// stdio binary where there is no token to validate.
func StaticActorResolver(userID string) ActorResolver {
	return func(context.Context) (string, bool) {
		return userID, userID != ""
	}
}

// Store owns the workspace state. All mutation flows through Dispatch, which
// serializes reducer applications under one mutex; action methods are the
// only operations that touch the persistence gateway, and they dispatch only
// after the gateway call succeeded.
type Store struct {
	mu    sync.RWMutex
	state State

	projectService    services.ProjectService
	messageService    services.MessageService
	componentService  services.ComponentService
	versionService    services.VersionService
	deploymentService services.DeploymentService

	actor ActorResolver
}

// NewStore creates a workspace store over the given database handle. The
// store is passed explicitly to its callers; it is never a singleton.
func NewStore(db *gorm.DB, actor ActorResolver) *Store {
	return &Store{
		state:             NewState(),
		projectService:    services.NewProjectService(db),
		messageService:    services.NewMessageService(db),
		componentService:  services.NewComponentService(db),
		versionService:    services.NewVersionService(db),
		deploymentService: services.NewDeploymentService(db),
		actor:             actor,
	}
}

// Dispatch applies one action atomically with respect to all readers.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	s.mu.Unlock()
}

// State returns a snapshot of the current state. The snapshot's collections
// are never mutated after a dispatch; treat them as read-only.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ActiveProject returns the active project, if one is selected and present.
func (s *Store) ActiveProject() (models.Project, bool) {
	return s.State().ActiveProject()
}

// CurrentComponent returns the current component, if selected and present.
func (s *Store) CurrentComponent() (models.GeneratedComponent, bool) {
	return s.State().CurrentComponent()
}

// CurrentVersions returns the versions of the current component.
func (s *Store) CurrentVersions() []models.ComponentVersion {
	return s.State().CurrentVersions()
}

// DeploymentService exposes the gateway used for log history reads.
func (s *Store) DeploymentService() services.DeploymentService {
	return s.deploymentService
}

func (s *Store) resolveActor(ctx context.Context) string {
	userID, _ := s.actor(ctx)
	return userID
}

// LoadProjects replaces the project list from storage.
func (s *Store) LoadProjects(ctx context.Context) error {
	projects, err := s.projectService.ListProjects(s.resolveActor(ctx))
	if err != nil {
		return err
	}
	s.Dispatch(SetProjects{Projects: projects})
	return nil
}

// CreateProject creates a project, makes it active and resets the
// conversation and component slices for the fresh workspace.
func (s *Store) CreateProject(ctx context.Context, name string, framework models.Framework, description string) (*models.Project, error) {
	project, err := s.projectService.CreateProject(s.resolveActor(ctx), name, framework, description)
	if err != nil {
		return nil, err
	}

	s.Dispatch(AddProject{Project: *project})
	s.Dispatch(SetActiveProject{ID: project.ID})
	s.Dispatch(ClearMessages{})
	s.Dispatch(SetComponents{})
	s.Dispatch(SetVersions{})
	return project, nil
}

// SwitchProject makes a project active and loads its conversation and
// components. Both fetches must succeed before either slice is replaced, so
// a failed switch never leaves the two halves inconsistent.
func (s *Store) SwitchProject(ctx context.Context, id string) error {
	if _, err := s.projectService.GetProjectByID(id); err != nil {
		return ErrNotFound
	}

	s.Dispatch(SetActiveProject{ID: id})
	s.Dispatch(SetCurrentComponent{ID: ""})
	s.Dispatch(SetVersions{})

	messages, err := s.messageService.ListMessagesByProject(id)
	if err != nil {
		return err
	}
	components, err := s.componentService.ListComponentsByProject(id)
	if err != nil {
		return err
	}

	s.Dispatch(SetMessages{Messages: messages})
	s.Dispatch(SetComponents{Components: components})
	return nil
}

// DeleteProject removes a project. When the deleted project was active, its
// conversation and components are cleared as well.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	wasActive := s.State().ActiveProjectID == id

	if err := s.projectService.DeleteProject(id); err != nil {
		return err
	}

	s.Dispatch(DeleteProject{ID: id})
	if wasActive {
		s.Dispatch(ClearMessages{})
		s.Dispatch(SetComponents{})
	}
	return nil
}

// AddUserMessage records one user turn against the active project.
func (s *Store) AddUserMessage(ctx context.Context, content string) (*models.Message, error) {
	projectID := s.State().ActiveProjectID
	if projectID == "" {
		return nil, ErrNoActiveProject
	}

	message, err := s.messageService.CreateMessage(s.resolveActor(ctx), projectID, services.CreateMessageInput{
		Role:    models.MessageRoleUser,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	s.Dispatch(AddMessage{Message: *message})
	return message, nil
}

// AddAssistantMessage records one assistant turn against the active project.
func (s *Store) AddAssistantMessage(ctx context.Context, content, componentName string) (*models.Message, error) {
	projectID := s.State().ActiveProjectID
	if projectID == "" {
		return nil, ErrNoActiveProject
	}

	message, err := s.messageService.CreateMessage(s.resolveActor(ctx), projectID, services.CreateMessageInput{
		Role:          models.MessageRoleAssistant,
		Content:       content,
		ComponentName: componentName,
	})
	if err != nil {
		return nil, err
	}

	s.Dispatch(AddMessage{Message: *message})
	return message, nil
}

// AddErrorMessage appends a local-only assistant error turn. Error turns are
// ephemeral UI feedback and are deliberately not persisted.
func (s *Store) AddErrorMessage(errText string, isRetryable bool) models.Message {
	message := models.Message{
		ID:          uuid.New().String(),
		ProjectID:   s.State().ActiveProjectID,
		Role:        models.MessageRoleAssistant,
		Content:     "I encountered an issue while generating your component.",
		Error:       errText,
		IsRetryable: isRetryable,
		CreatedAt:   time.Now(),
	}
	s.Dispatch(AddMessage{Message: message})
	return message
}

// ClearMessages empties the conversation slice.
func (s *Store) ClearMessages() {
	s.Dispatch(ClearMessages{})
}

// SetGenerationStatus updates the generation lifecycle state.
func (s *Store) SetGenerationStatus(status models.GenerationStatus) {
	s.Dispatch(SetGenerationStatus{Status: status})
}

// SetGenerationError updates the generation error state; "" clears it.
func (s *Store) SetGenerationError(errText string) {
	s.Dispatch(SetGenerationError{Error: errText})
}

// AddGeneratedComponent persists a freshly generated component together with
// its automatic first version, then makes it current. Creating the component
// and recording version 1 are one logical operation from the caller's view.
func (s *Store) AddGeneratedComponent(ctx context.Context, name, prompt, code string) (*models.GeneratedComponent, error) {
	projectID := s.State().ActiveProjectID
	if projectID == "" {
		return nil, ErrNoActiveProject
	}

	userID := s.resolveActor(ctx)
	component, err := s.componentService.CreateComponent(userID, projectID, name, prompt, code)
	if err != nil {
		return nil, err
	}
	if _, err := s.versionService.CreateVersion(userID, component.ID, component.Code, "Initial generation"); err != nil {
		return nil, err
	}

	s.Dispatch(AddComponent{Component: *component})
	if err := s.SetCurrentComponent(ctx, component.ID); err != nil {
		return nil, err
	}
	return component, nil
}

// UpdateComponent applies a partial update to one component.
func (s *Store) UpdateComponent(ctx context.Context, id string, patch ComponentPatch) error {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Code != nil {
		updates["code"] = *patch.Code
	}

	if _, err := s.componentService.UpdateComponent(id, updates); err != nil {
		return err
	}
	s.Dispatch(UpdateComponent{ID: id, Patch: patch})
	return nil
}

// DeleteComponent removes a component; the reducer clears the current
// selection when it pointed at the deleted component.
func (s *Store) DeleteComponent(ctx context.Context, id string) error {
	if err := s.componentService.DeleteComponent(id); err != nil {
		return err
	}
	s.Dispatch(DeleteComponent{ID: id})
	return nil
}

// SetCurrentComponent selects a component, clears the version selection and
// loads that component's version history.
func (s *Store) SetCurrentComponent(ctx context.Context, id string) error {
	s.Dispatch(SetCurrentComponent{ID: id})
	s.Dispatch(SetSelectedVersion{ID: ""})
	if id == "" {
		return nil
	}
	return s.LoadVersions(ctx, id)
}

// LoadVersions replaces the version slice from storage.
func (s *Store) LoadVersions(ctx context.Context, componentID string) error {
	versions, err := s.versionService.ListVersionsByComponent(componentID)
	if err != nil {
		return err
	}
	s.Dispatch(SetVersions{Versions: versions})
	return nil
}

// SaveVersion snapshots a component's current code. The gateway assigns the
// version number.
func (s *Store) SaveVersion(ctx context.Context, componentID, label string) (*models.ComponentVersion, error) {
	component, ok := s.State().ComponentByID(componentID)
	if !ok {
		return nil, ErrNotFound
	}

	version, err := s.versionService.CreateVersion(s.resolveActor(ctx), componentID, component.Code, label)
	if err != nil {
		return nil, err
	}

	s.Dispatch(AddVersion{Version: *version})
	return version, nil
}

// RestoreVersion overwrites the owning component's code with a snapshot and
// clears the comparison selection. Restoring does not record a new version.
func (s *Store) RestoreVersion(ctx context.Context, versionID string) error {
	version, ok := s.State().VersionByID(versionID)
	if !ok {
		fetched, err := s.versionService.GetVersionByID(versionID)
		if err != nil {
			return ErrNotFound
		}
		version = *fetched
	}

	code := version.Code
	if err := s.UpdateComponent(ctx, version.ComponentID, ComponentPatch{Code: &code}); err != nil {
		return err
	}
	s.Dispatch(SetSelectedVersion{ID: ""})
	return nil
}

// SetSelectedVersion updates the diff comparison selection.
func (s *Store) SetSelectedVersion(id string) {
	s.Dispatch(SetSelectedVersion{ID: id})
}

// StartDeployment records a new deployment in building state and makes it
// the current one.
func (s *Store) StartDeployment(ctx context.Context) (*models.Deployment, error) {
	projectID := s.State().ActiveProjectID
	if projectID == "" {
		return nil, ErrNoActiveProject
	}

	deployment, err := s.deploymentService.CreateDeployment(s.resolveActor(ctx), projectID, models.DeploymentStatusBuilding)
	if err != nil {
		return nil, err
	}

	s.Dispatch(SetDeployment{Deployment: deployment})
	return deployment, nil
}

// AddDeploymentLog persists one log entry for the current deployment.
// Entries are write-only telemetry; they are not reduced into state.
func (s *Store) AddDeploymentLog(ctx context.Context, logType models.DeploymentLogType, message string) {
	deployment := s.State().Deployment
	if deployment == nil {
		return
	}
	s.deploymentService.AppendLog(s.resolveActor(ctx), deployment.ID, logType, message)
}

// CompleteDeployment marks the current deployment successful.
func (s *Store) CompleteDeployment(ctx context.Context, url string) error {
	deployment := s.State().Deployment
	if deployment == nil {
		return ErrNotFound
	}

	status := models.DeploymentStatusSuccess
	now := time.Now()
	s.Dispatch(UpdateDeployment{Patch: DeploymentPatch{Status: &status, URL: &url, CompletedAt: &now}})

	_, err := s.deploymentService.UpdateDeployment(deployment.ID, map[string]interface{}{
		"status": status,
		"url":    url,
	})
	return err
}

// FailDeployment marks the current deployment failed with the given error.
func (s *Store) FailDeployment(ctx context.Context, errText string) error {
	deployment := s.State().Deployment
	if deployment == nil {
		return ErrNotFound
	}

	status := models.DeploymentStatusFailed
	now := time.Now()
	s.Dispatch(UpdateDeployment{Patch: DeploymentPatch{Status: &status, Error: &errText, CompletedAt: &now}})

	_, err := s.deploymentService.UpdateDeployment(deployment.ID, map[string]interface{}{
		"status": status,
		"error":  errText,
	})
	return err
}

// View setters.

func (s *Store) SetViewMode(mode models.ViewMode) {
	s.Dispatch(SetViewMode{Mode: mode})
}

func (s *Store) SetViewport(size models.ViewportSize) {
	s.Dispatch(SetViewport{Size: size})
}

func (s *Store) SetSidebarOpen(open bool) {
	s.Dispatch(SetSidebarOpen{Open: open})
}

func (s *Store) SetSettingsOpen(open bool) {
	s.Dispatch(SetSettingsOpen{Open: open})
}

func (s *Store) SetSearchQuery(query string) {
	s.Dispatch(SetSearchQuery{Query: query})
}
