package workspace

import (
	"time"

	"github.com/rxtech-lab/workspace-mcp/internal/models"
)

// Action is the closed set of state transitions the reducer understands.
// Dispatching a type the reducer does not recognize leaves state unchanged.
type Action interface {
	isAction()
}

// Patch types carry partial updates; nil fields are left untouched.

type ProjectPatch struct {
	Name        *string
	Description *string
	Framework   *models.Framework
	UpdatedAt   *time.Time
}

type MessagePatch struct {
	Content       *string
	ComponentName *string
	Error         *string
	IsRetryable   *bool
}

type ComponentPatch struct {
	Name *string
	Code *string
}

type DeploymentPatch struct {
	Status      *models.DeploymentStatus
	URL         *string
	Error       *string
	CompletedAt *time.Time
}

// Project actions

type SetProjects struct{ Projects []models.Project }

type AddProject struct{ Project models.Project }

type UpdateProject struct {
	ID    string
	Patch ProjectPatch
}

type DeleteProject struct{ ID string }

type SetActiveProject struct{ ID string }

// Message actions

type SetMessages struct{ Messages []models.Message }

type AddMessage struct{ Message models.Message }

type UpdateMessage struct {
	ID    string
	Patch MessagePatch
}

type ClearMessages struct{}

// Generation actions

type SetGenerationStatus struct{ Status models.GenerationStatus }

type SetGenerationError struct{ Error string }

// Component actions

type SetComponents struct{ Components []models.GeneratedComponent }

type AddComponent struct{ Component models.GeneratedComponent }

type UpdateComponent struct {
	ID    string
	Patch ComponentPatch
}

type DeleteComponent struct{ ID string }

type SetCurrentComponent struct{ ID string }

// Version actions

type SetVersions struct{ Versions []models.ComponentVersion }

type AddVersion struct{ Version models.ComponentVersion }

type SetSelectedVersion struct{ ID string }

// View actions

type SetViewMode struct{ Mode models.ViewMode }

type SetViewport struct{ Size models.ViewportSize }

// Deployment actions

type SetDeployment struct{ Deployment *models.Deployment }

type UpdateDeployment struct{ Patch DeploymentPatch }

// AddDeploymentLog is accepted but deliberately not reduced into state: log
// history lives in storage only and is read back through the gateway.
type AddDeploymentLog struct{ Log models.DeploymentLog }

// UI actions

type SetSidebarOpen struct{ Open bool }

type SetSettingsOpen struct{ Open bool }

type SetSearchQuery struct{ Query string }

func (SetProjects) isAction()         {}
func (AddProject) isAction()          {}
func (UpdateProject) isAction()       {}
func (DeleteProject) isAction()       {}
func (SetActiveProject) isAction()    {}
func (SetMessages) isAction()         {}
func (AddMessage) isAction()          {}
func (UpdateMessage) isAction()       {}
func (ClearMessages) isAction()       {}
func (SetGenerationStatus) isAction() {}
func (SetGenerationError) isAction()  {}
func (SetComponents) isAction()       {}
func (AddComponent) isAction()        {}
func (UpdateComponent) isAction()     {}
func (DeleteComponent) isAction()     {}
func (SetCurrentComponent) isAction() {}
func (SetVersions) isAction()         {}
func (AddVersion) isAction()          {}
func (SetSelectedVersion) isAction()  {}
func (SetViewMode) isAction()         {}
func (SetViewport) isAction()         {}
func (SetDeployment) isAction()       {}
func (UpdateDeployment) isAction()    {}
func (AddDeploymentLog) isAction()    {}
func (SetSidebarOpen) isAction()      {}
func (SetSettingsOpen) isAction()     {}
func (SetSearchQuery) isAction()      {}
