package workspace

import "github.com/rxtech-lab/workspace-mcp/internal/models"

// Reduce applies one action to the state and returns the next state. It is
// pure: the input state is never mutated, collections that change are
// reallocated, and unrecognized actions fall through unchanged.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetProjects:
		state.Projects = a.Projects

	case AddProject:
		state.Projects = append(copyProjects(state.Projects), a.Project)

	case UpdateProject:
		projects := copyProjects(state.Projects)
		for i := range projects {
			if projects[i].ID == a.ID {
				applyProjectPatch(&projects[i], a.Patch)
			}
		}
		state.Projects = projects

	case DeleteProject:
		var projects []models.Project
		for _, p := range state.Projects {
			if p.ID != a.ID {
				projects = append(projects, p)
			}
		}
		state.Projects = projects
		if state.ActiveProjectID == a.ID {
			state.ActiveProjectID = ""
		}

	case SetActiveProject:
		state.ActiveProjectID = a.ID

	case SetMessages:
		state.Messages = a.Messages

	case AddMessage:
		state.Messages = append(copyMessages(state.Messages), a.Message)

	case UpdateMessage:
		messages := copyMessages(state.Messages)
		for i := range messages {
			if messages[i].ID == a.ID {
				applyMessagePatch(&messages[i], a.Patch)
			}
		}
		state.Messages = messages

	case ClearMessages:
		state.Messages = nil

	case SetGenerationStatus:
		state.GenerationStatus = a.Status

	case SetGenerationError:
		state.GenerationError = a.Error

	case SetComponents:
		state.GeneratedComponents = a.Components

	case AddComponent:
		state.GeneratedComponents = append(copyComponents(state.GeneratedComponents), a.Component)

	case UpdateComponent:
		components := copyComponents(state.GeneratedComponents)
		for i := range components {
			if components[i].ID == a.ID {
				applyComponentPatch(&components[i], a.Patch)
			}
		}
		state.GeneratedComponents = components

	case DeleteComponent:
		var components []models.GeneratedComponent
		for _, c := range state.GeneratedComponents {
			if c.ID != a.ID {
				components = append(components, c)
			}
		}
		state.GeneratedComponents = components
		if state.CurrentComponentID == a.ID {
			state.CurrentComponentID = ""
		}

	case SetCurrentComponent:
		state.CurrentComponentID = a.ID

	case SetVersions:
		state.Versions = a.Versions

	case AddVersion:
		state.Versions = append(copyVersions(state.Versions), a.Version)

	case SetSelectedVersion:
		state.SelectedVersionID = a.ID

	case SetViewMode:
		state.ViewMode = a.Mode

	case SetViewport:
		state.Viewport = a.Size

	case SetDeployment:
		state.Deployment = a.Deployment

	case UpdateDeployment:
		if state.Deployment != nil {
			deployment := *state.Deployment
			applyDeploymentPatch(&deployment, a.Patch)
			state.Deployment = &deployment
		}

	case AddDeploymentLog:
		// Log history is write-only telemetry persisted by the gateway; it is
		// never mirrored into state.

	case SetSidebarOpen:
		state.SidebarOpen = a.Open

	case SetSettingsOpen:
		state.SettingsOpen = a.Open

	case SetSearchQuery:
		state.SearchQuery = a.Query
	}

	return state
}

func copyProjects(list []models.Project) []models.Project {
	return append([]models.Project(nil), list...)
}

func copyMessages(list []models.Message) []models.Message {
	return append([]models.Message(nil), list...)
}

func copyComponents(list []models.GeneratedComponent) []models.GeneratedComponent {
	return append([]models.GeneratedComponent(nil), list...)
}

func copyVersions(list []models.ComponentVersion) []models.ComponentVersion {
	return append([]models.ComponentVersion(nil), list...)
}

func applyProjectPatch(p *models.Project, patch ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Framework != nil {
		p.Framework = *patch.Framework
	}
	if patch.UpdatedAt != nil {
		p.UpdatedAt = *patch.UpdatedAt
	}
}

func applyMessagePatch(m *models.Message, patch MessagePatch) {
	if patch.Content != nil {
		m.Content = *patch.Content
	}
	if patch.ComponentName != nil {
		m.ComponentName = *patch.ComponentName
	}
	if patch.Error != nil {
		m.Error = *patch.Error
	}
	if patch.IsRetryable != nil {
		m.IsRetryable = *patch.IsRetryable
	}
}

func applyComponentPatch(c *models.GeneratedComponent, patch ComponentPatch) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Code != nil {
		c.Code = *patch.Code
	}
}

func applyDeploymentPatch(d *models.Deployment, patch DeploymentPatch) {
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.URL != nil {
		d.URL = *patch.URL
	}
	if patch.Error != nil {
		d.Error = *patch.Error
	}
	if patch.CompletedAt != nil {
		d.CompletedAt = patch.CompletedAt
	}
}
