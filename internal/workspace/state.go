// Package workspace owns the in-memory state of one workspace session: the
// flat entity collections, the current-selection pointers and the UI flags.
// Every mutation flows through a single pure reducing function; the Store
// serializes dispatches and is the only side-effecting surface.
package workspace

import "github.com/rxtech-lab/workspace-mcp/internal/models"

// State is the complete in-memory workspace state. Entities are held as flat
// collections with reference fields; relationships are derived by filtering
// at read time. ID fields use "" for "no selection".
type State struct {
	// Projects
	Projects        []models.Project
	ActiveProjectID string

	// Chat
	Messages []models.Message

	// Generation
	GenerationStatus models.GenerationStatus
	GenerationError  string

	// Components
	GeneratedComponents []models.GeneratedComponent
	CurrentComponentID  string

	// Versions
	Versions          []models.ComponentVersion
	SelectedVersionID string

	// View
	ViewMode models.ViewMode
	Viewport models.ViewportSize

	// Deployment
	Deployment *models.Deployment

	// UI state
	SidebarOpen  bool
	SettingsOpen bool
	SearchQuery  string
}

// NewState returns the initial workspace state.
func NewState() State {
	return State{
		GenerationStatus: models.GenerationStatusIdle,
		ViewMode:         models.ViewModePreview,
		Viewport:         models.ViewportDesktop,
		SidebarOpen:      true,
	}
}

// ActiveProject returns the project the ActiveProjectID points at. Selectors
// never assume referential integrity: a stale or unknown ID yields not-found.
func (s State) ActiveProject() (models.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == s.ActiveProjectID && s.ActiveProjectID != "" {
			return p, true
		}
	}
	return models.Project{}, false
}

// CurrentComponent returns the component the CurrentComponentID points at.
func (s State) CurrentComponent() (models.GeneratedComponent, bool) {
	for _, c := range s.GeneratedComponents {
		if c.ID == s.CurrentComponentID && s.CurrentComponentID != "" {
			return c, true
		}
	}
	return models.GeneratedComponent{}, false
}

// CurrentVersions returns the versions belonging to the current component.
func (s State) CurrentVersions() []models.ComponentVersion {
	if s.CurrentComponentID == "" {
		return nil
	}
	var versions []models.ComponentVersion
	for _, v := range s.Versions {
		if v.ComponentID == s.CurrentComponentID {
			versions = append(versions, v)
		}
	}
	return versions
}

// ComponentByID looks a component up in the flat collection.
func (s State) ComponentByID(id string) (models.GeneratedComponent, bool) {
	for _, c := range s.GeneratedComponents {
		if c.ID == id {
			return c, true
		}
	}
	return models.GeneratedComponent{}, false
}

// VersionByID looks a version up in the flat collection.
func (s State) VersionByID(id string) (models.ComponentVersion, bool) {
	for _, v := range s.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return models.ComponentVersion{}, false
}
