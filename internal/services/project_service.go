package services

import (
	"github.com/google/uuid"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"gorm.io/gorm"
)

type ProjectService interface {
	CreateProject(userID, name string, framework models.Framework, description string) (*models.Project, error)
	GetProjectByID(id string) (*models.Project, error)
	ListProjects(userID string) ([]models.Project, error)
	UpdateProject(id string, updates map[string]interface{}) (*models.Project, error)
	DeleteProject(id string) error
}

type projectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectService
func NewProjectService(db *gorm.DB) ProjectService {
	return &projectService{db: db}
}

// CreateProject inserts a new project owned by userID.
func (s *projectService) CreateProject(userID, name string, framework models.Framework, description string) (*models.Project, error) {
	project := &models.Project{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Framework:   framework,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// GetProjectByID returns a project by its ID
func (s *projectService) GetProjectByID(id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects returns the user's projects ordered by most recently updated.
func (s *projectService) ListProjects(userID string) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&projects).Error
	return projects, err
}

// UpdateProject applies a partial update and returns the updated record.
func (s *projectService) UpdateProject(id string, updates map[string]interface{}) (*models.Project, error) {
	if err := s.db.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetProjectByID(id)
}

// DeleteProject deletes a project by its ID
func (s *projectService) DeleteProject(id string) error {
	return s.db.Delete(&models.Project{}, "id = ?", id).Error
}
