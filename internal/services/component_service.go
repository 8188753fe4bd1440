package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"gorm.io/gorm"
)

type ComponentService interface {
	CreateComponent(userID, projectID, name, prompt, code string) (*models.GeneratedComponent, error)
	GetComponentByID(id string) (*models.GeneratedComponent, error)
	ListComponentsByProject(projectID string) ([]models.GeneratedComponent, error)
	UpdateComponent(id string, updates map[string]interface{}) (*models.GeneratedComponent, error)
	DeleteComponent(id string) error
}

type componentService struct {
	db *gorm.DB
}

// NewComponentService creates a new ComponentService
func NewComponentService(db *gorm.DB) ComponentService {
	return &componentService{db: db}
}

// CreateComponent inserts a generated component and touches the owning
// project's updated_at so project listings order by recent activity.
func (s *componentService) CreateComponent(userID, projectID, name, prompt, code string) (*models.GeneratedComponent, error) {
	component := &models.GeneratedComponent{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Name:      name,
		Prompt:    prompt,
		Code:      code,
	}
	if err := s.db.Create(component).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Project{}).Where("id = ?", projectID).Update("updated_at", time.Now()).Error; err != nil {
		return nil, err
	}

	return component, nil
}

// GetComponentByID returns a component by its ID
func (s *componentService) GetComponentByID(id string) (*models.GeneratedComponent, error) {
	var component models.GeneratedComponent
	if err := s.db.First(&component, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &component, nil
}

// ListComponentsByProject returns a project's components, newest first.
func (s *componentService) ListComponentsByProject(projectID string) ([]models.GeneratedComponent, error) {
	var components []models.GeneratedComponent
	err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&components).Error
	return components, err
}

// UpdateComponent applies a partial update and returns the updated record.
func (s *componentService) UpdateComponent(id string, updates map[string]interface{}) (*models.GeneratedComponent, error) {
	if err := s.db.Model(&models.GeneratedComponent{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetComponentByID(id)
}

// DeleteComponent deletes a component by its ID
func (s *componentService) DeleteComponent(id string) error {
	return s.db.Delete(&models.GeneratedComponent{}, "id = ?", id).Error
}
