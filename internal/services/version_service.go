package services

import (
	"github.com/google/uuid"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"gorm.io/gorm"
)

type VersionService interface {
	CreateVersion(userID, componentID, code, label string) (*models.ComponentVersion, error)
	GetVersionByID(id string) (*models.ComponentVersion, error)
	ListVersionsByComponent(componentID string) ([]models.ComponentVersion, error)
}

type versionService struct {
	db *gorm.DB
}

// NewVersionService creates a new VersionService
func NewVersionService(db *gorm.DB) VersionService {
	return &versionService{db: db}
}

// CreateVersion snapshots a component's code. The version number is assigned
// here as max existing + 1; this is the single authoritative numbering rule
// and callers never pass their own number.
func (s *versionService) CreateVersion(userID, componentID, code, label string) (*models.ComponentVersion, error) {
	var maxNumber int
	err := s.db.Model(&models.ComponentVersion{}).
		Where("component_id = ?", componentID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return nil, err
	}

	version := &models.ComponentVersion{
		ID:            uuid.New().String(),
		ComponentID:   componentID,
		UserID:        userID,
		VersionNumber: maxNumber + 1,
		Code:          code,
		Label:         label,
	}
	if err := s.db.Create(version).Error; err != nil {
		return nil, err
	}
	return version, nil
}

// GetVersionByID returns a version by its ID
func (s *versionService) GetVersionByID(id string) (*models.ComponentVersion, error) {
	var version models.ComponentVersion
	if err := s.db.First(&version, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &version, nil
}

// ListVersionsByComponent returns a component's versions, highest number first.
func (s *versionService) ListVersionsByComponent(componentID string) ([]models.ComponentVersion, error) {
	var versions []models.ComponentVersion
	err := s.db.Where("component_id = ?", componentID).Order("version_number DESC").Find(&versions).Error
	return versions, err
}
