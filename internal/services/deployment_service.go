package services

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"gorm.io/gorm"
)

type DeploymentService interface {
	CreateDeployment(userID, projectID string, status models.DeploymentStatus) (*models.Deployment, error)
	GetDeploymentByID(id string) (*models.Deployment, error)
	ListDeploymentsByProject(projectID string) ([]models.Deployment, error)
	UpdateDeployment(id string, updates map[string]interface{}) (*models.Deployment, error)
	AppendLog(userID, deploymentID string, logType models.DeploymentLogType, message string)
	ListLogsByDeployment(deploymentID string) ([]models.DeploymentLog, error)
}

type deploymentService struct {
	db *gorm.DB
}

// NewDeploymentService creates a new DeploymentService
func NewDeploymentService(db *gorm.DB) DeploymentService {
	return &deploymentService{db: db}
}

// CreateDeployment records a new deployment attempt for a project.
func (s *deploymentService) CreateDeployment(userID, projectID string, status models.DeploymentStatus) (*models.Deployment, error) {
	deployment := &models.Deployment{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Status:    status,
	}
	if err := s.db.Create(deployment).Error; err != nil {
		return nil, err
	}
	return deployment, nil
}

// GetDeploymentByID returns a deployment by its ID
func (s *deploymentService) GetDeploymentByID(id string) (*models.Deployment, error) {
	var deployment models.Deployment
	if err := s.db.First(&deployment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &deployment, nil
}

// ListDeploymentsByProject returns a project's deployments, newest first.
func (s *deploymentService) ListDeploymentsByProject(projectID string) ([]models.Deployment, error) {
	var deployments []models.Deployment
	err := s.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&deployments).Error
	return deployments, err
}

// UpdateDeployment applies a partial update. A transition into a terminal
// status stamps the completion time.
func (s *deploymentService) UpdateDeployment(id string, updates map[string]interface{}) (*models.Deployment, error) {
	if status, ok := updates["status"]; ok {
		switch status {
		case models.DeploymentStatusSuccess, models.DeploymentStatusFailed:
			updates["completed_at"] = time.Now()
		}
	}

	if err := s.db.Model(&models.Deployment{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetDeploymentByID(id)
}

// AppendLog persists a deployment log entry. Logs are write-only telemetry:
// a failed insert is logged and dropped rather than surfaced to the pipeline.
func (s *deploymentService) AppendLog(userID, deploymentID string, logType models.DeploymentLogType, message string) {
	entry := &models.DeploymentLog{
		ID:           uuid.New().String(),
		DeploymentID: deploymentID,
		UserID:       userID,
		LogType:      logType,
		Message:      message,
	}
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("Error appending deployment log: %v", err)
	}
}

// ListLogsByDeployment returns a deployment's log history in order.
func (s *deploymentService) ListLogsByDeployment(deploymentID string) ([]models.DeploymentLog, error) {
	var logs []models.DeploymentLog
	err := s.db.Where("deployment_id = ?", deploymentID).Order("created_at ASC").Find(&logs).Error
	return logs, err
}
