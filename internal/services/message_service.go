package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"gorm.io/gorm"
)

// ErrActorRequired is returned when a write requires an authenticated actor
// identity and none could be resolved.
var ErrActorRequired = errors.New("authenticated actor required")

// CreateMessageInput carries the optional fields of a new message.
type CreateMessageInput struct {
	Role          models.MessageRole
	Content       string
	ComponentName string
	Error         string
	IsRetryable   bool
}

type MessageService interface {
	CreateMessage(userID, projectID string, input CreateMessageInput) (*models.Message, error)
	ListMessagesByProject(projectID string) ([]models.Message, error)
	UpdateMessage(id string, updates map[string]interface{}) (*models.Message, error)
}

type messageService struct {
	db *gorm.DB
}

// NewMessageService creates a new MessageService
func NewMessageService(db *gorm.DB) MessageService {
	return &messageService{db: db}
}

// CreateMessage appends a conversation turn. The write fails without touching
// storage when no actor identity is supplied.
func (s *messageService) CreateMessage(userID, projectID string, input CreateMessageInput) (*models.Message, error) {
	if userID == "" {
		return nil, ErrActorRequired
	}

	message := &models.Message{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		UserID:        userID,
		Role:          input.Role,
		Content:       input.Content,
		ComponentName: input.ComponentName,
		Error:         input.Error,
		IsRetryable:   input.IsRetryable,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessagesByProject returns a project's conversation in chronological order.
func (s *messageService) ListMessagesByProject(projectID string) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&messages).Error
	return messages, err
}

// UpdateMessage applies a targeted field patch to one message.
func (s *messageService) UpdateMessage(id string, updates map[string]interface{}) (*models.Message, error) {
	if err := s.db.Model(&models.Message{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	var message models.Message
	if err := s.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}
