package models

import "time"

// Project is a named workspace grouping conversation, components, versions
// and deployments. One project is active per workspace session.
type Project struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;type:varchar(255)" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Framework   Framework `gorm:"default:nextjs" json:"framework"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Message is one turn in a project's conversation. Messages are append-only;
// only targeted field patches are applied after creation.
type Message struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	ProjectID     string      `gorm:"index;not null" json:"project_id"`
	UserID        string      `gorm:"index;type:varchar(255)" json:"user_id"`
	Role          MessageRole `gorm:"not null" json:"role"`
	Content       string      `gorm:"type:text;not null" json:"content"`
	ComponentName string      `json:"component_name,omitempty"`
	Error         string      `json:"error,omitempty"`
	IsRetryable   bool        `json:"is_retryable"`
	CreatedAt     time.Time   `json:"created_at"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// GeneratedComponent is the artifact produced by a generation request. Its
// code may be overwritten in place by version restoration.
type GeneratedComponent struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ProjectID string    `gorm:"index;not null" json:"project_id"`
	UserID    string    `gorm:"index;type:varchar(255)" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Prompt    string    `gorm:"type:text;not null" json:"prompt"`
	Code      string    `gorm:"type:text" json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// ComponentVersion is an immutable snapshot of a component's code. Version
// numbers start at 1 and increase by one per component; they are assigned by
// the version service, never by callers.
type ComponentVersion struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	ComponentID   string    `gorm:"index;not null" json:"component_id"`
	UserID        string    `gorm:"index;type:varchar(255)" json:"user_id"`
	VersionNumber int       `gorm:"not null" json:"version_number"`
	Code          string    `gorm:"type:text" json:"code"`
	Label         string    `json:"label,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	Component GeneratedComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"component,omitempty"`
}

// Deployment is one attempt to publish a project.
type Deployment struct {
	ID          string           `gorm:"primaryKey" json:"id"`
	ProjectID   string           `gorm:"index;not null" json:"project_id"`
	UserID      string           `gorm:"index;type:varchar(255)" json:"user_id"`
	Status      DeploymentStatus `gorm:"default:idle" json:"status"`
	URL         string           `json:"url,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
}

// DeploymentLog is an append-only progress entry owned by a deployment.
type DeploymentLog struct {
	ID           string            `gorm:"primaryKey" json:"id"`
	DeploymentID string            `gorm:"index;not null" json:"deployment_id"`
	UserID       string            `gorm:"index;type:varchar(255)" json:"user_id"`
	LogType      DeploymentLogType `gorm:"not null" json:"log_type"`
	Message      string            `gorm:"type:text;not null" json:"message"`
	CreatedAt    time.Time         `json:"created_at"`

	Deployment Deployment `gorm:"foreignKey:DeploymentID;constraint:OnDelete:CASCADE" json:"deployment,omitempty"`
}
