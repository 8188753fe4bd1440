package models

type Framework string

type MessageRole string

type GenerationStatus string

type DeploymentStatus string

type DeploymentLogType string

type ViewMode string

type ViewportSize string

const (
	FrameworkNextJS Framework = "nextjs"
	FrameworkReact  Framework = "react"
	FrameworkVue    Framework = "vue"
	FrameworkSvelte Framework = "svelte"
)

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
	MessageRoleSystem    MessageRole = "system"
)

const (
	GenerationStatusIdle       GenerationStatus = "idle"
	GenerationStatusValidating GenerationStatus = "validating"
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusSuccess    GenerationStatus = "success"
	GenerationStatusError      GenerationStatus = "error"
)

const (
	DeploymentStatusIdle      DeploymentStatus = "idle"
	DeploymentStatusBuilding  DeploymentStatus = "building"
	DeploymentStatusDeploying DeploymentStatus = "deploying"
	DeploymentStatusSuccess   DeploymentStatus = "success"
	DeploymentStatusFailed    DeploymentStatus = "failed"
)

const (
	DeploymentLogTypeInfo    DeploymentLogType = "info"
	DeploymentLogTypeSuccess DeploymentLogType = "success"
	DeploymentLogTypeWarning DeploymentLogType = "warning"
	DeploymentLogTypeError   DeploymentLogType = "error"
)

const (
	ViewModePreview ViewMode = "preview"
	ViewModeCode    ViewMode = "code"
	ViewModeDiff    ViewMode = "diff"
)

const (
	ViewportDesktop ViewportSize = "desktop"
	ViewportTablet  ViewportSize = "tablet"
	ViewportMobile  ViewportSize = "mobile"
)

// IsValidFramework reports whether s is one of the supported framework tags.
func IsValidFramework(s string) bool {
	switch Framework(s) {
	case FrameworkNextJS, FrameworkReact, FrameworkVue, FrameworkSvelte:
		return true
	}
	return false
}
