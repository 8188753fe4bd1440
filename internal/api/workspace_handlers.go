package api

import (
	"html/template"

	"github.com/gofiber/fiber/v2"
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} - Preview</title>
<style>
body { margin: 0; font-family: ui-sans-serif, system-ui, sans-serif; background: #0a0a0a; color: #fafafa; }
header { padding: 12px 20px; border-bottom: 1px solid #262626; font-size: 14px; }
header span { color: #737373; }
pre { margin: 0; padding: 20px; overflow: auto; font-size: 13px; line-height: 1.6; }
</style>
</head>
<body>
<header>{{.Name}} <span>generated component</span></header>
<pre><code>{{.Code}}</code></pre>
</body>
</html>`))

// handleComponentCode returns a component's stored code and metadata.
func (s *APIServer) handleComponentCode(c *fiber.Ctx) error {
	component, err := s.componentService.GetComponentByID(c.Params("component_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Component not found",
		})
	}

	return c.JSON(fiber.Map{
		"id":         component.ID,
		"project_id": component.ProjectID,
		"name":       component.Name,
		"prompt":     component.Prompt,
		"code":       component.Code,
		"created_at": component.CreatedAt,
		"updated_at": component.UpdatedAt,
	})
}

// handleComponentPreview renders a component's code as a standalone HTML
// page, the server-side analogue of the workspace preview pane.
func (s *APIServer) handleComponentPreview(c *fiber.Ctx) error {
	component, err := s.componentService.GetComponentByID(c.Params("component_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Component not found")
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return previewTemplate.Execute(c.Response().BodyWriter(), map[string]string{
		"Name": component.Name,
		"Code": component.Code,
	})
}

// handleDeploymentLogs returns a deployment's log entries, oldest first.
func (s *APIServer) handleDeploymentLogs(c *fiber.Ctx) error {
	deploymentID := c.Params("deployment_id")
	if _, err := s.deploymentService.GetDeploymentByID(deploymentID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Deployment not found",
		})
	}

	logs, err := s.deploymentService.ListLogsByDeployment(deploymentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list deployment logs",
		})
	}

	logList := make([]fiber.Map, len(logs))
	for i, entry := range logs {
		logList[i] = fiber.Map{
			"type":       entry.LogType,
			"message":    entry.Message,
			"created_at": entry.CreatedAt,
		}
	}

	return c.JSON(fiber.Map{
		"deployment_id": deploymentID,
		"logs":          logList,
		"count":         len(logList),
	})
}

// handleProjectDeployments returns a project's deployment history.
func (s *APIServer) handleProjectDeployments(c *fiber.Ctx) error {
	projectID := c.Params("project_id")
	if _, err := s.projectService.GetProjectByID(projectID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	deployments, err := s.deploymentService.ListDeploymentsByProject(projectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list deployments",
		})
	}

	deploymentList := make([]fiber.Map, len(deployments))
	for i, deployment := range deployments {
		entry := fiber.Map{
			"id":         deployment.ID,
			"status":     deployment.Status,
			"url":        deployment.URL,
			"created_at": deployment.CreatedAt,
		}
		if deployment.Error != "" {
			entry["error"] = deployment.Error
		}
		if deployment.CompletedAt != nil {
			entry["completed_at"] = deployment.CompletedAt
		}
		deploymentList[i] = entry
	}

	return c.JSON(fiber.Map{
		"project_id":  projectID,
		"deployments": deploymentList,
		"count":       len(deploymentList),
	})
}
