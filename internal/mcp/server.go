package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gorm.io/gorm"

	"github.com/rxtech-lab/workspace-mcp/internal/deployment"
	"github.com/rxtech-lab/workspace-mcp/internal/generation"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/tools"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type MCPServer struct {
	server    *server.MCPServer
	store     *workspace.Store
	generator *generation.Generator
	deployer  *deployment.Deployer
}

// NewMCPServer wires the workspace store, the orchestrators and all tools
// onto a fresh MCP server. The actor resolver decides which user the tool
// calls act as; a nil sampler keeps the production deployment failure rate.
func NewMCPServer(db *gorm.DB, actor workspace.ActorResolver, sampler deployment.FailureSampler) *MCPServer {
	store := workspace.NewStore(db, actor)
	mcpServer := &MCPServer{
		store:     store,
		generator: generation.NewGenerator(store, generation.DefaultConfig()),
		deployer:  deployment.NewDeployer(store, sampler),
	}
	mcpServer.initializeTools(db)
	return mcpServer
}

func (s *MCPServer) initializeTools(db *gorm.DB) {
	srv := server.NewMCPServer(
		"AI Workspace MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	srv.AddPrompt(mcp.NewPrompt("workspace-mcp-usage",
		mcp.WithPromptDescription("Instructions and guidance for using workspace MCP tools"),
		mcp.WithArgument("tool_category",
			mcp.ArgumentDescription("Category of tools to get instructions for (project, generation, version, deployment, or all)"),
			mcp.RequiredArgument(),
		),
	), func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		category := request.Params.Arguments["tool_category"]
		if category == "" {
			return nil, fmt.Errorf("tool_category is required")
		}

		instructions := getToolInstructions(category)

		return mcp.NewGetPromptResult(
			fmt.Sprintf("Workspace MCP Tools - %s", category),
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(
					mcp.RoleUser,
					mcp.NewTextContent(instructions),
				),
			},
		), nil
	})

	versionService := services.NewVersionService(db)

	// Project Tools
	createProjectTool, createProjectHandler := tools.NewCreateProjectTool(s.store)
	srv.AddTool(createProjectTool, createProjectHandler)

	listProjectsTool, listProjectsHandler := tools.NewListProjectsTool(s.store)
	srv.AddTool(listProjectsTool, listProjectsHandler)

	switchProjectTool, switchProjectHandler := tools.NewSwitchProjectTool(s.store)
	srv.AddTool(switchProjectTool, switchProjectHandler)

	deleteProjectTool, deleteProjectHandler := tools.NewDeleteProjectTool(s.store)
	srv.AddTool(deleteProjectTool, deleteProjectHandler)

	// Conversation Tools
	listMessagesTool, listMessagesHandler := tools.NewListMessagesTool(s.store)
	srv.AddTool(listMessagesTool, listMessagesHandler)

	// Generation Tools
	generateComponent := tools.NewGenerateComponentTool(s.store, s.generator)
	srv.AddTool(generateComponent.GetTool(), generateComponent.GetHandler())

	cancelGenerationTool, cancelGenerationHandler := tools.NewCancelGenerationTool(s.generator)
	srv.AddTool(cancelGenerationTool, cancelGenerationHandler)

	validateCodeTool, validateCodeHandler := tools.NewValidateCodeTool()
	srv.AddTool(validateCodeTool, validateCodeHandler)

	// Version History Tools
	saveVersionTool, saveVersionHandler := tools.NewSaveVersionTool(s.store)
	srv.AddTool(saveVersionTool, saveVersionHandler)

	listVersionsTool, listVersionsHandler := tools.NewListVersionsTool(s.store, versionService)
	srv.AddTool(listVersionsTool, listVersionsHandler)

	restoreVersionTool, restoreVersionHandler := tools.NewRestoreVersionTool(s.store, versionService)
	srv.AddTool(restoreVersionTool, restoreVersionHandler)

	compareVersionsTool, compareVersionsHandler := tools.NewCompareVersionsTool(versionService)
	srv.AddTool(compareVersionsTool, compareVersionsHandler)

	// Deployment Tools
	deployProject := tools.NewDeployProjectTool(s.store, s.deployer)
	srv.AddTool(deployProject.GetTool(), deployProject.GetHandler())

	listDeploymentLogsTool, listDeploymentLogsHandler := tools.NewListDeploymentLogsTool(s.store)
	srv.AddTool(listDeploymentLogsTool, listDeploymentLogsHandler)

	s.server = srv
}

func getToolInstructions(category string) string {
	switch category {
	case "project":
		return `Project Tools:

1. create_project - Create a project and make it active
   Usage: Start a new workspace; framework defaults to nextjs

2. list_projects - List your projects, most recently updated first
   Usage: Find project IDs and see which one is active

3. switch_project - Activate another project
   Usage: Loads that project's conversation and components

4. delete_project - Delete a project and everything under it
   Usage: Messages, components, versions and deployments go with it`

	case "generation":
		return `Generation Tools:

1. generate_component - Generate a UI component from a prompt
   Usage: Prompts of 10-2000 characters; keywords steer the catalog pick
   (hero/landing/header, card/feature/grid, stat/number/metric)

2. cancel_generation - Abort the in-flight generation
   Usage: The lifecycle returns to idle with no messages appended

3. validate_code - Static checks over a code snippet
   Usage: Balance errors block; console/debugger leftovers only warn`

	case "version":
		return `Version History Tools:

1. save_version - Snapshot a component's current code
   Usage: Numbers are sequential per component; labels are optional

2. list_versions - List a component's versions, newest first
   Usage: Find version IDs for restore and compare

3. restore_version - Overwrite a component's code with a snapshot
   Usage: Does not record a new version; save first to keep current code

4. compare_versions - Line-by-line comparison of two versions
   Usage: Lines pair by position; both sides always have equal length`

	case "deployment":
		return `Deployment Tools:

1. deploy_project - Run the deployment pipeline for the active project
   Usage: Returns the public URL on success; a small fraction of runs
   fails with a build error

2. list_deployment_logs - List a deployment's log entries, oldest first
   Usage: Defaults to the most recent deployment`

	case "all":
		return `AI Workspace MCP Tools Overview:

This MCP server provides 14 tools for a project-based component workspace:

PROJECT (4 tools):
- create_project: Create and activate a project
- list_projects: List projects, most recent first
- switch_project: Activate another project
- delete_project: Delete a project and its data

GENERATION (3 tools):
- generate_component: Generate a component from a prompt
- cancel_generation: Abort the in-flight generation
- validate_code: Static checks over a snippet

VERSION HISTORY (4 tools):
- save_version: Snapshot current code
- list_versions: List snapshots, newest first
- restore_version: Overwrite code with a snapshot
- compare_versions: Line-by-line comparison

DEPLOYMENT (2 tools):
- deploy_project: Run the simulated pipeline
- list_deployment_logs: Read a deployment's log history

CONVERSATION (1 tool):
- list_messages: The active project's transcript`

	default:
		return `Invalid category. Available categories: project, generation, version, deployment, all`
	}
}

func (s *MCPServer) Start() error {
	return server.ServeStdio(s.server)
}

// Store returns the workspace store backing the tools.
func (s *MCPServer) Store() *workspace.Store {
	return s.store
}

// Deployer returns the deployment orchestrator, mainly so callers can cancel.
func (s *MCPServer) Deployer() *deployment.Deployer {
	return s.deployer
}

// ServerInstance exposes the underlying MCP server for transports other than
// stdio.
func (s *MCPServer) ServerInstance() *server.MCPServer {
	return s.server
}
