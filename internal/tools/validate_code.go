package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/validation"
)

type ValidateCodeArguments struct {
	Code string `json:"code" validate:"required"`
}

func NewValidateCodeTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("validate_code",
		mcp.WithDescription("Run the workspace's static checks over a code snippet: brace and parenthesis balance as errors, leftover console statements and debugger keywords as warnings. Warnings never make the result invalid."),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The code to check"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ValidateCodeArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		result := validation.ValidateCode(args.Code)

		summary := "Code is valid"
		if !result.IsValid {
			summary = "Code has problems"
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent(summary + ": "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
