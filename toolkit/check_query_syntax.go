package toolkit

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CheckQuerySyntaxTool handles the check_query_syntax tool
type CheckQuerySyntaxTool struct {
	deps *Dependencies
}

// NewCheckQuerySyntaxTool creates a new instance of CheckQuerySyntaxTool
func NewCheckQuerySyntaxTool(deps *Dependencies) *CheckQuerySyntaxTool {
	return &CheckQuerySyntaxTool{deps: deps}
}

// Handle processes the check_query_syntax request
func (t *CheckQuerySyntaxTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("Missing required argument: query"), nil
	}

	if err := t.deps.DB.CheckQuery(ctx, query); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Query is not valid: %v", err)), nil
	}
	return mcp.NewToolResultText("Query is valid."), nil
}
