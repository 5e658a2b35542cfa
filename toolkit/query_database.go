package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// QueryDatabaseTool handles the query_database tool
type QueryDatabaseTool struct {
	deps *Dependencies
}

// NewQueryDatabaseTool creates a new instance of QueryDatabaseTool
func NewQueryDatabaseTool(deps *Dependencies) *QueryDatabaseTool {
	return &QueryDatabaseTool{deps: deps}
}

// Handle processes the query_database request
func (t *QueryDatabaseTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("Missing required argument: query"), nil
	}
	maxRows := int(request.GetFloat("max_rows", 0))

	result, err := t.deps.DB.RunQuery(ctx, query, maxRows)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Query failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Encoding result failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
