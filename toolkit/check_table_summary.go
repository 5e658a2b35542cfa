package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CheckTableSummaryTool handles the check_table_summary tool
type CheckTableSummaryTool struct {
	deps *Dependencies
}

// NewCheckTableSummaryTool creates a new instance of CheckTableSummaryTool
func NewCheckTableSummaryTool(deps *Dependencies) *CheckTableSummaryTool {
	return &CheckTableSummaryTool{deps: deps}
}

// Handle processes the check_table_summary request
func (t *CheckTableSummaryTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := t.deps.DB.Summary(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Listing tables failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Encoding summaries failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
