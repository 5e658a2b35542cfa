package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// CheckTableMetadataTool handles the check_table_metadata tool
type CheckTableMetadataTool struct {
	deps *Dependencies
}

// NewCheckTableMetadataTool creates a new instance of CheckTableMetadataTool
func NewCheckTableMetadataTool(deps *Dependencies) *CheckTableMetadataTool {
	return &CheckTableMetadataTool{deps: deps}
}

// Handle processes the check_table_metadata request
func (t *CheckTableMetadataTool) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tables := splitTableNames(request.GetString("table_names", ""))

	metadata, err := t.deps.DB.TableMetadata(ctx, tables)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Describing tables failed: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Encoding metadata failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
