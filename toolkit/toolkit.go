package toolkit

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the four database tools on the server. Nil
// Logger or Telemetry in deps is replaced with a no-op implementation.
func RegisterTools(s *server.MCPServer, deps *Dependencies) {
	deps.fill()

	summaryTool := NewCheckTableSummaryTool(deps)
	metadataTool := NewCheckTableMetadataTool(deps)
	syntaxTool := NewCheckQuerySyntaxTool(deps)
	queryTool := NewQueryDatabaseTool(deps)

	s.AddTool(mcp.NewTool(
		"check_table_summary",
		mcp.WithDescription("List the available tables with their row counts. Call this first to see what data exists."),
	), deps.instrument("check_table_summary", summaryTool.Handle))

	s.AddTool(mcp.NewTool(
		"check_table_metadata",
		mcp.WithDescription("Describe the columns of the named tables. Omit table_names to describe every table."),
		mcp.WithString("table_names", mcp.Description("Comma-separated table names")),
	), deps.instrument("check_table_metadata", metadataTool.Handle))

	s.AddTool(mcp.NewTool(
		"check_query_syntax",
		mcp.WithDescription("Validate a read-only SQL query without executing it. Run this before query_database."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The SQL query to validate")),
	), deps.instrument("check_query_syntax", syntaxTool.Handle))

	s.AddTool(mcp.NewTool(
		"query_database",
		mcp.WithDescription("Execute a validated read-only SQL query and return the rows as JSON."),
		mcp.WithString("query", mcp.Required(), mcp.Description("The SQL query to execute")),
		mcp.WithNumber("max_rows", mcp.Description("Maximum rows to return (default 100)")),
	), deps.instrument("query_database", queryTool.Handle))

	deps.Logger.Info("database tools registered", map[string]interface{}{
		"tool_count": 4,
	})
}
