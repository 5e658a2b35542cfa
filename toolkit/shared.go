package toolkit

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/snowkit/snowkit/logging"
	"github.com/snowkit/snowkit/telemetry"
	"github.com/snowkit/snowkit/warehouse"
)

// Instructions tells an LLM agent how to use the toolkit. Hosts embed it
// in the system prompt of whatever agent they hand the tools to.
const Instructions = `You can answer questions about a database with these tools.

Work in this order:
1. Call check_table_summary to see which tables exist and how large they are.
2. Call check_table_metadata for the tables you plan to query to learn
   their columns and types.
3. Write a single read-only SQL query and validate it with
   check_query_syntax. Fix the query until it validates.
4. Call query_database with the validated query.

Only read queries are allowed. Results are capped; add LIMIT and WHERE
clauses instead of selecting everything. Never guess column names - check
the metadata first.`

// Dependencies holds shared resources for tools
type Dependencies struct {
	DB        *warehouse.DB
	Logger    logging.Logger
	Telemetry telemetry.Telemetry
}

// fill replaces nil collaborators with no-op implementations so the
// tools never have to nil-check.
func (d *Dependencies) fill() {
	if d.Logger == nil {
		d.Logger = &logging.NoOpLogger{}
	}
	if d.Telemetry == nil {
		d.Telemetry = &telemetry.NoOpTelemetry{}
	}
}

// instrument wraps a tool handler with a request ID, start/finish
// logging, and a telemetry span.
func (d *Dependencies) instrument(toolName string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		requestID := uuid.New().String()
		started := time.Now()

		ctx, span := d.Telemetry.StartSpan(ctx, "tool."+toolName)
		defer span.End()
		span.SetAttribute("tool", toolName)
		span.SetAttribute("request_id", requestID)

		d.Logger.Info("tool invocation started", map[string]interface{}{
			"tool":       toolName,
			"request_id": requestID,
		})

		result, err := handler(ctx, request)

		fields := map[string]interface{}{
			"tool":       toolName,
			"request_id": requestID,
			"duration":   time.Since(started).String(),
		}
		switch {
		case err != nil:
			span.RecordError(err)
			d.Telemetry.RecordMetric("tool.errors", 1, map[string]string{"tool": toolName})
			fields["error"] = err.Error()
			d.Logger.Error("tool invocation failed", fields)
		case result != nil && result.IsError:
			d.Telemetry.RecordMetric("tool.errors", 1, map[string]string{"tool": toolName})
			d.Logger.Warn("tool invocation returned an error result", fields)
		default:
			d.Logger.Info("tool invocation finished", fields)
		}
		d.Telemetry.RecordMetric("tool.invocations", 1, map[string]string{"tool": toolName})

		return result, err
	}
}

// splitTableNames turns the comma-separated table_names argument into a
// clean slice. Empty segments are dropped.
func splitTableNames(raw string) []string {
	var tables []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tables = append(tables, part)
		}
	}
	return tables
}
