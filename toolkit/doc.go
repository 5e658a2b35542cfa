// Package toolkit assembles the warehouse operations into LLM-callable
// MCP tools.
//
// Four tools are exposed: check_table_summary lists the available tables
// with row counts, check_table_metadata describes columns,
// check_query_syntax validates a query without running it, and
// query_database executes a read-only query with a bounded result set.
// Every invocation is tagged with a request ID, logged, and traced.
package toolkit
