// Package warehouse provides read-only access to the analytical database
// the snowkit tools query: table discovery, column metadata, row-count
// summaries, EXPLAIN-based query validation and bounded query execution.
//
// It wraps a standard *sql.DB; the Dialect interface abstracts the
// introspection SQL so the same code serves SQLite fixtures and
// information_schema-style warehouses. Table metadata and summaries can be
// served from a Cache (in-memory or Redis) because LLM agents tend to ask
// for the same schema many times per conversation.
package warehouse
