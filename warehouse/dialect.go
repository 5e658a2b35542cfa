package warehouse

// Dialect supplies the introspection SQL that differs between engines.
type Dialect interface {
	// Name identifies the dialect in logs and tool output.
	Name() string

	// TableNamesQuery returns a query yielding one table name per row.
	TableNamesQuery() string

	// ColumnsQuery returns a query with a single placeholder for the
	// table name, yielding (column name, data type) rows.
	ColumnsQuery() string

	// ExplainQuery wraps a query so the engine plans it without
	// executing it.
	ExplainQuery(query string) string
}

// SQLiteDialect targets SQLite, used for local fixtures and tests.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string {
	return "sqlite"
}

func (SQLiteDialect) TableNamesQuery() string {
	return "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
}

func (SQLiteDialect) ColumnsQuery() string {
	return "SELECT name, type FROM pragma_table_info(?)"
}

func (SQLiteDialect) ExplainQuery(query string) string {
	return "EXPLAIN QUERY PLAN " + query
}

// InformationSchemaDialect targets warehouses exposing ANSI
// information_schema catalogs (Snowflake, Postgres and friends).
type InformationSchemaDialect struct{}

func (InformationSchemaDialect) Name() string {
	return "information_schema"
}

func (InformationSchemaDialect) TableNamesQuery() string {
	return "SELECT table_name FROM information_schema.tables WHERE table_type = 'BASE TABLE' ORDER BY table_name"
}

func (InformationSchemaDialect) ColumnsQuery() string {
	return "SELECT column_name, data_type FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position"
}

func (InformationSchemaDialect) ExplainQuery(query string) string {
	return "EXPLAIN " + query
}

// DialectForDriver picks a dialect from a database/sql driver name.
func DialectForDriver(driver string) Dialect {
	switch driver {
	case "sqlite3", "sqlite":
		return SQLiteDialect{}
	default:
		return InformationSchemaDialect{}
	}
}
