package warehouse

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/snowkit/snowkit/logging"
)

// DefaultMaxRows bounds query results when the caller does not.
const DefaultMaxRows = 100

// defaultCacheTTL keeps schema metadata warm for the span of a typical
// agent conversation without letting it go stale for long.
const defaultCacheTTL = 10 * time.Minute

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column describes one column of a table.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TableSummary pairs a table with its current row count.
type TableSummary struct {
	Name     string `json:"name"`
	RowCount int64  `json:"row_count"`
}

// ResultSet is the bounded outcome of a read-only query.
type ResultSet struct {
	Columns   []string                 `json:"columns"`
	Rows      []map[string]interface{} `json:"rows"`
	Truncated bool                     `json:"truncated"`
}

// Options configures optional DB collaborators.
type Options struct {
	Cache    Cache
	CacheTTL time.Duration
	Logger   logging.Logger
}

// DB exposes the read-only warehouse operations the tools are built on.
type DB struct {
	sql     *sql.DB
	dialect Dialect
	cache   Cache
	ttl     time.Duration
	logger  logging.Logger
}

// NewDB wraps an open database handle. A nil opts gets an in-memory
// metadata cache and a no-op logger.
func NewDB(sqlDB *sql.DB, dialect Dialect, opts *Options) *DB {
	db := &DB{
		sql:     sqlDB,
		dialect: dialect,
		cache:   NewMemoryCache(),
		ttl:     defaultCacheTTL,
		logger:  &logging.NoOpLogger{},
	}
	if opts != nil {
		if opts.Cache != nil {
			db.cache = opts.Cache
		}
		if opts.CacheTTL > 0 {
			db.ttl = opts.CacheTTL
		}
		if opts.Logger != nil {
			db.logger = opts.Logger
		}
	}
	return db
}

// Dialect returns the dialect the DB introspects with.
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// TableNames lists the warehouse's tables.
func (d *DB) TableNames(ctx context.Context) ([]string, error) {
	rows, err := d.sql.QueryContext(ctx, d.dialect.TableNamesQuery())
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing tables: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// TableMetadata returns column metadata for the named tables, or for every
// table when tables is empty. Per-table metadata is served from the cache
// when warm.
func (d *DB) TableMetadata(ctx context.Context, tables []string) (map[string][]Column, error) {
	if len(tables) == 0 {
		all, err := d.TableNames(ctx)
		if err != nil {
			return nil, err
		}
		tables = all
	}

	out := make(map[string][]Column, len(tables))
	for _, table := range tables {
		cols, err := d.tableColumns(ctx, table)
		if err != nil {
			return nil, err
		}
		out[table] = cols
	}
	return out, nil
}

func (d *DB) tableColumns(ctx context.Context, table string) ([]Column, error) {
	cacheKey := "metadata:" + table
	if cached, err := d.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var cols []Column
		if err := json.Unmarshal([]byte(cached), &cols); err == nil {
			d.logger.Debug("schema cache hit", map[string]interface{}{
				"operation": "table_metadata",
				"table":     table,
			})
			return cols, nil
		}
	}

	rows, err := d.sql.QueryContext(ctx, d.dialect.ColumnsQuery(), table)
	if err != nil {
		return nil, fmt.Errorf("describing table %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.Type); err != nil {
			return nil, fmt.Errorf("describing table %s: %w", table, err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describing table %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s not found", table)
	}

	if encoded, err := json.Marshal(cols); err == nil {
		// Cache write failures are not worth failing the lookup over.
		_ = d.cache.Set(ctx, cacheKey, string(encoded), d.ttl)
	}
	return cols, nil
}

// Summary returns every table with its row count, cached as one unit.
func (d *DB) Summary(ctx context.Context) ([]TableSummary, error) {
	const cacheKey = "summary"
	if cached, err := d.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var summaries []TableSummary
		if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
			d.logger.Debug("schema cache hit", map[string]interface{}{
				"operation": "table_summary",
			})
			return summaries, nil
		}
	}

	names, err := d.TableNames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]TableSummary, 0, len(names))
	for _, name := range names {
		if !identPattern.MatchString(name) {
			// Exotic table names cannot be interpolated safely; report
			// them without a count rather than guessing at quoting rules.
			summaries = append(summaries, TableSummary{Name: name, RowCount: -1})
			continue
		}
		var count int64
		row := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+name)
		if err := row.Scan(&count); err != nil {
			return nil, fmt.Errorf("counting rows of %s: %w", name, err)
		}
		summaries = append(summaries, TableSummary{Name: name, RowCount: count})
	}

	if encoded, err := json.Marshal(summaries); err == nil {
		_ = d.cache.Set(ctx, cacheKey, string(encoded), d.ttl)
	}
	return summaries, nil
}

// CheckQuery validates a read-only query by asking the engine to plan it
// without executing it. A nil return means the query parsed and planned.
func (d *DB) CheckQuery(ctx context.Context, query string) error {
	if err := ensureReadOnly(query); err != nil {
		return err
	}

	rows, err := d.sql.QueryContext(ctx, d.dialect.ExplainQuery(query))
	if err != nil {
		return err
	}
	return rows.Close()
}

// RunQuery executes a read-only query and returns at most maxRows rows.
// A maxRows of zero or less applies DefaultMaxRows.
func (d *DB) RunQuery(ctx context.Context, query string, maxRows int) (*ResultSet, error) {
	if err := ensureReadOnly(query); err != nil {
		return nil, err
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	started := time.Now()
	rows, err := d.sql.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &ResultSet{Columns: cols, Rows: []map[string]interface{}{}}
	values := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if len(result.Rows) >= maxRows {
			result.Truncated = true
			break
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		record := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			record[col] = v
		}
		result.Rows = append(result.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	d.logger.Debug("query executed", map[string]interface{}{
		"operation": "run_query",
		"rows":      len(result.Rows),
		"truncated": result.Truncated,
		"duration":  time.Since(started).String(),
	})
	return result, nil
}
