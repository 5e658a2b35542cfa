package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// In-memory SQLite is per-connection; keep the pool at one.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	stmts := []string{
		`CREATE TABLE accounts (id INTEGER PRIMARY KEY, owner TEXT NOT NULL, balance REAL)`,
		`CREATE TABLE transfers (id INTEGER PRIMARY KEY, src INTEGER, dst INTEGER, amount REAL)`,
		`INSERT INTO accounts (owner, balance) VALUES ('ada', 12.5), ('grace', 99.0), ('edsger', 0.0)`,
		`INSERT INTO transfers (src, dst, amount) VALUES (1, 2, 5.0)`,
	}
	for _, stmt := range stmts {
		_, err := sqlDB.Exec(stmt)
		require.NoError(t, err)
	}
	return sqlDB
}

func fixtureDB(t *testing.T) *DB {
	return NewDB(openFixture(t), SQLiteDialect{}, nil)
}

func TestTableNames(t *testing.T) {
	db := fixtureDB(t)

	names, err := db.TableNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"accounts", "transfers"}, names)
}

func TestTableMetadataForNamedTable(t *testing.T) {
	db := fixtureDB(t)

	meta, err := db.TableMetadata(context.Background(), []string{"accounts"})
	require.NoError(t, err)
	require.Contains(t, meta, "accounts")

	var names []string
	for _, c := range meta["accounts"] {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"id", "owner", "balance"}, names)
}

func TestTableMetadataDefaultsToAllTables(t *testing.T) {
	db := fixtureDB(t)

	meta, err := db.TableMetadata(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, meta, 2)
	assert.Contains(t, meta, "accounts")
	assert.Contains(t, meta, "transfers")
}

func TestTableMetadataUnknownTableFails(t *testing.T) {
	db := fixtureDB(t)

	_, err := db.TableMetadata(context.Background(), []string{"ghosts"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghosts")
}

func TestTableMetadataIsServedFromCache(t *testing.T) {
	sqlDB := openFixture(t)
	db := NewDB(sqlDB, SQLiteDialect{}, &Options{CacheTTL: time.Minute})
	ctx := context.Background()

	first, err := db.TableMetadata(ctx, []string{"accounts"})
	require.NoError(t, err)

	// Dropping the table proves the second read never reaches SQLite.
	_, err = sqlDB.Exec("DROP TABLE accounts")
	require.NoError(t, err)

	second, err := db.TableMetadata(ctx, []string{"accounts"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSummaryCountsRows(t *testing.T) {
	db := fixtureDB(t)

	summaries, err := db.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []TableSummary{
		{Name: "accounts", RowCount: 3},
		{Name: "transfers", RowCount: 1},
	}, summaries)
}

func TestCheckQueryAcceptsValidSelect(t *testing.T) {
	db := fixtureDB(t)
	assert.NoError(t, db.CheckQuery(context.Background(), "SELECT owner FROM accounts WHERE balance > 1"))
}

func TestCheckQueryReportsSyntaxErrors(t *testing.T) {
	db := fixtureDB(t)
	err := db.CheckQuery(context.Background(), "SELECT owner FROMM accounts")
	require.Error(t, err)
}

func TestCheckQueryRejectsWrites(t *testing.T) {
	db := fixtureDB(t)
	err := db.CheckQuery(context.Background(), "DELETE FROM accounts")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadOnly))
}

func TestRunQueryReturnsRows(t *testing.T) {
	db := fixtureDB(t)

	res, err := db.RunQuery(context.Background(), "SELECT owner, balance FROM accounts ORDER BY owner", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner", "balance"}, res.Columns)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, "ada", res.Rows[0]["owner"])
	assert.False(t, res.Truncated)
}

func TestRunQueryHonorsRowCap(t *testing.T) {
	db := fixtureDB(t)

	res, err := db.RunQuery(context.Background(), "SELECT id FROM accounts ORDER BY id", 2)
	require.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.True(t, res.Truncated)
}

func TestRunQueryAcceptsCTEs(t *testing.T) {
	db := fixtureDB(t)

	res, err := db.RunQuery(context.Background(),
		"WITH rich AS (SELECT * FROM accounts WHERE balance > 10) SELECT COUNT(*) AS n FROM rich", 0)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.EqualValues(t, 2, res.Rows[0]["n"])
}

func TestRunQueryRejectsWrites(t *testing.T) {
	db := fixtureDB(t)

	for _, q := range []string{
		"INSERT INTO accounts (owner) VALUES ('mallory')",
		"UPDATE accounts SET balance = 0",
		"DROP TABLE accounts",
		"  ",
	} {
		_, err := db.RunQuery(context.Background(), q, 0)
		require.Error(t, err, "query %q", q)
		assert.True(t, errors.Is(err, ErrReadOnly), "query %q", q)
	}
}

func TestRunQueryRejectsCTEPrefixedWrites(t *testing.T) {
	db := fixtureDB(t)
	ctx := context.Background()

	_, err := db.RunQuery(ctx, "WITH x AS (SELECT 1) DELETE FROM accounts", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadOnly))

	res, err := db.RunQuery(ctx, "SELECT COUNT(*) AS n FROM accounts", 0)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.EqualValues(t, 3, res.Rows[0]["n"], "table must be untouched")
}

func TestCheckQueryRejectsCTEPrefixedWrites(t *testing.T) {
	db := fixtureDB(t)

	err := db.CheckQuery(context.Background(), "WITH x AS (SELECT 1) DELETE FROM accounts")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadOnly))
}

func TestDialectForDriver(t *testing.T) {
	assert.Equal(t, "sqlite", DialectForDriver("sqlite3").Name())
	assert.Equal(t, "information_schema", DialectForDriver("snowflake").Name())
}
