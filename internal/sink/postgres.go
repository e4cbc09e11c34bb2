package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"foodpipe/internal/table"
)

// Postgres replaces a database table with the dataset on every run. All
// columns land as TEXT; typing them is the consumer's concern.
type Postgres struct {
	db    *sql.DB
	table string
}

// NewPostgres opens a connection pool against dsn and verifies it with a
// ping. The caller owns the returned sink and should Close it when done.
func NewPostgres(ctx context.Context, dsn, tableName string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{db: db, table: tableName}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

// Write drops the target table, recreates it from the dataset's header, and
// bulk-loads the rows with COPY inside a single transaction.
func (p *Postgres) Write(ctx context.Context, t *table.Table) error {
	if t.Width() == 0 {
		return fmt.Errorf("dataset has no columns")
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, dropStatement(p.table)); err != nil {
		return fmt.Errorf("drop table %s: %w", p.table, err)
	}

	cols := t.Columns()
	if _, err := tx.ExecContext(ctx, createStatement(p.table, cols)); err != nil {
		return fmt.Errorf("create table %s: %w", p.table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(p.table, cols...))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}
	for _, row := range t.Rows() {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			stmt.Close()
			return fmt.Errorf("copy row: %w", err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// dropStatement builds the DDL that clears the target table.
func dropStatement(name string) string {
	return "DROP TABLE IF EXISTS " + pq.QuoteIdentifier(name)
}

// createStatement builds the all-TEXT table definition. Identifiers go
// through pq.QuoteIdentifier so a name that needs quoting arrives intact.
func createStatement(name string, cols []string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = pq.QuoteIdentifier(c) + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pq.QuoteIdentifier(name), strings.Join(defs, ", "))
}
