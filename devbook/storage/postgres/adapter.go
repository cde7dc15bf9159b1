// Package postgres persists snapshots in a PostgreSQL table inside a
// dedicated schema, one row per record.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/devbook/devbook/devbook/storage"
)

const ddl = `
CREATE TABLE IF NOT EXISTS records (
	id     BIGINT PRIMARY KEY,
	fields JSONB NOT NULL
);`

var schemaNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Adapter struct {
	DSN    string
	Schema string

	db *sql.DB
}

func New(dsn, schema string) *Adapter {
	if schema == "" {
		schema = "devbook"
	}
	return &Adapter{DSN: dsn, Schema: schema}
}

func (a *Adapter) Backend() storage.Backend {
	return storage.BackendPostgres
}

func (a *Adapter) Ref() string {
	return a.DSN
}

func quoteIdent(ident string) string {
	// ident is validated to contain no quotes; safe to wrap
	return `"` + ident + `"`
}

func (a *Adapter) ensureSchema(ctx context.Context, db *sql.DB) error {
	if !schemaNameRe.MatchString(a.Schema) {
		return fmt.Errorf("invalid postgres schema name %q (must match %s)", a.Schema, schemaNameRe.String())
	}
	_, err := db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoteIdent(a.Schema))
	return err
}

func (a *Adapter) connect(ctx context.Context) (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	// First connection ensures the schema exists, second one runs with
	// search_path pinned to it.
	cfg0, err := pgx.ParseConfig(a.DSN)
	if err != nil {
		return nil, err
	}
	db0 := stdlib.OpenDB(*cfg0)
	if err := db0.PingContext(ctx); err != nil {
		_ = db0.Close()
		return nil, err
	}
	if err := a.ensureSchema(ctx, db0); err != nil {
		_ = db0.Close()
		return nil, err
	}
	_ = db0.Close()

	cfg, err := pgx.ParseConfig(a.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.RuntimeParams == nil {
		cfg.RuntimeParams = make(map[string]string)
	}
	cfg.RuntimeParams["search_path"] = fmt.Sprintf("%s,public", quoteIdent(a.Schema))

	db := stdlib.OpenDB(*cfg)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	a.db = db
	return db, nil
}

func (a *Adapter) Load(ctx context.Context) ([]byte, error) {
	db, err := a.connect(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, fields FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	var out []storage.Row
	for rows.Next() {
		var row storage.Row
		var fields []byte
		if err := rows.Scan(&row.ID, &fields); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		row.Fields = fields
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot rows: %w", err)
	}
	return storage.ComposeDump(out), nil
}

func (a *Adapter) Save(ctx context.Context, dump []byte) error {
	entries, err := storage.DecomposeDump(dump)
	if err != nil {
		return err
	}
	db, err := a.connect(ctx)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	for _, row := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (id, fields) VALUES ($1, $2)`,
			row.ID, string(row.Fields)); err != nil {
			return fmt.Errorf("write record %d: %w", row.ID, err)
		}
	}
	return tx.Commit()
}

func (a *Adapter) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
