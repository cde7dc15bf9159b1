// Package sqlite persists snapshots in a SQLite file, one row per
// record. The driver is registered by the importing binary; the default
// is modernc.org/sqlite under the name "sqlite".
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/devbook/devbook/devbook/storage"
)

const ddl = `
CREATE TABLE IF NOT EXISTS records (
	id     INTEGER PRIMARY KEY,
	fields TEXT NOT NULL
);`

type Adapter struct {
	Path       string
	DriverName string

	db *sql.DB
}

func New(path string) *Adapter {
	return &Adapter{Path: path, DriverName: "sqlite"}
}

func NewWithDriver(path, driver string) *Adapter {
	return &Adapter{Path: path, DriverName: driver}
}

func (a *Adapter) Backend() storage.Backend {
	return storage.BackendSQLite
}

func (a *Adapter) Ref() string {
	return a.Path
}

func (a *Adapter) connect(ctx context.Context) (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	dsn := a.Path
	if strings.Contains(dsn, "?") {
		dsn += "&_busy_timeout=5000"
	} else {
		dsn += "?_busy_timeout=5000"
	}
	db, err := sql.Open(a.DriverName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
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
		var fields string
		if err := rows.Scan(&row.ID, &fields); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		row.Fields = []byte(fields)
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
			`INSERT INTO records (id, fields) VALUES (?, ?)`,
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
