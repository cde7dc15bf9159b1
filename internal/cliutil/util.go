package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/devbook/devbook/devbook/storage"
	"github.com/devbook/devbook/devbook/storage/file"
	"github.com/devbook/devbook/devbook/storage/postgres"
	"github.com/devbook/devbook/devbook/storage/sqlite"
	"github.com/devbook/devbook/internal/cliopt"
)

func PrintJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

// PrintDump pretty-prints a raw snapshot dump.
func PrintDump(w io.Writer, dump []byte) {
	var v any
	if err := json.Unmarshal(dump, &v); err != nil {
		fmt.Fprintln(w, string(dump))
		return
	}
	PrintJSON(w, v)
}

// ResolveAdapter turns the global backend options into a snapshot
// adapter.
//
//   - file: uses --file as-is
//   - sqlite: --sqlite-path taken as an explicit .db file when it looks
//     like one, else <sqlite-path>/devbook.db
//   - postgres: --pg-dsn with the --pg-schema namespace
func ResolveAdapter(g cliopt.GlobalOptions) (storage.Adapter, error) {
	switch strings.ToLower(g.Backend) {
	case "file", "":
		return file.New(g.FilePath), nil
	case "sqlite":
		path := g.SQLitePath
		if !strings.HasSuffix(path, ".db") {
			path = filepath.Join(path, "devbook.db")
		}
		return sqlite.New(path), nil
	case "postgres", "pg":
		if g.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres backend requires --pg-dsn")
		}
		return postgres.New(g.PostgresDSN, g.PostgresSchema), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want file, sqlite or postgres)", g.Backend)
	}
}
