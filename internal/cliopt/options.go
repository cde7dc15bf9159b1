package cliopt

import "flag"

// GlobalOptions are parsed once at the CLI root and passed to
// subcommands. They select the snapshot backend and output shape.
//
// NOTE: This is a separate package to avoid import cycles between the
// root command router and per-command code.
type GlobalOptions struct {
	Backend        string
	FilePath       string
	SQLitePath     string
	PostgresDSN    string
	PostgresSchema string

	Format string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Backend:    "file",
		FilePath:   "ab.json",
		SQLitePath: ".",
		Format:     "pretty",
	}
}

func BindGlobalFlags(fs *flag.FlagSet, g *GlobalOptions) {
	fs.StringVar(&g.Backend, "backend", g.Backend, "snapshot backend: file|sqlite|postgres")

	fs.StringVar(&g.FilePath, "file", g.FilePath, "snapshot JSON file path (file backend)")
	fs.StringVar(&g.SQLitePath, "sqlite-path", g.SQLitePath, "sqlite directory or explicit .db file path")
	fs.StringVar(&g.PostgresDSN, "pg-dsn", g.PostgresDSN, "postgres DSN")
	fs.StringVar(&g.PostgresSchema, "pg-schema", g.PostgresSchema, "postgres schema name (default: devbook)")

	fs.StringVar(&g.Format, "format", g.Format, "output format: pretty or json")
}
