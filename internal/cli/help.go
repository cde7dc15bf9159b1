package cli

import (
	"fmt"
	"io"
)

func PrintRootHelp(w io.Writer) {
	fmt.Fprintln(w, `devbook — developer contact book with pluggable snapshot storage

USAGE
  devbook [global flags] <command> [args]

GLOBAL FLAGS
  --backend file|sqlite|postgres
  --file <path.json>
  --sqlite-path <dir|file.db>
  --pg-dsn <dsn>
  --pg-schema <name>
  --format pretty|json

COMMANDS
  serve     run the HTTP server
  dump      print the stored snapshot
  load      import a JSON dump file into the snapshot backend
  search    search the snapshot (free text or per-field)
  stats     rate statistics over the snapshot
  clear     empty the snapshot
  fields    list registered field kinds

Run "devbook <command> --help" for command flags.`)
}
