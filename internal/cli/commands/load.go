package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

func RunLoad(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var input string
	fs.StringVar(&input, "f", "", "JSON dump file to import (required)")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "missing -f")
		return 2
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Round-trip through the store: every field is re-validated and ids
	// are renumbered before anything is persisted.
	store := devbook.NewStore()
	if err := store.Load(data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	dump, err := store.Dump()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	snap, err := cliutil.ResolveAdapter(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer snap.Close()

	if err := snap.Save(context.Background(), dump); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Loaded %d records into %s snapshot %s\n", store.Len(), snap.Backend(), snap.Ref())
	return 0
}
