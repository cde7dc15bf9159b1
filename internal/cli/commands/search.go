package commands

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

func RunSearch(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var all string
	fs.StringVar(&all, "all", "", "free-text probe across every field")
	var fields criteriaArgs
	fs.Var(&fields, "field", "per-kind probe Kind=probe (repeatable)")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if all == "" && len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "missing -all or -field")
		return 2
	}

	store, err := openStore(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var result map[int]*devbook.Record
	if all != "" {
		result = store.TextSearch(all)
	} else {
		criteria, err := fields.Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		result = store.Search(criteria)
	}

	out := make(map[string]*devbook.Record, len(result))
	for id, rec := range result {
		out[strconv.Itoa(id)] = rec
	}
	cliutil.PrintJSON(os.Stdout, out)
	return 0
}
