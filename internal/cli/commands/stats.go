package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

func RunStats(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var all string
	fs.StringVar(&all, "all", "", "restrict to records matching this free-text probe")
	var fields criteriaArgs
	fs.Var(&fields, "field", "restrict to records matching Kind=probe (repeatable)")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	store, err := openStore(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var records []*devbook.Record
	switch {
	case all != "":
		for _, rec := range store.TextSearch(all) {
			records = append(records, rec)
		}
	case len(fields) > 0:
		criteria, err := fields.Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		for _, rec := range store.Search(criteria) {
			records = append(records, rec)
		}
	default:
		records = store.Records()
	}

	cliutil.PrintJSON(os.Stdout, devbook.SummarizeRates(records))
	return 0
}
