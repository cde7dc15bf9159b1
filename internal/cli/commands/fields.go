package commands

import (
	"flag"
	"os"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

func RunFields(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("fields", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	cliutil.PrintJSON(os.Stdout, devbook.DefaultRegistry.Kinds())
	return 0
}
