package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

func RunDump(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	snap, err := cliutil.ResolveAdapter(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer snap.Close()

	dump, err := snap.Load(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if g.Format == "json" {
		fmt.Println(string(dump))
		return 0
	}
	cliutil.PrintDump(os.Stdout, dump)
	return 0
}
