package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

func RunClear(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
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

	if err := snap.Save(context.Background(), []byte("{}")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Cleared %s snapshot %s\n", snap.Backend(), snap.Ref())
	return 0
}
