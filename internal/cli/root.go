package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/devbook/devbook/internal/cli/commands"
	"github.com/devbook/devbook/internal/cliopt"
)

// Execute runs the CLI and returns an exit code.
func Execute(argv []string) int {
	globalFS := flag.NewFlagSet("devbook", flag.ContinueOnError)
	globalFS.SetOutput(os.Stderr)
	g := cliopt.DefaultGlobalOptions()
	cliopt.BindGlobalFlags(globalFS, &g)

	if err := globalFS.Parse(argv); err != nil {
		// flag package already printed the error
		return 2
	}

	args := globalFS.Args()
	if len(args) == 0 {
		PrintRootHelp(os.Stdout)
		return 0
	}

	verb := args[0]
	rest := args[1:]

	switch verb {
	case "--help", "-h", "help":
		PrintRootHelp(os.Stdout)
		return 0
	case "serve":
		return commands.RunServe(g, rest)
	case "dump":
		return commands.RunDump(g, rest)
	case "load":
		return commands.RunLoad(g, rest)
	case "search":
		return commands.RunSearch(g, rest)
	case "stats":
		return commands.RunStats(g, rest)
	case "clear":
		return commands.RunClear(g, rest)
	case "fields":
		return commands.RunFields(g, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", verb)
		PrintRootHelp(os.Stderr)
		return 2
	}
}
