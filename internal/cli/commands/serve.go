package commands

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
	"github.com/devbook/devbook/internal/httpapi"
)

func RunServe(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	addr := os.Getenv("DEVBOOK_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	fs.StringVar(&addr, "addr", addr, "listen address")
	load := fs.Bool("load", true, "load the snapshot at startup")
	debug := fs.Bool("debug", false, "verbose gin output")
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}

	snap, err := cliutil.ResolveAdapter(g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer snap.Close()

	store := devbook.NewStore()
	server := httpapi.New(store, snap, logger)

	if *load {
		if err := server.LoadSnapshot(context.Background()); err != nil {
			logger.Error("failed to load snapshot", "backend", snap.Backend(), "ref", snap.Ref(), "error", err)
			return 1
		}
	}

	if err := server.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		return 1
	}
	return 0
}
