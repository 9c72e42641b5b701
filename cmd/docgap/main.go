// Package main provides the entry point for the docgap CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/docgap/cmd/docgap/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Signal handling only matters before the run starts; the diff
	// itself is one short batch computation.
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
