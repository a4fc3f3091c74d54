// Package main is the entry point for the autoslice CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/autoslice/cmd/autoslice/commands"
	"go.trai.ch/autoslice/internal/app"
	_ "go.trai.ch/autoslice/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// Wiring created the workspace directory; remove it even on paths
	// that never reach App.Run, such as usage errors or the version
	// subcommand. Closing twice is a no-op.
	defer func() {
		if err := components.Workspace.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
