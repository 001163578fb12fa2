package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kaan0029/jabref/cmd"
	"github.com/Kaan0029/jabref/cmd/check"
	"github.com/Kaan0029/jabref/internal/buildinfo"
	"github.com/Kaan0029/jabref/internal/errors"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildDate=..."
var (
	version   = "dev"
	buildDate = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.RootCommand(buildinfo.New(version, buildDate))
	err := rootCmd.ExecuteContext(ctx)

	if shutdownErr := cmd.Shutdown(); shutdownErr != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", shutdownErr)
	}

	switch {
	case err == nil:
		return cmd.ExitOK
	case errors.Is(err, check.ErrFindings):
		return cmd.ExitFindings
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cmd.ExitError
	}
}
