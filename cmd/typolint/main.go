// Package main provides the typolint command-line tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/typolint/typolint/internal/cli"
	"github.com/typolint/typolint/internal/cli/commands"
)

// Exit codes. Scripts depend on these staying stable.
const (
	exitOK         = 0
	exitViolations = 1
	exitUsage      = 2
	exitNotPruned  = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx)
	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, commands.ErrViolationsFound):
		os.Exit(exitViolations)
	case errors.Is(err, commands.ErrNotPruned):
		os.Exit(exitNotPruned)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
}
