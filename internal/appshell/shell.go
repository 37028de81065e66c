// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main wires a Run-style entry point to the process: a signal-aware context,
// the real std streams, and the exit code. An interrupt maps to 130 unless
// the run already failed with something more specific.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
