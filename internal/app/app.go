// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"wormod-core/pipeline"
	"wormod/internal/cli"
	"wormod/internal/lineio"
	"wormod/internal/memcheck"
	"wormod/internal/version"
)

// Exit codes. Flag and spec problems are construction-time failures (2);
// anything that breaks once I/O has started is 1.
const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

// RunContext parses argv, builds the pipeline, loads the wordlist, applies
// the pipeline, and writes the result. All validation happens before any
// I/O; apply itself cannot fail.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("wormod")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		cli.Usage(stdout)
		return exitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.Usage(stdout)
			return exitOK
		}
		fmt.Fprintf(stderr, "wormod: %v\n", err)
		cli.Usage(stderr)
		return exitUsage
	}
	if opts.Version {
		fmt.Fprintf(stdout, "wormod version %s\n", version.Version)
		return exitOK
	}

	log := newLogger(stderr, opts)

	pipe, err := pipeline.Build(opts.Specs)
	if err != nil {
		fmt.Fprintf(stderr, "wormod: %v\n", err)
		return exitUsage
	}
	log.Debug().Strs("ops", opts.Specs).Msg("pipeline built")

	size, err := lineio.CheckInput(opts.Input, opts.NoFollowSymlinks)
	if err != nil {
		log.Error().Msg(err.Error())
		return exitIO
	}
	if err := lineio.CheckOutput(opts.Output, opts.Input, opts.NoFollowSymlinks); err != nil {
		log.Error().Msg(err.Error())
		return exitIO
	}
	if err := memcheck.Guard(size); err != nil {
		log.Error().Msg(err.Error())
		return exitIO
	}

	start := time.Now()
	words, err := lineio.ReadAll(opts.Input, os.Stdin)
	if err != nil {
		log.Error().Msg(err.Error())
		return exitIO
	}
	in := len(words)
	log.Debug().Int("words", in).Dur("elapsed", time.Since(start)).Msg("input loaded")

	if ctx.Err() != nil {
		log.Error().Msg("interrupted")
		return 130
	}

	out := pipeline.Apply(pipe, words)
	log.Info().Int("in", in).Int("out", len(out)).Strs("ops", opts.Specs).Msg("pipeline applied")

	if err := lineio.WriteAll(opts.Output, stdout, opts.AppendOutput, out); err != nil {
		if lineio.IsBrokenPipe(err) {
			return exitOK
		}
		log.Error().Msg(err.Error())
		return exitIO
	}
	return exitOK
}

// Run is the context-free entry point used by tests.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// newLogger builds a console logger on stderr. Normal runs stay silent
// (warn level); --verbose opens debug, --quiet keeps errors only.
func newLogger(stderr io.Writer, opts cli.Options) zerolog.Logger {
	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	if opts.Quiet {
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).With().Timestamp().Logger()
}
