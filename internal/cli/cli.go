// Package cli wires flags and environment into a session run with the
// selected render mode.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/avashton/termstream/internal/logging"
	"github.com/avashton/termstream/internal/session"
	"github.com/avashton/termstream/internal/stream"
	"github.com/avashton/termstream/internal/tui"
)

// Run executes termstream with the provided CLI arguments. It returns a
// POSIX-style exit code indicating whether execution succeeded.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine, but other errors should be surfaced to help with debugging.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(stderr, "failed to load .env: %v\n", err)
			return 1
		}
	}

	defaultMode := os.Getenv("TERMSTREAM_MODE")
	if defaultMode == "" {
		defaultMode = "pretty"
	}

	flagSet := flag.NewFlagSet("termstream", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	mode := flagSet.String("mode", defaultMode, "render mode: plain, pretty, quiet or tui")
	verbose := flagSet.Bool("verbose", false, "include tool results in the output")
	prompt := flagSet.String("prompt", "", "prompt appended to the agent command")
	input := flagSet.String("input", "", "read session records from this file instead of spawning an agent (\"-\" for stdin)")
	logLevel := flagSet.String("log-level", "", "write structured logs to stderr at this level (debug, info, warn, error)")

	if err := flagSet.Parse(args); err != nil {
		return 2
	}

	var logger logging.Logger = &logging.NoOpLogger{}
	if lvl := strings.TrimSpace(*logLevel); lvl != "" {
		logger = logging.NewStdLogger(logging.Level(strings.ToUpper(lvl)), stderr)
	}

	options := session.Options{
		Command: flagSet.Args(),
		Prompt:  *prompt,
		Stderr:  stderr,
		Logger:  logger,
	}
	switch *input {
	case "":
	case "-":
		options.Command = nil
		options.Input = os.Stdin
	default:
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintf(stderr, "failed to open input: %v\n", err)
			return 1
		}
		defer f.Close()
		options.Command = nil
		options.Input = f
	}

	runner, err := session.NewRunner(options)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	switch *mode {
	case "plain":
		return runToCompletion(ctx, runner, stream.NewConsoleHandler(*verbose, stdout, stderr), stderr)
	case "pretty":
		return runToCompletion(ctx, runner, stream.NewPrettyHandler(*verbose, stdout), stderr)
	case "quiet":
		return runToCompletion(ctx, runner, stream.QuietHandler{}, stderr)
	case "tui":
		return runDashboard(ctx, runner, *verbose, *prompt, stderr)
	default:
		fmt.Fprintf(stderr, "unknown mode %q\n", *mode)
		return 2
	}
}

func runToCompletion(ctx context.Context, runner *session.Runner, handler stream.Handler, stderr io.Writer) int {
	if err := runner.Run(ctx, handler); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// runDashboard runs the session in the background while the dashboard owns
// the terminal. Quitting the dashboard cancels the session.
func runDashboard(ctx context.Context, runner *session.Runner, verbose bool, prompt string, stderr io.Writer) int {
	task := strings.TrimSpace(prompt)
	if task == "" {
		task = "session"
	}

	shared := tui.NewSharedLines()
	state := tui.NewState(task)
	handler := stream.NewTUIHandler(verbose, shared, state)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(runCtx, handler) }()

	code := tui.Run(runCtx, shared, state, cancel)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, err)
		if code == 0 {
			code = 1
		}
	}
	return code
}
