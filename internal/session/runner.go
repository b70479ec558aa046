package session

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/avashton/termstream/internal/logging"
	"github.com/avashton/termstream/internal/stream"
)

// Runner spawns the agent subprocess and pumps its output records into a
// stream handler until the stream ends or the context is cancelled.
type Runner struct {
	options Options
	logger  logging.Logger
}

// NewRunner validates options and builds a runner.
func NewRunner(options Options) (*Runner, error) {
	options.setDefaults()
	if err := options.validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Runner{options: options, logger: options.Logger}, nil
}

// Run executes one session, dispatching every record to handler. It returns
// once the stream is drained, the subprocess exits, or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, handler stream.Handler) error {
	ctx = logging.WithSessionID(ctx, fmt.Sprintf("%d", time.Now().UnixNano()))
	decoder := stream.NewDecoder(handler, r.logger)

	if len(r.options.Command) == 0 {
		r.logger.Info(ctx, "reading session records from input")
		return decoder.Decode(ctx, r.options.Input)
	}

	name := r.options.Command[0]
	args := append([]string(nil), r.options.Command[1:]...)
	if r.options.Prompt != "" {
		args = append(args, r.options.Prompt)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.options.Dir
	cmd.Env = append(os.Environ(), r.options.Env...)
	cmd.Stderr = r.options.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("session: stdout pipe: %w", err)
	}
	r.logger.Info(ctx, "starting agent", logging.Field("command", name))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("session: start %s: %w", name, err)
	}

	decodeErr := decoder.Decode(ctx, stdout)
	waitErr := cmd.Wait()

	if decodeErr != nil {
		r.logger.Error(ctx, "stream decode failed", decodeErr)
		return decodeErr
	}
	if waitErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.logger.Error(ctx, "agent exited with error", waitErr)
		return fmt.Errorf("session: %s: %w", name, waitErr)
	}
	r.logger.Info(ctx, "session finished")
	return nil
}
