// Package session runs the agent subprocess and feeds its JSON-lines output
// through the stream decoder.
package session

import (
	"errors"
	"io"
	"os"

	"github.com/avashton/termstream/internal/logging"
)

// Options configures a session run. Readers and writers can be swapped
// during tests.
type Options struct {
	// Command is the agent executable to spawn, plus its arguments. When
	// empty, the session reads records from Input instead of spawning
	// anything.
	Command []string
	// Prompt is appended to Command as the final argument when non-empty.
	Prompt string
	// Dir is the working directory for the subprocess.
	Dir string
	// Env is appended to the inherited environment.
	Env []string

	// Input supplies the record stream directly when no Command is given.
	Input io.Reader
	// Stderr receives the subprocess's stderr. Defaults to os.Stderr.
	Stderr io.Writer

	Logger logging.Logger
}

// setDefaults applies defaults for unset knobs.
func (o *Options) setDefaults() {
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = &logging.NoOpLogger{}
	}
}

// validate performs lightweight validation of user supplied options.
func (o *Options) validate() error {
	if len(o.Command) == 0 && o.Input == nil {
		return errors.New("either Command or Input must be set")
	}
	if len(o.Command) > 0 && o.Command[0] == "" {
		return errors.New("Command executable must not be empty")
	}
	return nil
}
