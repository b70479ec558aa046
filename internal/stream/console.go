package stream

import (
	"fmt"
	"io"

	"github.com/avashton/termstream/internal/styled"
)

// ConsoleHandler writes plain human-readable lines immediately per event.
// In verbose mode it also shows tool results and the session summary.
// Errors go to both the primary writer and the diagnostic writer so they
// survive stdout redirection.
type ConsoleHandler struct {
	verbose bool
	stdout  io.Writer
	stderr  io.Writer
}

// NewConsoleHandler creates a console handler. stdout and stderr may be
// redirected for tests or alternative hosts; nil writers are discarded.
func NewConsoleHandler(verbose bool, stdout, stderr io.Writer) *ConsoleHandler {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &ConsoleHandler{verbose: verbose, stdout: stdout, stderr: stderr}
}

func (h *ConsoleHandler) OnText(content string) {
	fmt.Fprintf(h.stdout, "Agent: %s\n", content)
}

func (h *ConsoleHandler) OnToolCall(name, _ string, input map[string]any) {
	if summary, ok := ToolSummary(name, input); ok {
		fmt.Fprintf(h.stdout, "[Tool] %s: %s\n", name, summary)
		return
	}
	fmt.Fprintf(h.stdout, "[Tool] %s\n", name)
}

func (h *ConsoleHandler) OnToolResult(_ string, output string) {
	if h.verbose {
		fmt.Fprintf(h.stdout, "[Result] %s\n", styled.Truncate(output, styled.MaxResultPreview))
	}
}

func (h *ConsoleHandler) OnError(message string) {
	fmt.Fprintf(h.stdout, "[Error] %s\n", message)
	fmt.Fprintf(h.stderr, "[Error] %s\n", message)
}

func (h *ConsoleHandler) OnComplete(result SessionResult) {
	if h.verbose {
		fmt.Fprint(h.stdout, "\n--- Session Complete ---\n")
	}
	fmt.Fprintf(h.stdout, "%s\n", result.Summary())
}

// QuietHandler suppresses all streaming output, for CI and scripted runs
// where only the exit code matters.
type QuietHandler struct{}

func (QuietHandler) OnText(string)                        {}
func (QuietHandler) OnToolCall(string, string, map[string]any) {}
func (QuietHandler) OnToolResult(string, string)          {}
func (QuietHandler) OnError(string)                       {}
func (QuietHandler) OnComplete(SessionResult)             {}
