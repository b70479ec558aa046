// Package stream turns agent session events into rendered terminal output.
// A Handler is the capability every presentation mode implements; the
// Decoder feeds one by parsing the agent subprocess's JSON event stream.
package stream

import "fmt"

// SessionResult is the terminal payload of a session, emitted exactly once.
type SessionResult struct {
	DurationMS   uint64  `json:"duration_ms"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	NumTurns     uint32  `json:"num_turns"`
	IsError      bool    `json:"is_error"`
}

// Summary formats the completion line shown by every visible mode.
func (r SessionResult) Summary() string {
	return fmt.Sprintf("Duration: %dms | Cost: $%.4f | Turns: %d", r.DurationMS, r.TotalCostUSD, r.NumTurns)
}

// Handler consumes streaming session events. Implementations never block and
// never fail: malformed input degrades to simpler rendering instead of
// surfacing an error to the caller.
//
// Events arrive in emission order and are handled one at a time; OnComplete
// is the last call for a session.
type Handler interface {
	// OnText accumulates or immediately renders newly streamed text.
	OnText(content string)
	// OnToolCall announces a tool invocation. input is the decoded JSON
	// input tree; only string leaves named in the summary table are read.
	OnToolCall(name, id string, input map[string]any)
	// OnToolResult reports a tool's output. Visibility is verbose-gated.
	OnToolResult(id, output string)
	// OnError reports a failure; always visible regardless of verbosity.
	OnError(message string)
	// OnComplete finalizes the session: buffered text is flushed first, then
	// a summary line colored by result.IsError.
	OnComplete(result SessionResult)
}
