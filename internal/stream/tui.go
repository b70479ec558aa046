package stream

import (
	"fmt"
	"strings"

	"github.com/avashton/termstream/internal/styled"
	"github.com/avashton/termstream/internal/tui"
)

var (
	gearStyle       = styled.Style{Foreground: styled.ColorBlue}
	gearDetailStyle = styled.Style{Foreground: styled.ColorDarkGray}
	checkStyle      = styled.Style{Foreground: styled.ColorDarkGray}
	errStyle        = styled.Style{Foreground: styled.ColorRed}
	okStyle         = styled.Style{Foreground: styled.ColorGreen}
)

// TUIHandler feeds the interactive dashboard. Text deltas accumulate in a
// buffer that is re-classified as a whole on every delta, so markdown
// constructs that complete across deltas (a closing ``` fence, the second *
// of an emphasis) restyle correctly. Tool, error and summary lines are kept
// as a styled tail appended after the classified content, and the full
// sequence is republished atomically after every event.
type TUIHandler struct {
	verbose  bool
	maxWidth int
	textBuf  strings.Builder
	tail     []styled.Line
	shared   *tui.SharedLines
	state    *tui.State
}

// NewTUIHandler creates a handler publishing into the given shared store.
func NewTUIHandler(verbose bool, shared *tui.SharedLines, state *tui.State) *TUIHandler {
	return &TUIHandler{
		verbose:  verbose,
		maxWidth: styled.MaxLineWidth,
		shared:   shared,
		state:    state,
	}
}

// publish rebuilds the full line sequence and swaps it into the shared
// store.
func (h *TUIHandler) publish() {
	lines := styled.Render(h.textBuf.String(), h.maxWidth)
	lines = append(lines, styled.CloneLines(h.tail)...)
	h.shared.Replace(lines)
}

func (h *TUIHandler) appendTail(line styled.Line) {
	h.tail = append(h.tail, line)
}

func (h *TUIHandler) OnText(text string) {
	h.textBuf.WriteString(text)
	h.state.RecordEvent("text")
	h.publish()
}

func (h *TUIHandler) OnToolCall(name, id string, input map[string]any) {
	line := styled.NewLine(styled.Span{Text: fmt.Sprintf("⚙ [%s]", name), Style: gearStyle})
	if summary, ok := ToolSummary(name, input); ok {
		line.Spans = append(line.Spans, styled.Span{Text: " " + summary, Style: gearDetailStyle})
	}
	h.appendTail(line)
	h.state.RecordEvent("tool:" + name)
	h.publish()
}

func (h *TUIHandler) OnToolResult(id, output string) {
	h.state.RecordEvent("result")
	if !h.verbose {
		return
	}
	preview := styled.Truncate(output, styled.MaxResultPreview)
	h.appendTail(styled.NewLine(styled.Span{Text: " ✓ " + preview, Style: checkStyle}))
	h.publish()
}

func (h *TUIHandler) OnError(message string) {
	h.appendTail(styled.Line{})
	h.appendTail(styled.NewLine(styled.Span{Text: "✗ Error: " + message, Style: errStyle}))
	h.state.RecordEvent("error")
	h.publish()
}

func (h *TUIHandler) OnComplete(result SessionResult) {
	style := okStyle
	if result.IsError {
		style = errStyle
	}
	h.appendTail(styled.Line{})
	h.appendTail(styled.NewLine(styled.Span{Text: result.Summary(), Style: style}))
	h.state.RecordEvent("complete")
	h.state.Conclude()
	h.publish()
}
