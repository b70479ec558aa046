package stream

import (
	"fmt"
	"io"
	"strings"

	glam "github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/avashton/termstream/internal/styled"
)

var (
	toolNameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	toolDetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// PrettyHandler renders streamed text as markdown with colors. Text is
// buffered and rendered only at flush points (tool calls, errors,
// completion) because partial markdown renders poorly mid-stream.
type PrettyHandler struct {
	out     io.Writer
	verbose bool
	buf     strings.Builder
	glam    *glam.TermRenderer
}

// NewPrettyHandler creates a styled console handler writing to out.
func NewPrettyHandler(verbose bool, out io.Writer) *PrettyHandler {
	if out == nil {
		out = io.Discard
	}
	h := &PrettyHandler{out: out, verbose: verbose}
	// Fixed style to avoid OSC terminal queries; rendering falls back to the
	// raw buffer when the renderer is unavailable.
	if r, err := glam.NewTermRenderer(glam.WithStylePath("dark"), glam.WithWordWrap(100)); err == nil {
		h.glam = r
	}
	return h
}

// flushText renders and writes any buffered markdown.
func (h *PrettyHandler) flushText() {
	if h.buf.Len() == 0 {
		return
	}
	raw := h.buf.String()
	h.buf.Reset()
	if h.glam != nil {
		if rendered, err := h.glam.Render(raw); err == nil {
			fmt.Fprint(h.out, rendered)
			return
		}
	}
	fmt.Fprint(h.out, raw)
}

func (h *PrettyHandler) OnText(content string) {
	h.buf.WriteString(content)
}

func (h *PrettyHandler) OnToolCall(name, _ string, input map[string]any) {
	h.flushText()
	line := toolNameStyle.Render(fmt.Sprintf("⚙ [%s]", name))
	if summary, ok := ToolSummary(name, input); ok {
		line += toolDetailStyle.Render(" " + summary)
	}
	fmt.Fprintln(h.out, line)
}

func (h *PrettyHandler) OnToolResult(_ string, output string) {
	if !h.verbose {
		return
	}
	fmt.Fprintln(h.out, toolDetailStyle.Render(" ✓ "+styled.Truncate(output, styled.MaxResultPreview)))
}

func (h *PrettyHandler) OnError(message string) {
	h.flushText()
	fmt.Fprintln(h.out, "\n"+errorStyle.Render("✗ Error: "+message))
}

func (h *PrettyHandler) OnComplete(result SessionResult) {
	h.flushText()
	style := successStyle
	if result.IsError {
		style = errorStyle
	}
	fmt.Fprintln(h.out, "\n"+style.Render(result.Summary()))
}
