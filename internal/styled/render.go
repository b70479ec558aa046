package styled

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render classifies and renders one accumulated text buffer into styled
// lines, bounded per line to maxWidth characters.
//
// Classification: text containing the ANSI control-sequence introducer is
// parsed as escape-style formatting; if that parse fails the whole buffer
// degrades to a single plain line. Text without escape sequences is parsed as
// markdown. Callers pass the complete accumulated buffer each time — partial
// markup cannot be parsed incrementally, so streaming correctness comes from
// re-parsing from scratch.
func Render(text string, maxWidth int) []Line {
	if text == "" {
		return nil
	}
	var lines []Line
	if ContainsANSI(text) {
		parsed, err := ParseANSI(text)
		if err != nil {
			// Degrade to plain text rather than surfacing a parse failure.
			lines = []Line{PlainLine(text)}
		} else {
			lines = parsed
		}
	} else {
		lines = ParseMarkdown(text)
	}
	if maxWidth > 0 {
		lines = TruncateLines(lines, maxWidth)
	}
	return lines
}

// Paint converts a styled line to a terminal string using lipgloss. Spans
// with a zero style are emitted verbatim.
func Paint(line Line) string {
	var b strings.Builder
	for _, sp := range line.Spans {
		if sp.Style.IsZero() {
			b.WriteString(sp.Text)
			continue
		}
		b.WriteString(lipStyle(sp.Style).Render(sp.Text))
	}
	return b.String()
}

// PaintAll paints lines joined by newlines.
func PaintAll(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = Paint(l)
	}
	return strings.Join(parts, "\n")
}

func lipStyle(s Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Foreground != "" {
		st = st.Foreground(lipgloss.Color(string(s.Foreground)))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(string(s.Background)))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Dim {
		st = st.Faint(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}
