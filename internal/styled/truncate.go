package styled

// Default character budgets shared by the handlers.
const (
	// MaxLineWidth bounds the visible width of rendered content lines.
	MaxLineWidth = 200
	// MaxResultPreview bounds tool-result previews.
	MaxResultPreview = 200
	// MaxCommandPreview bounds shell-command previews in tool summaries.
	MaxCommandPreview = 60
)

// Truncate shortens s to at most max characters, appending "..." when it had
// to cut. The cut happens at a rune boundary so multi-byte characters are
// never split. Counting is by rune, not byte.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// TruncateLine bounds a line to max visible characters while preserving span
// boundaries and styles. Spans are consumed in order: a span fully within
// budget is kept verbatim; the span that overflows is cut at a rune boundary,
// gets "..." appended (keeping its style), and ends the line; once the budget
// is spent, remaining spans are dropped.
func TruncateLine(line Line, max int) Line {
	if line.Len() <= max {
		return line
	}
	remaining := max
	spans := make([]Span, 0, len(line.Spans))
	for _, sp := range line.Spans {
		if remaining == 0 {
			break
		}
		runes := []rune(sp.Text)
		if len(runes) <= remaining {
			remaining -= len(runes)
			spans = append(spans, sp)
			continue
		}
		spans = append(spans, Span{Text: string(runes[:remaining]) + "...", Style: sp.Style})
		break
	}
	return Line{Spans: spans}
}

// TruncateLines applies TruncateLine to every line.
func TruncateLines(lines []Line, max int) []Line {
	for i, l := range lines {
		lines[i] = TruncateLine(l, max)
	}
	return lines
}
