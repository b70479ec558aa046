// Package styled provides the styled-text model used by every render mode:
// spans of text carrying a display style, grouped into lines that map 1:1 to
// terminal rows. It also owns the content classifier that turns raw streamed
// text (ANSI-escaped or markdown) into styled lines.
package styled

import "strings"

// Color is a terminal color in the form lipgloss accepts: an ANSI index
// ("0".."255") or a hex value ("#RRGGBB"). The zero value means "default".
type Color string

const (
	ColorBlack   Color = "0"
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorYellow  Color = "3"
	ColorBlue    Color = "4"
	ColorMagenta Color = "5"
	ColorCyan    Color = "6"
	ColorWhite   Color = "7"
	// Bright variants occupy the 8-15 range of the ANSI palette.
	ColorDarkGray      Color = "8"
	ColorBrightRed     Color = "9"
	ColorBrightGreen   Color = "10"
	ColorBrightYellow  Color = "11"
	ColorBrightBlue    Color = "12"
	ColorBrightMagenta Color = "13"
	ColorBrightCyan    Color = "14"
	ColorBrightWhite   Color = "15"
)

// Style is the display attribute set for one span. It is a plain value type
// so tests and the search compositor can compare and copy it freely.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Italic     bool
	Underline  bool
	Dim        bool
	Reverse    bool
}

// IsZero reports whether the style carries no attributes at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Span is a run of text rendered with a single style. The content never
// contains a line break; breaks are boundaries between Lines.
type Span struct {
	Text  string
	Style Style
}

// Line is one visual terminal row: an ordered sequence of spans.
type Line struct {
	Spans []Span
}

// NewLine builds a line from the given spans, dropping empty ones.
func NewLine(spans ...Span) Line {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text != "" {
			out = append(out, sp)
		}
	}
	return Line{Spans: out}
}

// PlainLine wraps unstyled text in a single-span line.
func PlainLine(text string) Line {
	if text == "" {
		return Line{}
	}
	return Line{Spans: []Span{{Text: text}}}
}

// Text returns the concatenated plain content of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, sp := range l.Spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Len returns the character (rune) count of the line's plain content.
func (l Line) Len() int {
	n := 0
	for _, sp := range l.Spans {
		n += len([]rune(sp.Text))
	}
	return n
}

// Clone returns a deep copy; callers may mutate the result freely.
func (l Line) Clone() Line {
	spans := make([]Span, len(l.Spans))
	copy(spans, l.Spans)
	return Line{Spans: spans}
}

// CloneLines deep-copies a line slice, used when handing a snapshot across
// the producer/consumer boundary.
func CloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
