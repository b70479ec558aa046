package styled

import (
	"errors"
	"fmt"
	"strings"
)

// csiIntroducer is the two-character control sequence introducer (ESC '[')
// that precedes terminal color and formatting codes.
const csiIntroducer = "\x1b["

// ContainsANSI reports whether text carries embedded terminal escape-style
// formatting. Detection is exact: true iff the CSI introducer appears.
func ContainsANSI(text string) bool {
	return strings.Contains(text, csiIntroducer)
}

// ParseANSI converts text containing ANSI escape sequences into styled lines.
// SGR (Select Graphic Rendition) sequences update the running style; all
// other CSI and escape sequences are consumed and ignored. Newlines end the
// current line. The running style carries across lines, matching how
// terminals render multi-line colored output.
func ParseANSI(text string) ([]Line, error) {
	var (
		lines   []Line
		spans   []Span
		current Style
		buf     strings.Builder
	)

	flushSpan := func() {
		if buf.Len() > 0 {
			spans = append(spans, Span{Text: buf.String(), Style: current})
			buf.Reset()
		}
	}
	flushLine := func() {
		flushSpan()
		lines = append(lines, Line{Spans: spans})
		spans = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\x1b':
			if i+1 < len(runes) && runes[i+1] == '[' {
				end, params, err := scanCSI(runes, i+2)
				if err != nil {
					return nil, err
				}
				// Only SGR ('m') sequences affect styling.
				if runes[end] == 'm' {
					flushSpan()
					current = applySGR(current, params)
				}
				i = end
				continue
			}
			// Bare ESC followed by a single-character sequence (e.g. ESC c);
			// skip the escape and let the next rune pass through the loop.
		case r == '\n':
			flushLine()
		case r == '\r':
			// Carriage returns carry no content in line-oriented output.
		default:
			buf.WriteRune(r)
		}
	}
	// Trailing content without a final newline still forms a line.
	if buf.Len() > 0 || len(spans) > 0 {
		flushLine()
	}
	return lines, nil
}

// scanCSI scans a CSI parameter body starting at start (just past "ESC[") and
// returns the index of the final byte plus the parsed numeric parameters.
func scanCSI(runes []rune, start int) (end int, params []int, err error) {
	value := 0
	hasValue := false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r >= '0' && r <= '9':
			value = value*10 + int(r-'0')
			hasValue = true
		case r == ';' || r == ':':
			params = append(params, value)
			value = 0
			hasValue = false
		case r >= 0x40 && r <= 0x7e:
			if hasValue || len(params) > 0 {
				params = append(params, value)
			}
			return i, params, nil
		default:
			// Private-mode markers ('?', '>', '<', '=') and intermediates are
			// tolerated; they never appear in SGR sequences we act on.
		}
	}
	return 0, nil, errors.New("unterminated control sequence")
}

// applySGR folds one SGR parameter list into the running style.
func applySGR(s Style, params []int) Style {
	if len(params) == 0 {
		return Style{} // ESC[m is shorthand for reset
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s = Style{}
		case p == 1:
			s.Bold = true
		case p == 2:
			s.Dim = true
		case p == 3:
			s.Italic = true
		case p == 4:
			s.Underline = true
		case p == 7:
			s.Reverse = true
		case p == 22:
			s.Bold, s.Dim = false, false
		case p == 23:
			s.Italic = false
		case p == 24:
			s.Underline = false
		case p == 27:
			s.Reverse = false
		case p >= 30 && p <= 37:
			s.Foreground = Color(fmt.Sprintf("%d", p-30))
		case p == 38:
			var c Color
			c, i = extendedColor(params, i)
			if c != "" {
				s.Foreground = c
			}
		case p == 39:
			s.Foreground = ""
		case p >= 40 && p <= 47:
			s.Background = Color(fmt.Sprintf("%d", p-40))
		case p == 48:
			var c Color
			c, i = extendedColor(params, i)
			if c != "" {
				s.Background = c
			}
		case p == 49:
			s.Background = ""
		case p >= 90 && p <= 97:
			s.Foreground = Color(fmt.Sprintf("%d", p-90+8))
		case p >= 100 && p <= 107:
			s.Background = Color(fmt.Sprintf("%d", p-100+8))
		}
	}
	return s
}

// extendedColor decodes the 256-color (38;5;n) and truecolor (38;2;r;g;b)
// forms. It returns the color and the index of the last parameter consumed.
func extendedColor(params []int, i int) (Color, int) {
	if i+1 >= len(params) {
		return "", i
	}
	switch params[i+1] {
	case 5:
		if i+2 < len(params) {
			return Color(fmt.Sprintf("%d", params[i+2])), i + 2
		}
		return "", i + 1
	case 2:
		if i+4 < len(params) {
			return Color(fmt.Sprintf("#%02X%02X%02X", clampByte(params[i+2]), clampByte(params[i+3]), clampByte(params[i+4]))), i + 4
		}
		return "", len(params) - 1
	}
	return "", i + 1
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
