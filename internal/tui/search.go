package tui

import (
	"unicode"

	"github.com/avashton/termstream/internal/styled"
)

// highlightStyle is applied to matched spans when compositing search results.
var highlightStyle = styled.Style{
	Foreground: styled.ColorBlack,
	Background: styled.ColorYellow,
	Reverse:    true,
}

// Match locates one search hit: the line index in the buffer and the rune
// column where the match starts.
type Match struct {
	Line   int
	Column int
}

// SearchState tracks the committed query, its matches in document order, and
// the cursor over them.
type SearchState struct {
	Query   string
	Matches []Match
	Current int
}

// Active reports whether a query is committed.
func (s *SearchState) Active() bool { return s.Query != "" }

// Clear drops the query and all matches.
func (s *SearchState) Clear() {
	s.Query = ""
	s.Matches = nil
	s.Current = 0
}

// Set commits a query and recomputes matches over the given lines.
func (s *SearchState) Set(query string, lines []styled.Line) {
	s.Query = query
	s.Current = 0
	s.Matches = FindMatches(lines, query)
}

// Refresh recomputes matches after the underlying lines changed, keeping the
// cursor in range.
func (s *SearchState) Refresh(lines []styled.Line) {
	if !s.Active() {
		return
	}
	s.Matches = FindMatches(lines, s.Query)
	if s.Current >= len(s.Matches) {
		s.Current = 0
	}
}

// Next advances the cursor to the following match, wrapping around.
func (s *SearchState) Next() {
	if len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current + 1) % len(s.Matches)
}

// Prev moves the cursor to the preceding match, wrapping around.
func (s *SearchState) Prev() {
	if len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
}

// CurrentMatch returns the match under the cursor.
func (s *SearchState) CurrentMatch() (Match, bool) {
	if len(s.Matches) == 0 {
		return Match{}, false
	}
	return s.Matches[s.Current], true
}

// FindMatches scans every line's plain text for case-insensitive,
// non-overlapping occurrences of query, in document order.
func FindMatches(lines []styled.Line, query string) []Match {
	q := lowerRunes(query)
	if len(q) == 0 {
		return nil
	}
	var matches []Match
	for i, line := range lines {
		text := lowerRunes(line.Text())
		for col := 0; col+len(q) <= len(text); {
			if runesHavePrefix(text[col:], q) {
				matches = append(matches, Match{Line: i, Column: col})
				col += len(q)
			} else {
				col++
			}
		}
	}
	return matches
}

// HighlightLine rebuilds a line with every case-insensitive occurrence of
// query rendered in the highlight style. Spans are split at match
// boundaries; text outside matches keeps its original style, and a line with
// no matches passes through with its spans unchanged.
func HighlightLine(line styled.Line, query string) styled.Line {
	q := lowerRunes(query)
	if len(q) == 0 {
		return line
	}
	var out []styled.Span
	for _, span := range line.Spans {
		runes := []rune(span.Text)
		lower := lowerRunes(span.Text)
		pos := 0
		for pos < len(runes) {
			idx := runesIndex(lower[pos:], q)
			if idx < 0 {
				out = append(out, styled.Span{Text: string(runes[pos:]), Style: span.Style})
				break
			}
			start := pos + idx
			if start > pos {
				out = append(out, styled.Span{Text: string(runes[pos:start]), Style: span.Style})
			}
			out = append(out, styled.Span{Text: string(runes[start : start+len(q)]), Style: highlightStyle})
			pos = start + len(q)
		}
	}
	return styled.NewLine(out...)
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func runesHavePrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func runesIndex(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if runesHavePrefix(s[i:], sub) {
			return i
		}
	}
	return -1
}
