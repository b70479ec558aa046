package styled

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateShortStringsUnchanged(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "", Truncate("", 5))
	require.Equal(t, "exact", Truncate("exact", 5))
}

func TestTruncateLongStrings(t *testing.T) {
	require.Equal(t, "this is a ...", Truncate("this is a long string", 10))
	require.Equal(t, "abc...", Truncate("abcdef", 3))
}

func TestTruncateUTF8Boundaries(t *testing.T) {
	// Arrows are 3 bytes each in UTF-8; cuts must land on rune boundaries.
	require.Equal(t, "→→→→→...", Truncate("→→→→→→→→→→", 5))
	require.Equal(t, "a→b→c...", Truncate("a→b→c→d→e", 5))
	// Emoji are 4 bytes each.
	require.Equal(t, "🎉🎊🎁...", Truncate("🎉🎊🎁🎈🎄", 3))
	require.Equal(t, "hi 🦀...", Truncate("hi 🦀 there", 4))
}

func TestTruncateZeroBudget(t *testing.T) {
	require.Equal(t, "...", Truncate("hello", 0))
}

func TestTruncateIdempotent(t *testing.T) {
	inputs := []string{"", "short", "this is a much longer sentence for budgets", "→→→→→→→→→→", "🎉🎊🎁🎈🎄"}
	for _, s := range inputs {
		for _, n := range []int{0, 1, 3, 5, 20, 200} {
			once := Truncate(s, n)
			require.Equal(t, once, Truncate(once, n), "s=%q n=%d", s, n)
			require.LessOrEqual(t, len([]rune(once)), n+3)
			if len([]rune(s)) <= n {
				require.Equal(t, s, once)
			}
		}
	}
}

func TestTruncateLinePreservesSpanBoundaries(t *testing.T) {
	bold := Style{Bold: true}
	red := Style{Foreground: ColorRed}
	line := NewLine(
		Span{Text: "aaaa", Style: bold},
		Span{Text: "bbbb", Style: red},
		Span{Text: "cccc"},
	)

	got := TruncateLine(line, 6)
	require.Len(t, got.Spans, 2)
	require.Equal(t, Span{Text: "aaaa", Style: bold}, got.Spans[0])
	require.Equal(t, Span{Text: "bb...", Style: red}, got.Spans[1])
}

func TestTruncateLineDropsSpansPastBudget(t *testing.T) {
	line := NewLine(
		Span{Text: "1234"},
		Span{Text: "5678", Style: Style{Italic: true}},
	)

	// Budget exactly consumed by the first span: following spans vanish.
	got := TruncateLine(line, 4)
	require.Len(t, got.Spans, 1)
	require.Equal(t, "1234", got.Text())
}

func TestTruncateLineWithinBudgetUntouched(t *testing.T) {
	line := NewLine(Span{Text: "hello", Style: Style{Bold: true}})
	require.Equal(t, line, TruncateLine(line, 10))
	require.Equal(t, line, TruncateLine(line, 5))
}
