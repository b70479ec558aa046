package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avashton/termstream/internal/styled"
)

func numberedLines(n int) []styled.Line {
	lines := make([]styled.Line, n)
	for i := range lines {
		lines[i] = styled.PlainLine(fmt.Sprintf("line %d", i))
	}
	return lines
}

func texts(lines []styled.Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text()
	}
	return out
}

func TestBufferAppendPreservesOrder(t *testing.T) {
	b := NewIterationBuffer(1)
	b.AppendLine(styled.PlainLine("first"))
	b.AppendLine(styled.PlainLine("second"))

	require.Equal(t, []string{"first", "second"}, texts(b.Lines()))
}

func TestBufferVisibleLinesWindow(t *testing.T) {
	b := NewIterationBuffer(1)
	b.SetLines(numberedLines(10), 3)

	require.Equal(t, []string{"line 0", "line 1", "line 2"}, texts(b.VisibleLines(3)))

	b.ScrollDown(4, 3)
	require.Equal(t, []string{"line 4", "line 5", "line 6"}, texts(b.VisibleLines(3)))
}

func TestBufferVisibleLinesShorterThanViewport(t *testing.T) {
	b := NewIterationBuffer(1)
	b.SetLines(numberedLines(2), 5)

	require.Equal(t, []string{"line 0", "line 1"}, texts(b.VisibleLines(5)))
	require.Zero(t, b.ScrollOffset())
}

func TestBufferScrollClamping(t *testing.T) {
	b := NewIterationBuffer(1)
	b.SetLines(numberedLines(10), 4)

	b.ScrollDown(100, 4)
	require.Equal(t, 6, b.ScrollOffset())
	require.True(t, b.AtBottom(4))

	b.ScrollUp(100)
	require.Zero(t, b.ScrollOffset())
}

func TestBufferScrollBottom(t *testing.T) {
	b := NewIterationBuffer(1)
	b.SetLines(numberedLines(10), 4)

	b.ScrollBottom(4)
	require.Equal(t, []string{"line 6", "line 7", "line 8", "line 9"}, texts(b.VisibleLines(4)))
}

func TestBufferOffsetReclampedOnShrink(t *testing.T) {
	b := NewIterationBuffer(1)
	b.SetLines(numberedLines(10), 4)
	b.ScrollBottom(4)

	// Content replaced by something shorter; the window must stay in range.
	b.SetLines(numberedLines(3), 4)
	require.Zero(t, b.ScrollOffset())
	require.Equal(t, []string{"line 0", "line 1", "line 2"}, texts(b.VisibleLines(4)))
}

func TestBufferScrollToCenters(t *testing.T) {
	b := NewIterationBuffer(1)
	b.SetLines(numberedLines(20), 5)

	b.ScrollTo(10, 5)
	require.Equal(t, 8, b.ScrollOffset())

	b.ScrollTo(0, 5)
	require.Zero(t, b.ScrollOffset())

	b.ScrollTo(19, 5)
	require.Equal(t, 15, b.ScrollOffset())
}

func TestBufferEmpty(t *testing.T) {
	b := NewIterationBuffer(1)
	require.Empty(t, b.VisibleLines(5))
	require.Zero(t, b.ScrollOffset())
	b.ScrollBottom(5)
	require.Zero(t, b.ScrollOffset())
}
