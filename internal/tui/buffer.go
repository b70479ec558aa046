package tui

import "github.com/avashton/termstream/internal/styled"

// IterationBuffer is the append-only line store backing one agent iteration,
// plus the scroll window over it. The scroll offset always satisfies
// 0 <= offset <= max(0, len-height); every mutation and viewport change
// re-clamps so a shrinking viewport or replaced content can never leave the
// window past the end.
type IterationBuffer struct {
	Iteration int

	lines  []styled.Line
	offset int
}

// NewIterationBuffer creates an empty buffer for the given iteration number.
func NewIterationBuffer(iteration int) *IterationBuffer {
	return &IterationBuffer{Iteration: iteration}
}

// AppendLine adds one line at the end.
func (b *IterationBuffer) AppendLine(line styled.Line) {
	b.lines = append(b.lines, line)
}

// SetLines replaces the whole content, keeping the scroll offset clamped to
// the new length.
func (b *IterationBuffer) SetLines(lines []styled.Line, height int) {
	b.lines = lines
	b.clamp(height)
}

// Len returns the number of buffered lines.
func (b *IterationBuffer) Len() int { return len(b.lines) }

// Lines returns the full buffered sequence.
func (b *IterationBuffer) Lines() []styled.Line { return b.lines }

// ScrollOffset returns the index of the first visible line.
func (b *IterationBuffer) ScrollOffset() int { return b.offset }

// VisibleLines returns the window of at most height lines starting at the
// scroll offset. The result aliases the buffer; callers must not mutate it.
func (b *IterationBuffer) VisibleLines(height int) []styled.Line {
	if height <= 0 || len(b.lines) == 0 {
		return nil
	}
	start := b.offset
	if start > len(b.lines) {
		start = len(b.lines)
	}
	end := start + height
	if end > len(b.lines) {
		end = len(b.lines)
	}
	return b.lines[start:end]
}

// ScrollBottom moves the window so the last line is visible.
func (b *IterationBuffer) ScrollBottom(height int) {
	b.offset = b.maxOffset(height)
}

// ScrollTop moves the window to the first line.
func (b *IterationBuffer) ScrollTop() { b.offset = 0 }

// ScrollUp moves the window up by n lines, stopping at the top.
func (b *IterationBuffer) ScrollUp(n int) {
	b.offset -= n
	if b.offset < 0 {
		b.offset = 0
	}
}

// ScrollDown moves the window down by n lines, stopping at the bottom.
func (b *IterationBuffer) ScrollDown(n, height int) {
	b.offset += n
	b.clamp(height)
}

// ScrollTo centers the window on the given line as far as the clamp allows.
func (b *IterationBuffer) ScrollTo(line, height int) {
	b.offset = line - height/2
	if b.offset < 0 {
		b.offset = 0
	}
	b.clamp(height)
}

// AtBottom reports whether the last line is inside the window.
func (b *IterationBuffer) AtBottom(height int) bool {
	return b.offset >= b.maxOffset(height)
}

func (b *IterationBuffer) clamp(height int) {
	if max := b.maxOffset(height); b.offset > max {
		b.offset = max
	}
	if b.offset < 0 {
		b.offset = 0
	}
}

func (b *IterationBuffer) maxOffset(height int) int {
	if height <= 0 {
		return 0
	}
	max := len(b.lines) - height
	if max < 0 {
		return 0
	}
	return max
}
