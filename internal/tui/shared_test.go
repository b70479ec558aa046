package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avashton/termstream/internal/styled"
)

func TestSharedLinesReplaceAndSnapshot(t *testing.T) {
	s := NewSharedLines()
	require.Empty(t, s.Snapshot())

	s.Replace(numberedLines(3))
	require.Equal(t, 3, s.Len())
	require.Equal(t, []string{"line 0", "line 1", "line 2"}, texts(s.Snapshot()))
}

func TestSharedLinesSnapshotIsDeepCopy(t *testing.T) {
	s := NewSharedLines()
	s.Replace([]styled.Line{styled.PlainLine("original")})

	snap := s.Snapshot()
	snap[0].Spans[0].Text = "mutated"

	require.Equal(t, "original", s.Snapshot()[0].Text())
}

func TestSharedLinesConcurrentAccess(t *testing.T) {
	s := NewSharedLines()
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Replace(numberedLines(i % 10))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			for _, line := range s.Snapshot() {
				_ = line.Text()
			}
		}
	}()
	wg.Wait()
}
