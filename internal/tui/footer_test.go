package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFooterShowsSearchPosition(t *testing.T) {
	search := SearchState{Query: "error", Matches: []Match{{0, 0}, {2, 4}}, Current: 0}
	footer := RenderFooter(80, StateView{}, search, true, time.Now())

	require.Contains(t, footer, "Search: error")
	require.Contains(t, footer, "1/2")
}

func TestFooterShowsNoMatches(t *testing.T) {
	search := SearchState{Query: "absent"}
	footer := RenderFooter(80, StateView{}, search, true, time.Now())

	require.Contains(t, footer, "Search: absent")
	require.Contains(t, footer, "no matches")
}

func TestFooterIndicators(t *testing.T) {
	now := time.Now()

	done := RenderFooter(80, StateView{PendingTask: ""}, SearchState{}, true, now)
	require.Contains(t, done, "■ done")

	active := RenderFooter(80, StateView{PendingTask: "build", LastEventAt: now}, SearchState{}, true, now)
	require.Contains(t, active, "◉ active")

	idle := RenderFooter(80, StateView{PendingTask: "build", LastEventAt: now.Add(-time.Minute)}, SearchState{}, true, now)
	require.Contains(t, idle, "◯ idle")
}

func TestFooterLastEvent(t *testing.T) {
	footer := RenderFooter(80, StateView{PendingTask: "build", LastEvent: "tool:Read"}, SearchState{}, true, time.Now())
	require.Contains(t, footer, "Last: tool:Read")

	footer = RenderFooter(80, StateView{PendingTask: "build"}, SearchState{}, true, time.Now())
	require.Contains(t, footer, "Last: —")
}

func TestFooterAlertSuppressedWhileFollowing(t *testing.T) {
	n := 2
	view := StateView{PendingTask: "build", IterationAlert: &n}

	following := RenderFooter(80, view, SearchState{}, true, time.Now())
	require.NotContains(t, following, "▶ New")

	behind := RenderFooter(80, view, SearchState{}, false, time.Now())
	require.Contains(t, behind, "▶ New: iter 2")
}
