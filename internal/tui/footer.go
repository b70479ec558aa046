package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	footerSearchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	footerCountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	footerNoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	footerAlertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	footerEventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	footerDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	footerActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	footerIdleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
)

// RenderFooter builds the one-line status footer: search position or last
// event on the left, the session indicator on the right, padded to width.
func RenderFooter(width int, view StateView, search SearchState, followingLatest bool, now time.Time) string {
	var left, leftPlain string
	if search.Active() {
		label := fmt.Sprintf(" Search: %s ", search.Query)
		var count, countPlain string
		if len(search.Matches) == 0 {
			count = footerNoneStyle.Render("no matches")
			countPlain = "no matches"
		} else {
			countPlain = fmt.Sprintf("%d/%d", search.Current+1, len(search.Matches))
			count = footerCountStyle.Render(countPlain)
		}
		left = footerSearchStyle.Render(label) + count
		leftPlain = label + countPlain
	} else {
		if view.IterationAlert != nil && !followingLatest {
			alert := fmt.Sprintf(" ▶ New: iter %d ", *view.IterationAlert)
			left = footerAlertStyle.Render(alert) + footerEventStyle.Render("│ ")
			leftPlain = alert + "│ "
		} else {
			left = " "
			leftPlain = " "
		}
		event := view.LastEvent
		if event == "" {
			event = "—"
		}
		last := "Last: " + event
		left += footerEventStyle.Render(last)
		leftPlain += last
	}

	var right, rightPlain string
	switch {
	case view.Concluded():
		rightPlain = "■ done "
		right = footerDoneStyle.Render(rightPlain)
	case view.ActiveAt(now):
		rightPlain = "◉ active "
		right = footerActiveStyle.Render(rightPlain)
	default:
		rightPlain = "◯ idle "
		right = footerIdleStyle.Render(rightPlain)
	}

	pad := width - runewidth.StringWidth(leftPlain) - runewidth.StringWidth(rightPlain)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}
