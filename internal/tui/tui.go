package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/avashton/termstream/internal/styled"
)

// pollInterval is how often the dashboard pulls a fresh snapshot from the
// shared line store.
const pollInterval = 250 * time.Millisecond

type pollMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type model struct {
	shared *SharedLines
	state  *State
	cancel context.CancelFunc

	buf    *IterationBuffer
	search SearchState

	// UI
	spin      spinner.Model
	input     textinput.Model
	searching bool
	following bool
	width     int
	height    int
	ready     bool
}

func newModel(shared *SharedLines, state *State, cancel context.CancelFunc) *model {
	in := textinput.New()
	in.Prompt = "/"
	in.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	return &model{
		shared:    shared,
		state:     state,
		cancel:    cancel,
		buf:       NewIterationBuffer(1),
		spin:      sp,
		input:     in,
		following: true,
	}
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{} })
}

// viewHeight returns the number of rows available for content lines: the
// terminal height minus the header, the footer, and the search input row
// when it is open.
func (m *model) viewHeight() int {
	h := m.height - 2
	if m.searching {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

// pull refreshes the buffer from the shared store and keeps scroll, search
// and the new-content alert consistent with it.
func (m *model) pull() {
	lines := m.shared.Snapshot()
	grew := len(lines) > m.buf.Len()
	m.buf.SetLines(lines, m.viewHeight())
	m.search.Refresh(lines)
	if m.following {
		m.buf.ScrollBottom(m.viewHeight())
	} else if grew {
		m.state.SetIterationAlert(m.buf.Iteration)
	}
}

func (m *model) follow(on bool) {
	m.following = on
	if on {
		m.buf.ScrollBottom(m.viewHeight())
		m.state.ClearIterationAlert()
	}
}

// jumpToMatch scrolls the window so the current match is centered.
func (m *model) jumpToMatch() {
	match, ok := m.search.CurrentMatch()
	if !ok {
		return
	}
	m.follow(false)
	m.buf.ScrollTo(match.Line, m.viewHeight())
}

func (m model) Init() tea.Cmd {
	return tea.Batch(pollTick(), m.spin.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 2
		m.ready = true
		m.buf.SetLines(m.buf.Lines(), m.viewHeight())
		return m, tea.Batch(cmds...)

	case pollMsg:
		m.pull()
		return m, tea.Batch(append(cmds, pollTick())...)

	case tea.KeyMsg:
		if m.searching {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.input.Value())
				m.searching = false
				m.input.Blur()
				if query == "" {
					m.search.Clear()
				} else {
					m.search.Set(query, m.buf.Lines())
					m.jumpToMatch()
				}
				return m, tea.Batch(cmds...)
			case tea.KeyEsc:
				m.searching = false
				m.input.Blur()
				return m, tea.Batch(cmds...)
			}
			m.input, cmd = m.input.Update(msg)
			return m, tea.Batch(append(cmds, cmd)...)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "/":
			m.searching = true
			m.input.SetValue(m.search.Query)
			m.input.Focus()
			return m, tea.Batch(append(cmds, textinput.Blink)...)
		case "esc":
			m.search.Clear()
		case "n":
			m.search.Next()
			m.jumpToMatch()
		case "N":
			m.search.Prev()
			m.jumpToMatch()
		case "up", "k":
			m.follow(false)
			m.buf.ScrollUp(1)
		case "down", "j":
			m.buf.ScrollDown(1, m.viewHeight())
			if m.buf.AtBottom(m.viewHeight()) {
				m.follow(true)
			}
		case "pgup":
			m.follow(false)
			m.buf.ScrollUp(m.viewHeight())
		case "pgdown":
			m.buf.ScrollDown(m.viewHeight(), m.viewHeight())
			if m.buf.AtBottom(m.viewHeight()) {
				m.follow(true)
			}
		case "g":
			m.follow(false)
			m.buf.ScrollTop()
		case "G", "f":
			m.follow(true)
		}
		return m, tea.Batch(cmds...)
	}

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if !m.ready {
		return "Initializing…"
	}
	view := m.state.View()

	var b strings.Builder
	title := titleStyle.Render("termstream")
	header := title + headerStyle.Render(fmt.Sprintf("  iter %d", m.buf.Iteration))
	if view.ActiveAt(time.Now()) {
		header += "  " + m.spin.View()
	}
	b.WriteString(header)
	b.WriteString("\n")

	h := m.viewHeight()
	visible := m.buf.VisibleLines(h)
	for _, line := range visible {
		if m.search.Active() {
			line = HighlightLine(line, m.search.Query)
		}
		b.WriteString(styled.Paint(line))
		b.WriteString("\n")
	}
	for i := len(visible); i < h; i++ {
		b.WriteString("\n")
	}

	if m.searching {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(RenderFooter(m.width, view, m.search, m.following, time.Now()))
	return b.String()
}

// Run launches the dashboard over the shared line store and blocks until the
// viewer quits. Returns a POSIX-style exit code.
func Run(ctx context.Context, shared *SharedLines, state *State, cancel context.CancelFunc) int {
	// Pin the color profile so lipgloss never issues OSC queries that would
	// contaminate stdin.
	lipgloss.SetColorProfile(termenv.TrueColor)
	lipgloss.SetHasDarkBackground(true)

	p := tea.NewProgram(newModel(shared, state, cancel), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "dashboard error:", err)
		return 1
	}
	return 0
}
