package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/trafico-pr/trafico-cli/internal/output"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshDoneMsg:
		return m.handleRefreshDone(msg)

	case refreshTickMsg:
		return m.handleRefreshTick()

	case spinner.TickMsg:
		if m.state != stateRefreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleRefreshDone applies the cycle result and arms the next timer. The
// timer is armed on success and on failure alike; a refresh never stops the
// board.
func (m Model) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	m.lastRefresh = msg.at
	m.lastErr = msg.err

	if msg.err != nil {
		m.lines[0] = "ERROR FETCHING ROUTES"
		m.lines[1] = output.TruncateError(msg.err, output.ErrorLineMax)
	} else {
		m.lines = msg.lines
	}

	m.state = stateIdle
	return m, refreshTick(m.cfg.RefreshInterval)
}

// handleRefreshTick starts the next fetch cycle.
func (m Model) handleRefreshTick() (tea.Model, tea.Cmd) {
	if m.state != stateIdle {
		return m, nil
	}
	m.state = stateRefreshing
	return m, tea.Batch(
		m.spin.Tick,
		refreshRoutes(m.client, m.cfg.Routes, m.departure, m.cfg.TrafficModel),
	)
}
