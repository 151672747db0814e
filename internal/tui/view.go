package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/trafico-pr/trafico-cli/internal/models"
)

// View renders the two-line board with a status line underneath.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	line1 := m.lines[0]
	line2 := m.lines[1]
	if line1 == "" && line2 == "" {
		line1 = "FETCHING ROUTES..."
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		styleLine.Render(letterSpace(line1)),
		"",
		styleLine.Render(letterSpace(line2)),
	)

	statusHeight := 1
	board := lipgloss.Place(
		m.width, m.height-statusHeight,
		lipgloss.Center, lipgloss.Center,
		body,
		lipgloss.WithWhitespaceBackground(colorBlack),
	)

	return lipgloss.JoinVertical(lipgloss.Left, styleBoard.Render(board), m.renderStatusBar())
}

// renderStatusBar shows departure and last-refresh timestamps, dimmed.
func (m Model) renderStatusBar() string {
	departure := time.Unix(m.departure, 0).In(m.client.Timezone()).Format(models.ArrivalTimeLayout)

	refreshed := "--:--:--"
	if !m.lastRefresh.IsZero() {
		refreshed = m.lastRefresh.In(m.client.Timezone()).Format("15:04:05")
	}

	status := fmt.Sprintf("departure %s | refreshed %s | every %s | q quit",
		departure, refreshed, m.cfg.RefreshInterval)
	if m.state == stateRefreshing {
		status = m.spin.View() + " " + status
	}

	bar := styleStatus.Render(status)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bar, lipgloss.WithWhitespaceBackground(colorBlack))
}
