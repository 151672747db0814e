package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trafico-pr/trafico-cli/internal/testutil"
)

func sizedModel(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return updated.(Model)
}

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	m := newTestModel()
	testutil.AssertEqual(t, m.View(), "Loading...")
}

func TestView_ShowsBoardLines(t *testing.T) {
	m := sizedModel(t, newTestModel())

	updated, _ := m.Update(refreshDoneMsg{
		lines: [2]string{"NORMAL  27.0 KM  |  25 MINS", "EXPRESO  31.4 KM  |  33 MINS"},
		at:    time.Now(),
	})
	view := updated.(Model).View()

	testutil.AssertContains(t, view, letterSpace("NORMAL"))
	testutil.AssertContains(t, view, letterSpace("EXPRESO"))
}

func TestView_StatusBarTimestamps(t *testing.T) {
	m := sizedModel(t, newTestModel())

	updated, _ := m.Update(refreshDoneMsg{
		lines: [2]string{"A", "B"},
		at:    time.Unix(1000000100, 0),
	})
	view := updated.(Model).View()

	// Departure is fixed at session start; last refresh follows each cycle
	testutil.AssertContains(t, view, "departure 2001-09-09")
	testutil.AssertContains(t, view, "refreshed")
	testutil.AssertContains(t, view, "30s")
}

func TestView_PlaceholderBeforeFirstResult(t *testing.T) {
	m := sizedModel(t, newTestModel())
	testutil.AssertContains(t, m.View(), letterSpace("FETCHING ROUTES..."))
}

func TestLetterSpace(t *testing.T) {
	testutil.AssertEqual(t, letterSpace("ABC"), "A B C")
	testutil.AssertEqual(t, letterSpace(""), "")
	testutil.AssertTrue(t, !strings.HasSuffix(letterSpace("AB"), " "))
}
