package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trafico-pr/trafico-cli/internal/api"
	"github.com/trafico-pr/trafico-cli/internal/config"
	"github.com/trafico-pr/trafico-cli/internal/models"
	"github.com/trafico-pr/trafico-cli/internal/output"
	"github.com/trafico-pr/trafico-cli/internal/testutil"
)

func newTestModel() Model {
	cfg := &config.Config{
		APIKey: "test-key",
		Routes: [2]models.RouteDef{
			{Name: "Normal", Origin: models.Coordinate{Lat: 18.27, Lng: -66.04}, Dest: models.Coordinate{Lat: 18.34, Lng: -66.06}},
			{Name: "Expreso", Origin: models.Coordinate{Lat: 18.25, Lng: -66.04}, Dest: models.Coordinate{Lat: 18.40, Lng: -66.05}},
		},
		RefreshInterval: 30 * time.Second,
	}
	client := api.NewClient("test-key", api.WithTimezone(time.UTC))
	return New(client, cfg, 1000000000)
}

func TestNew_StartsRefreshing(t *testing.T) {
	m := newTestModel()
	testutil.AssertEqual(t, m.state, stateRefreshing)
	testutil.AssertTrue(t, m.Init() != nil)
}

func TestNew_SamplesDepartureWhenZero(t *testing.T) {
	m := newTestModel()
	cfg := m.cfg

	before := time.Now().Unix()
	fresh := New(m.client, cfg, 0)
	testutil.AssertTrue(t, fresh.departure >= before)
}

func TestUpdate_RefreshDoneSuccess(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(refreshDoneMsg{
		lines: [2]string{"NORMAL  27.0 KM  |  25 MINS", "EXPRESO  31.4 KM  |  33 MINS"},
		at:    time.Now(),
	})
	got := updated.(Model)

	testutil.AssertEqual(t, got.state, stateIdle)
	testutil.AssertEqual(t, got.lines[0], "NORMAL  27.0 KM  |  25 MINS")
	testutil.AssertEqual(t, got.lines[1], "EXPRESO  31.4 KM  |  33 MINS")
	testutil.AssertFalse(t, got.lastRefresh.IsZero())

	// The next timer is armed after the result is handled
	testutil.AssertTrue(t, cmd != nil)
}

func TestUpdate_RefreshDoneError(t *testing.T) {
	m := newTestModel()
	longErr := errors.New(strings.Repeat("connection refused ", 10))

	updated, cmd := m.Update(refreshDoneMsg{err: longErr, at: time.Now()})
	got := updated.(Model)

	testutil.AssertEqual(t, got.lines[0], "ERROR FETCHING ROUTES")
	testutil.AssertTrue(t, len(got.lines[1]) <= output.ErrorLineMax)
	testutil.AssertEqual(t, got.lines[1], strings.ToUpper(got.lines[1]))

	// A failed refresh still arms the next timer
	testutil.AssertEqual(t, got.state, stateIdle)
	testutil.AssertTrue(t, cmd != nil)
}

func TestUpdate_TickStartsNextRefresh(t *testing.T) {
	m := newTestModel()
	m.state = stateIdle

	updated, cmd := m.Update(refreshTickMsg(time.Now()))
	got := updated.(Model)

	testutil.AssertEqual(t, got.state, stateRefreshing)
	testutil.AssertTrue(t, cmd != nil)
}

func TestUpdate_TickIgnoredWhileRefreshing(t *testing.T) {
	m := newTestModel()
	m.state = stateRefreshing

	updated, cmd := m.Update(refreshTickMsg(time.Now()))
	got := updated.(Model)

	testutil.AssertEqual(t, got.state, stateRefreshing)
	testutil.AssertTrue(t, cmd == nil)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := newTestModel()

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "q":
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}

		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q: expected tea.QuitMsg", key)
		}
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	got := updated.(Model)

	testutil.AssertEqual(t, got.width, 120)
	testutil.AssertEqual(t, got.height, 30)
}
