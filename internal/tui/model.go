package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/trafico-pr/trafico-cli/internal/api"
	"github.com/trafico-pr/trafico-cli/internal/config"
)

type boardState int

const (
	// stateRefreshing: a fetch cycle is in flight; the timer is not armed.
	stateRefreshing boardState = iota
	// stateIdle: waiting for the next tick; exactly one timer is armed.
	stateIdle
)

// Model is the root Bubble Tea model for the LED board.
type Model struct {
	client *api.Client
	cfg    *config.Config

	// Departure time is sampled once per board session.
	departure int64

	width  int
	height int

	state       boardState
	lines       [2]string
	lastRefresh time.Time
	lastErr     error

	spin spinner.Model
}

// New creates a new board model. departure is the fixed Unix departure time
// for the session; pass 0 to use the startup time.
func New(client *api.Client, cfg *config.Config, departure int64) Model {
	if departure == 0 {
		departure = time.Now().Unix()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleStatus

	return Model{
		client:    client,
		cfg:       cfg,
		departure: departure,
		state:     stateRefreshing,
		spin:      sp,
	}
}

// Init enters the Refreshing state immediately.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		refreshRoutes(m.client, m.cfg.Routes, m.departure, m.cfg.TrafficModel),
	)
}
