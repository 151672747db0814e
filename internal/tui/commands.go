package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trafico-pr/trafico-cli/internal/api"
	"github.com/trafico-pr/trafico-cli/internal/models"
	"github.com/trafico-pr/trafico-cli/internal/output"
)

const refreshTimeout = 30 * time.Second

// refreshTick returns a tea.Cmd that fires once after the refresh interval.
func refreshTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// refreshRoutes returns a tea.Cmd that fetches both routes sequentially and
// reports the resulting board lines. The first failing route aborts the cycle;
// the board shows the error and the timer is re-armed regardless.
func refreshRoutes(client *api.Client, routes [2]models.RouteDef, departure int64, trafficModel string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		var lines [2]string
		for i, def := range routes {
			res, err := client.GetRoute(ctx, api.RouteRequest{
				Origin:        def.Origin,
				Dest:          def.Dest,
				DepartureTime: departure,
				TrafficModel:  trafficModel,
			})
			if err != nil {
				return refreshDoneMsg{err: err, at: time.Now()}
			}
			lines[i] = output.BoardLine(def, res)
		}

		return refreshDoneMsg{lines: lines, at: time.Now()}
	}
}
