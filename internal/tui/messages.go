package tui

import "time"

// refreshTickMsg is sent when the refresh timer expires. The timer is armed
// only after the previous refresh has been fully handled, so at most one
// refresh is ever in flight.
type refreshTickMsg time.Time

// refreshDoneMsg carries the outcome of one refresh cycle: either both board
// lines, or the error that aborted the cycle.
type refreshDoneMsg struct {
	lines [2]string
	err   error
	at    time.Time
}
