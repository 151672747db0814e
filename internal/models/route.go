package models

// RouteDef is a named origin/destination pair, fixed at configuration load.
type RouteDef struct {
	Name   string     `json:"name"`
	Origin Coordinate `json:"origin"`
	Dest   Coordinate `json:"dest"`
}

// RouteResult holds the display fields extracted from one directions response.
// A new result is produced on every fetch cycle; nothing is persisted.
type RouteResult struct {
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Arrival     string `json:"arrival,omitempty"`
	DurationSec int    `json:"duration_sec"`
}
