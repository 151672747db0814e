package models

import "time"

// ArrivalTimeLayout is the local-time layout used for computed arrival times.
const ArrivalTimeLayout = "2006-01-02 15:04:05"

// DirectionsResponse represents the raw JSON response from the directions API.
// Only the fields the pipeline reads are declared; the rest of the provider
// payload is ignored.
type DirectionsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Routes       []Route `json:"routes"`
}

// Route is one alternative returned by the provider.
type Route struct {
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`
}

// Leg is one origin-to-destination segment of a route.
type Leg struct {
	Distance          TextValue  `json:"distance"`
	Duration          TextValue  `json:"duration"`
	DurationInTraffic *TextValue `json:"duration_in_traffic,omitempty"`
}

// TextValue pairs the provider's display text with its numeric value
// (meters for distances, seconds for durations).
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// FirstLeg returns the leg of the first route, if the response carries one.
func (r *DirectionsResponse) FirstLeg() (*Leg, bool) {
	if len(r.Routes) == 0 || len(r.Routes[0].Legs) == 0 {
		return nil, false
	}
	return &r.Routes[0].Legs[0], true
}

// ToResult extracts the display fields from a leg. The traffic-aware duration
// is preferred when the provider sent one. The arrival time is always computed
// as departure + duration seconds so that it stays consistent with the
// displayed duration, rather than trusting a provider-supplied arrival field.
func (l *Leg) ToResult(departure int64, loc *time.Location) *RouteResult {
	dur := l.Duration
	if l.DurationInTraffic != nil {
		dur = *l.DurationInTraffic
	}

	res := &RouteResult{
		Distance:    l.Distance.Text,
		Duration:    dur.Text,
		DurationSec: dur.Value,
	}

	if dur.Value > 0 {
		if loc == nil {
			loc = time.Local
		}
		arrival := time.Unix(departure+int64(dur.Value), 0).In(loc)
		res.Arrival = arrival.Format(ArrivalTimeLayout)
	}

	return res
}
