package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ParseCoordinate parses a "lat,lng" or "lat lng" string into a Coordinate.
// Comma and whitespace separators are accepted interchangeably.
func ParseCoordinate(s string) (Coordinate, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Coordinate{}, fmt.Errorf("coordinate must have exactly two parts, got %d in %q", len(fields), s)
	}

	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q: %w", fields[0], err)
	}
	lng, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q: %w", fields[1], err)
	}

	c := Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("coordinate %s out of range", c)
	}
	return c, nil
}

// Valid reports whether the coordinate lies within valid degree ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// String formats the coordinate as "lat,lng", the form the directions API expects.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}
