package models

import "testing"

func TestParseCoordinate_SeparatorStyles(t *testing.T) {
	// Comma and whitespace separation must yield identical values
	inputs := []string{
		"18.41,-66.07",
		"18.41, -66.07",
		"18.41 -66.07",
		"  18.41\t-66.07  ",
	}

	for _, in := range inputs {
		c, err := ParseCoordinate(in)
		if err != nil {
			t.Fatalf("ParseCoordinate(%q): unexpected error: %v", in, err)
		}
		if c.Lat != 18.41 || c.Lng != -66.07 {
			t.Errorf("ParseCoordinate(%q) = %v, want {18.41 -66.07}", in, c)
		}
	}
}

func TestParseCoordinate_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"one part", "18.41"},
		{"three parts", "18.41,-66.07,3"},
		{"non-numeric latitude", "abc,-66.07"},
		{"non-numeric longitude", "18.41,xyz"},
		{"latitude out of range", "91.0,-66.07"},
		{"longitude out of range", "18.41,181.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCoordinate(tt.input); err == nil {
				t.Errorf("ParseCoordinate(%q): expected error, got nil", tt.input)
			}
		})
	}
}

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"origin", Coordinate{0, 0}, true},
		{"caguas", Coordinate{18.269514, -66.039249}, true},
		{"lat boundary", Coordinate{90, 180}, true},
		{"lat too high", Coordinate{90.1, 0}, false},
		{"lat too low", Coordinate{-90.1, 0}, false},
		{"lng too high", Coordinate{0, 180.1}, false},
		{"lng too low", Coordinate{0, -180.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lat: 18.269514, Lng: -66.039249}
	want := "18.269514,-66.039249"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCoordinate_StringRoundTrip(t *testing.T) {
	c := Coordinate{Lat: 18.336549, Lng: -66.063951}
	parsed, err := ParseCoordinate(c.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != c {
		t.Errorf("round trip changed coordinate: got %v, want %v", parsed, c)
	}
}
