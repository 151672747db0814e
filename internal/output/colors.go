package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Header  func(format string, a ...interface{}) string
	Label   func(format string, a ...interface{}) string
	Value   func(format string, a ...interface{}) string
	Arrival func(format string, a ...interface{}) string
	Error   func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		// Return no-op color functions
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Header:  noColor,
			Label:   noColor,
			Value:   noColor,
			Arrival: noColor,
			Error:   noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Header:  color.New(color.FgYellow, color.Bold).SprintfFunc(),
		Label:   color.New(color.FgHiBlack).SprintfFunc(),
		Value:   color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Arrival: color.New(color.FgGreen).SprintfFunc(),
		Error:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
