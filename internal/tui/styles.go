package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Amber LED on black, like a highway variable-message sign.
var (
	colorAmber = lipgloss.Color("#FFB000")
	colorBlack = lipgloss.Color("#000000")
	colorGray  = lipgloss.Color("8")
)

var (
	styleBoard = lipgloss.NewStyle().Background(colorBlack)

	styleLine = lipgloss.NewStyle().
			Foreground(colorAmber).
			Background(colorBlack).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorGray).
			Background(colorBlack)
)

// letterSpace spreads a line out with inter-rune spacing so the two display
// lines read like large sign lettering.
func letterSpace(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
