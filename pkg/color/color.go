// Package color picks terminal colors for task states in CLI output.
package color

import (
	"github.com/fatih/color"
)

var statusColors = map[string]*color.Color{
	"created":           color.New(color.FgWhite),
	"processing":        color.New(color.FgCyan),
	"blueprint_created": color.New(color.FgBlue),
	"ready":             color.New(color.FgYellow, color.Bold),
	"running":           color.New(color.FgMagenta),
	"succeeded":         color.New(color.FgGreen, color.Bold),
	"failed":            color.New(color.FgRed, color.Bold),
}

var fallback = color.New(color.Reset)

// ForStatus returns the color a status is printed in.
func ForStatus(status string) *color.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return fallback
}

// Status renders status in its color. Colors are dropped automatically when
// stdout is not a terminal or NO_COLOR is set.
func Status(status string) string {
	return ForStatus(status).Sprint(status)
}
