// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

// StripANSI removes ANSI escape codes from a string for easier testing.
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) >= 0
}

// FindLine returns the index of the first line containing substr after
// stripping styles, or -1.
func FindLine(output, substr string) int {
	for i, line := range strings.Split(output, "\n") {
		if strings.Contains(StripANSI(line), substr) {
			return i
		}
	}
	return -1
}

// PlainLines splits output into unstyled lines.
func PlainLines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, l := range lines {
		lines[i] = StripANSI(l)
	}
	return lines
}
