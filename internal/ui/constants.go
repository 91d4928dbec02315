// Package ui provides shared UI constants and utilities.
package ui

import "time"

// Layout constants for consistent sizing across UI components.
const (
	// StatusBarHeight is the one-line notification bar under the content.
	StatusBarHeight = 1

	// HelpHeight is the short key help line at the bottom.
	HelpHeight = 1

	// TouchSlop is the downward drag, in rows, past which an overscroll at
	// the top of the content is handed to the header.
	TouchSlop = 1

	// WheelStep is the number of rows one wheel notch scrolls.
	WheelStep = 1

	// NotificationTTL is how long an action notification stays in the status bar.
	NotificationTTL = 3 * time.Second
)
