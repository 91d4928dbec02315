// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup
	OpConfigLoad Op = "load config"
	OpLogOpen    Op = "open log file"
	OpStateOpen  Op = "open state database"
	OpInitialize Op = "initialize application"

	// Profiles
	OpProfileLoad   Op = "load profile"
	OpProfileList   Op = "list profiles"
	OpProfileImport Op = "import profiles"

	// Gallery
	OpPhotoLoad  Op = "load photo"
	OpPhotoCache Op = "cache photo"

	// View state
	OpViewStateLoad Op = "load view state"
	OpViewStateSave Op = "save view state"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
