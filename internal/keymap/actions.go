// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionNextSubject Action = "next_subject"
	ActionPrevSubject Action = "prev_subject"

	// Header actions
	ActionToggleExpand Action = "toggle_expand"
	ActionNextPhoto    Action = "next_photo"
	ActionPrevPhoto    Action = "prev_photo"
	ActionMenu         Action = "menu"
	ActionBack         Action = "back" // esc - collapse if expanded, else back
	ActionAvatar       Action = "avatar"

	// Content actions
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionJumpStart  Action = "jump_start"
	ActionJumpEnd    Action = "jump_end"
	ActionNextTab    Action = "next_tab"
	ActionPrevTab    Action = "prev_tab"
)
