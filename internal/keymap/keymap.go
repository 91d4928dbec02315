// Package keymap defines key bindings for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "header", "content"
}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", "global"},
	{ActionHelp, []string{"?"}, "help", "global"},
	{ActionNextSubject, []string{"n"}, "next profile", "global"},
	{ActionPrevSubject, []string{"p"}, "previous profile", "global"},

	// Header
	{ActionToggleExpand, []string{"e", "enter"}, "photo view", "header"},
	{ActionNextPhoto, []string{"right", "l"}, "next photo", "header"},
	{ActionPrevPhoto, []string{"left", "h"}, "previous photo", "header"},
	{ActionMenu, []string{"m"}, "menu", "header"},
	{ActionBack, []string{"esc", "backspace"}, "back", "header"},
	{ActionAvatar, []string{"a"}, "open avatar", "header"},

	// Content
	{ActionScrollDown, []string{"j", "down"}, "scroll down", "content"},
	{ActionScrollUp, []string{"k", "up"}, "scroll up", "content"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "page down", "content"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "page up", "content"},
	{ActionJumpStart, []string{"g", "home"}, "top", "content"},
	{ActionJumpEnd, []string{"G", "end"}, "bottom", "content"},
	{ActionNextTab, []string{"tab"}, "next tab", "content"},
	{ActionPrevTab, []string{"shift+tab"}, "previous tab", "content"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b for use with bubbles/help.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], b.Description),
	)
}

// Help implements help.KeyMap over a fixed set of bindings.
type Help struct {
	Short []Binding
	Full  []Binding
}

// DefaultHelp lists the most useful keys in the short view and everything
// grouped by context in the full view.
func DefaultHelp() Help {
	short := make([]Binding, 0, 7)
	for _, b := range All {
		switch b.Action {
		case ActionToggleExpand, ActionNextPhoto, ActionScrollDown, ActionNextTab, ActionNextSubject, ActionHelp, ActionQuit:
			short = append(short, b)
		}
	}
	return Help{Short: short, Full: All}
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding {
	return toKeyBindings(h.Short)
}

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	for _, ctx := range []string{"global", "header", "content"} {
		var group []Binding
		for _, b := range h.Full {
			if b.Context == ctx {
				group = append(group, b)
			}
		}
		if len(group) > 0 {
			groups = append(groups, toKeyBindings(group))
		}
	}
	return groups
}

func toKeyBindings(bs []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.KeyBinding())
	}
	return out
}
