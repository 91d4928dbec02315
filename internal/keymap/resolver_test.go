//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := Default()

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"e", ActionToggleExpand},
		{"right", ActionNextPhoto},
		{"left", ActionPrevPhoto},
		{"j", ActionScrollDown},
		{"G", ActionJumpEnd},
		{"tab", ActionNextTab},
		{"esc", ActionBack},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if result := r.Resolve(tt.key); result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysForDedupes(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q"}, "quit", "global"},
		{ActionQuit, []string{"q", "ctrl+c"}, "quit", "header"},
	})

	keys := r.KeysFor(ActionQuit)
	if !slices.Equal(keys, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want [q ctrl+c]", keys)
	}
	if keys := r.KeysFor(ActionMenu); len(keys) != 0 {
		t.Errorf("KeysFor(menu) = %v, want empty", keys)
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestByContext(t *testing.T) {
	for _, ctx := range []string{"global", "header", "content"} {
		if len(ByContext(ctx)) == 0 {
			t.Errorf("ByContext(%q) is empty", ctx)
		}
	}
	if got := ByContext("playback"); got != nil {
		t.Errorf("ByContext(playback) = %v, want nil", got)
	}
}

func TestDefaultHelp(t *testing.T) {
	h := DefaultHelp()

	if got := len(h.ShortHelp()); got != 7 {
		t.Errorf("len(ShortHelp()) = %d, want 7", got)
	}

	groups := h.FullHelp()
	if len(groups) != 3 {
		t.Fatalf("len(FullHelp()) = %d, want 3", len(groups))
	}
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(All) {
		t.Errorf("FullHelp covers %d bindings, want %d", total, len(All))
	}
}
