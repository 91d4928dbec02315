package action

import "testing"

type ping struct{}

func (ping) ActionType() string { return "test.ping" }

func TestCmd(t *testing.T) {
	msg, ok := Cmd("profileheader", ping{})().(Msg)
	if !ok {
		t.Fatal("Cmd() did not produce a Msg")
	}
	if msg.Source != "profileheader" {
		t.Errorf("Source = %q, want %q", msg.Source, "profileheader")
	}
	if msg.Action.ActionType() != "test.ping" {
		t.Errorf("ActionType() = %q, want %q", msg.Action.ActionType(), "test.ping")
	}
}
