package profileheader

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/portrait/internal/ui/action"
)

// Source is the component name carried by this package's action messages.
const Source = "profileheader"

// Menu requests the overflow menu.
type Menu struct{}

// ActionType implements action.Action.
func (Menu) ActionType() string { return "profileheader.menu" }

// Back requests leaving the profile screen.
type Back struct{}

// ActionType implements action.Action.
func (Back) ActionType() string { return "profileheader.back" }

// Avatar reports a tap on the avatar.
type Avatar struct{}

// ActionType implements action.Action.
func (Avatar) ActionType() string { return "profileheader.avatar" }

// Button reports a tap on one of the action row buttons.
type Button struct {
	Label string
}

// ActionType implements action.Action.
func (Button) ActionType() string { return "profileheader.button" }

// Actions is the capability the header calls when its chrome is tapped.
// Each method returns the command to run, or nil.
type Actions interface {
	OnMenuAction() tea.Cmd
	OnBackAction() tea.Cmd
	OnAvatarAction() tea.Cmd
}

// DefaultActions emits the matching action.Msg for every tap.
type DefaultActions struct{}

// OnMenuAction implements Actions.
func (DefaultActions) OnMenuAction() tea.Cmd { return action.Cmd(Source, Menu{}) }

// OnBackAction implements Actions.
func (DefaultActions) OnBackAction() tea.Cmd { return action.Cmd(Source, Back{}) }

// OnAvatarAction implements Actions.
func (DefaultActions) OnAvatarAction() tea.Cmd { return action.Cmd(Source, Avatar{}) }
