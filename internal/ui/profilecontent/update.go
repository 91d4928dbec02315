package profilecontent

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/portrait/internal/ui"
	"github.com/llehouerou/portrait/internal/ui/action"
)

// Result tells the app what a mouse event did.
type Result struct {
	// Handoff is set when a drag at the top edge pulled past the touch
	// slop; the app passes the drag to the header, starting at StartY.
	Handoff bool
	StartY  int

	Cmd tea.Cmd
}

// HandleMouse processes a mouse event at screen row y of the pane.
func (p *Pane) HandleMouse(msg tea.MouseMsg) Result {
	if p.intercepted {
		return Result{}
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		p.ScrollBy(ui.WheelStep)
		return Result{}
	case tea.MouseButtonWheelUp:
		p.ScrollBy(-ui.WheelStep)
		return Result{}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.press = &press{y: msg.Y, lastY: msg.Y}
		}

	case tea.MouseActionMotion:
		if p.press == nil {
			return Result{}
		}
		if p.vp.YOffset <= 0 && msg.Y-p.press.y > ui.TouchSlop {
			start := p.press.y
			p.press = nil
			return Result{Handoff: true, StartY: start}
		}
		// Drag to scroll: content follows the pointer.
		p.ScrollBy(p.press.lastY - msg.Y)
		p.press.lastY = msg.Y

	case tea.MouseActionRelease:
		pr := p.press
		p.press = nil
		if pr != nil && pr.y == msg.Y && pr.lastY == msg.Y {
			return Result{Cmd: p.tap(msg.X, msg.Y)}
		}
	}
	return Result{}
}

func (p *Pane) tap(x, y int) tea.Cmd {
	if p.tabsLine < 0 || p.vp.YOffset+y != p.tabsLine {
		return nil
	}
	i := p.tabAt(x)
	if i < 0 || !p.SetTab(i) {
		return nil
	}
	return action.Cmd(Source, TabChanged{Tab: p.Tab()})
}
