package desktop

import "github.com/vovakirdan/rps-arcade/internal/core"

// Window size in pixels, matching the original frame.
const (
	WindowWidth  = 700
	WindowHeight = 800
)

// Control is a clickable element of the window.
type Control int

const (
	ControlNone Control = iota
	ControlRock
	ControlPaper
	ControlScissors
	ControlTargetDown
	ControlTargetUp
	ControlReset
	ControlBorder
	ControlSmaller
	ControlBigger
)

// Layout positions every element for a given weapon button size.
type Layout struct {
	Surface    core.Rect
	Buttons    [3]core.Rect // rock, paper, scissors
	TargetDown core.Rect
	TargetUp   core.Rect
	Reset      core.Rect
	Border     core.Rect
	Smaller    core.Rect
	Bigger     core.Rect
	HeaderY    int
	InstructY  int
	CounterX   int
	ToolbarY   int
	ButtonSize int
}

const (
	margin        = 10
	headerHeight  = 40
	buttonGap     = 30
	toolbarHeight = 30
	smallButton   = 30
)

// NewLayout computes the layout for buttonSize.
func NewLayout(buttonSize int) Layout {
	l := Layout{ButtonSize: buttonSize}
	l.HeaderY = margin + headerHeight/2
	l.Surface = core.NewRect(margin, margin+headerHeight, WindowWidth-2*margin, 420)
	l.InstructY = l.Surface.Bottom() + 20

	rowY := l.InstructY + 25
	total := 3*buttonSize + 2*buttonGap
	x := (WindowWidth - total) / 2
	for i := range l.Buttons {
		l.Buttons[i] = core.NewRect(x+i*(buttonSize+buttonGap), rowY, buttonSize, buttonSize)
	}

	l.ToolbarY = WindowHeight - margin - toolbarHeight - 10
	y := l.ToolbarY
	l.TargetDown = core.NewRect(40, y, smallButton, toolbarHeight)
	l.CounterX = l.TargetDown.Right() + 50
	l.TargetUp = core.NewRect(l.CounterX+50, y, smallButton, toolbarHeight)
	l.Reset = core.NewRect(l.TargetUp.Right()+30, y, 100, toolbarHeight)
	l.Smaller = core.NewRect(l.Reset.Right()+30, y, smallButton, toolbarHeight)
	l.Bigger = core.NewRect(l.Smaller.Right()+10, y, smallButton, toolbarHeight)
	l.Border = core.NewRect(l.Bigger.Right()+20, y, 90, toolbarHeight)
	return l
}

// Hit returns the control under (x, y).
func (l Layout) Hit(x, y int) Control {
	for i, b := range l.Buttons {
		if b.Contains(x, y) {
			return ControlRock + Control(i)
		}
	}
	switch {
	case l.TargetDown.Contains(x, y):
		return ControlTargetDown
	case l.TargetUp.Contains(x, y):
		return ControlTargetUp
	case l.Reset.Contains(x, y):
		return ControlReset
	case l.Smaller.Contains(x, y):
		return ControlSmaller
	case l.Bigger.Contains(x, y):
		return ControlBigger
	case l.Border.Contains(x, y):
		return ControlBorder
	}
	return ControlNone
}

// Action maps a weapon or match control to a game action.
func (c Control) Action() core.Action {
	switch c {
	case ControlRock:
		return core.ActionRock
	case ControlPaper:
		return core.ActionPaper
	case ControlScissors:
		return core.ActionScissors
	case ControlTargetDown:
		return core.ActionTargetDown
	case ControlTargetUp:
		return core.ActionTargetUp
	case ControlReset:
		return core.ActionReset
	}
	return core.ActionNone
}
