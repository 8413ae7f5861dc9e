package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRock) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionRock)
	f.Set(ActionTargetUp)
	if !f.Has(ActionRock) || !f.Has(ActionTargetUp) {
		t.Error("set actions should be reported")
	}
	if f.Has(ActionPaper) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionRock) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionRock, "Rock"},
		{ActionScissors, "Scissors"},
		{ActionTargetDown, "TargetDown"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
