package core

import (
	"reflect"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := InputOf(ActionLeft, ActionPause, ActionNone, ActionUp)

	want := []Action{ActionLeft, ActionPause, ActionUp}
	if !reflect.DeepEqual(f.Actions, want) {
		t.Errorf("Actions = %v, want %v", f.Actions, want)
	}
	if got := f.Directions(); !reflect.DeepEqual(got, []Action{ActionLeft, ActionUp}) {
		t.Errorf("Directions() = %v", got)
	}
	if !f.Has(ActionPause) || f.Has(ActionQuit) {
		t.Error("Has() mismatch")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := InputOf(ActionDown, ActionNone, ActionPause)
	if len(f.Actions) != 2 {
		t.Fatalf("Actions = %v, ActionNone should be dropped", f.Actions)
	}

	f.Clear()
	if len(f.Actions) != 0 || f.Has(ActionDown) {
		t.Errorf("Clear() left %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionUp, "Up"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, want %q", tc.a, got, tc.want)
		}
	}
}
