package core

import "testing"

func TestInputFrameSteeringPriority(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected Action
	}{
		{"nothing held", nil, ActionNone},
		{"left only", []Action{ActionLeft}, ActionLeft},
		{"down only", []Action{ActionDown}, ActionDown},
		{"left beats right", []Action{ActionRight, ActionLeft}, ActionLeft},
		{"right beats up", []Action{ActionUp, ActionRight}, ActionRight},
		{"up beats down", []Action{ActionDown, ActionUp}, ActionUp},
		{"quit is not steering", []Action{ActionQuit}, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InputOf(tc.held...).Steering(); got != tc.expected {
				t.Errorf("Steering() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set on zero frame should allocate")
	}
}
