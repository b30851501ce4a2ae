// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestDispatchUnknownActionIsNoOp(t *testing.T) {
	wm, _ := newTestWM(800, 600)

	dispatch(wm, "not-a-real-action", 0, nil) // must not panic
}

func TestDispatchSetMFactRoute(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon
	m.mfact = 0.55

	dispatch(wm, "setmfact", 10, nil) // arg is a percent, see actionTable

	if m.mfact != 0.65 {
		t.Errorf("dispatch(\"setmfact\", 10) left mfact = %v, want 0.65", m.mfact)
	}
}

func TestDispatchViewRoute(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	dispatch(wm, "view", 3, nil)

	if m.currentTags() != 1<<3 {
		t.Errorf("dispatch(\"view\", 3) left currentTags() = %b, want %b", m.currentTags(), uint32(1<<3))
	}
}
