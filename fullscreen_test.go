// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestSetFullscreenSnapshotsAndFillsTheMonitor(t *testing.T) {
	wm, fb := newTestWM(1920, 1080)
	m := wm.selmon
	c := newTestClient(wm, m, 1, m.currentTags())
	c.x, c.y, c.w, c.h = 10, 20, 300, 200
	c.borderWidth = 2

	wm.setFullscreen(c, true)

	if !c.fullscreen || !c.floating {
		t.Error("setFullscreen(true) must mark the client fullscreen and floating")
	}
	if c.borderWidth != 0 {
		t.Errorf("fullscreen client should have no border, got %d", c.borderWidth)
	}
	if c.oldx != 10 || c.oldy != 20 || c.oldw != 300 || c.oldh != 200 {
		t.Error("setFullscreen(true) should snapshot the prior geometry for restoration")
	}
	got := fb.configured[c.window]
	if got != [4]int{m.mx, m.my, m.mw, m.mh} {
		t.Errorf("fullscreen geometry = %v, want monitor bounds %v", got, [4]int{m.mx, m.my, m.mw, m.mh})
	}
}

func TestSetFullscreenFalseRestoresPriorGeometry(t *testing.T) {
	wm, fb := newTestWM(1920, 1080)
	m := wm.selmon
	c := newTestClient(wm, m, 1, m.currentTags())
	c.x, c.y, c.w, c.h = 10, 20, 300, 200
	c.borderWidth = 2
	// Floating, so the arrange that follows the restore keeps the
	// restored geometry instead of re-tiling the client.
	c.floating = true

	wm.setFullscreen(c, true)
	wm.setFullscreen(c, false)

	if c.fullscreen {
		t.Error("setFullscreen(false) should clear the fullscreen flag")
	}
	if c.borderWidth != 2 {
		t.Errorf("setFullscreen(false) should restore the prior border width, got %d", c.borderWidth)
	}
	got := fb.configured[c.window]
	if got != [4]int{10, 20, 300, 200} {
		t.Errorf("restored geometry = %v, want %v", got, [4]int{10, 20, 300, 200})
	}
}

func TestSetFullscreenIsIdempotent(t *testing.T) {
	wm, _ := newTestWM(1920, 1080)
	m := wm.selmon
	c := newTestClient(wm, m, 1, m.currentTags())

	wm.setFullscreen(c, true)
	before := *c
	wm.setFullscreen(c, true) // already fullscreen; must be a no-op

	if *c != before {
		t.Error("setFullscreen(true) on an already-fullscreen client should be a no-op")
	}
}

func TestToggleFullscreenWithNoSelectionIsNoOp(t *testing.T) {
	wm, _ := newTestWM(1920, 1080)
	wm.selmon.selected = nil

	wm.toggleFullscreen() // must not panic
}
