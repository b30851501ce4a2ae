// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestViewSwitchesCurrentTags(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	wm.view(2) // tag index 2 -> bit 1<<2

	if m.currentTags() != 1<<2 {
		t.Errorf("currentTags() = %b, want %b", m.currentTags(), uint32(1<<2))
	}
}

func TestViewIsNoOpWhenAlreadyCurrent(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon
	before := m.seltags

	wm.view(0) // tag 0 is already the default current tag

	if m.seltags != before {
		t.Error("view() on the already-current tag must not toggle seltags")
	}
}

func TestToggleViewXorsTagIntoCurrentView(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	wm.toggleView(3)
	if m.currentTags() != (1|1<<3) {
		t.Errorf("currentTags() = %b, want %b", m.currentTags(), uint32(1|1<<3))
	}

	wm.toggleView(3)
	if m.currentTags() != 1 {
		t.Errorf("currentTags() = %b, want %b", m.currentTags(), uint32(1))
	}
}

func TestToggleViewRefusesToEmptyTheView(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	wm.toggleView(0) // only tag currently selected; clearing it would leave nothing visible

	if m.currentTags() != 1 {
		t.Error("toggleView must not leave a monitor with an empty view")
	}
}

func TestTagMovesSelectedClientToOneTag(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon
	c := newTestClient(wm, m, 1, 1|1<<3)
	m.selected = c

	wm.tag(5)

	if c.tags != 1<<5 {
		t.Errorf("c.tags = %b, want %b", c.tags, uint32(1<<5))
	}
}

func TestTagWithNoSelectionIsNoOp(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	wm.selmon.selected = nil

	wm.tag(2) // must not panic with no selected client
}

func TestToggleTagNeverEmptiesAClientsTagSet(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon
	c := newTestClient(wm, m, 1, 1)
	m.selected = c

	wm.toggleTag(0) // would clear c's only tag bit

	if c.tags != 1 {
		t.Error("toggleTag must not leave a client with an empty tag set")
	}
}

func TestTagMaskConfinesToConfiguredTagCount(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	wm.cfg.Tags = []string{"1", "2", "3"}

	if got := wm.tagMask(); got != 0b111 {
		t.Errorf("tagMask() = %b, want %b", got, 0b111)
	}
}
