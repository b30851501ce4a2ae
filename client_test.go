// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestClientWidthHeightIncludeBorder(t *testing.T) {
	c := &Client{w: 100, h: 50, borderWidth: 3}

	if got := c.width(); got != 106 {
		t.Errorf("width() = %d, want 106", got)
	}
	if got := c.height(); got != 56 {
		t.Errorf("height() = %d, want 56", got)
	}
}

func TestClientVisibleChecksTagIntersection(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	onTag := &Client{mon: m, tags: m.currentTags()}
	if !onTag.visible() {
		t.Error("a client sharing a tag bit with its monitor's current view should be visible")
	}

	offTag := &Client{mon: m, tags: 1 << 20}
	if offTag.visible() {
		t.Error("a client with no tag bits in common with the current view should not be visible")
	}
}
