// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func twoMonitors() (*Monitor, *Monitor) {
	left := &Monitor{mx: 0, my: 0, mw: 1000, mh: 800}
	right := &Monitor{mx: 1000, my: 0, mw: 1000, mh: 800}
	left.next = right
	return left, right
}

func TestRecttomonPicksLargestIntersection(t *testing.T) {
	left, right := twoMonitors()

	got := recttomon(left, left, 950, 0, 200, 200) // 150px on right, 50px on left
	if got != right {
		t.Errorf("recttomon should pick the monitor with the larger overlap, got %v want right", got)
	}

	got = recttomon(left, left, 100, 0, 200, 200) // fully on left
	if got != left {
		t.Errorf("recttomon should pick left for a fully-contained rect, got %v want left", got)
	}
}

func TestRecttomonFallsBackToSelWhenNoOverlap(t *testing.T) {
	left, right := twoMonitors()
	got := recttomon(left, right, -500, -500, 10, 10) // off of every monitor
	if got != right {
		t.Errorf("recttomon with zero overlap everywhere should fall back to sel, got %v want right", got)
	}
}

func TestDirtomonWrapsAroundTheMonitorList(t *testing.T) {
	left, right := twoMonitors()

	if got := dirtomon(left, left, 1); got != right {
		t.Errorf("dirtomon(+1) from left should go to right, got %v", got)
	}
	if got := dirtomon(left, right, 1); got != left {
		t.Errorf("dirtomon(+1) from the last monitor should wrap to the first, got %v", got)
	}
	if got := dirtomon(left, left, -1); got != right {
		t.Errorf("dirtomon(-1) from the first monitor should wrap to the last, got %v", got)
	}
	if got := dirtomon(left, right, -1); got != left {
		t.Errorf("dirtomon(-1) from right should go to left, got %v", got)
	}
}

func TestUpdateBarPosReservesSpaceOnConfiguredSide(t *testing.T) {
	m := &Monitor{mx: 0, my: 0, mw: 1000, mh: 800, showBar: true, topBar: true}

	m.updateBarPos(20)

	if m.wy != 20 || m.wh != 780 || m.by != 0 {
		t.Errorf("top-bar layout: wy=%d wh=%d by=%d, want wy=20 wh=780 by=0", m.wy, m.wh, m.by)
	}

	m.topBar = false
	m.updateBarPos(20)
	if m.by != 780 {
		t.Errorf("bottom-bar layout: by=%d, want 780", m.by)
	}
}

func TestUpdateBarPosHidesBarEntirely(t *testing.T) {
	m := &Monitor{mx: 0, my: 0, mw: 1000, mh: 800, showBar: false}

	m.updateBarPos(20)

	if m.wh != 800 {
		t.Errorf("hidden bar should not shrink the work area, wh=%d want 800", m.wh)
	}
	if m.by != -20 {
		t.Errorf("hidden bar should be parked off-screen, by=%d want -20", m.by)
	}
}
