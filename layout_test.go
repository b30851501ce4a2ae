// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestTileSingleClientFillsMaster(t *testing.T) {
	wm, fb := newTestWM(1280, 720)
	m := wm.selmon
	m.nmaster = 1

	c := newTestClient(wm, m, 1, m.currentTags())

	wm.tile(m)

	got := fb.configured[c.window]
	wantW := m.ww - 2*c.borderWidth - m.gappx
	if got[2] != wantW {
		t.Errorf("single-master width = %d, want %d", got[2], wantW)
	}
	if got[0] != m.wx+m.gappx {
		t.Errorf("single-master x = %d, want %d", got[0], m.wx+m.gappx)
	}
}

func TestTileSplitsMasterAndStack(t *testing.T) {
	wm, fb := newTestWM(1280, 720)
	m := wm.selmon
	m.nmaster = 1
	m.mfact = 0.5

	stacked := newTestClient(wm, m, 1, m.currentTags())
	master := newTestClient(wm, m, 2, m.currentTags()) // attached last, so it heads the list and takes the master slot
	_ = master

	wm.tile(m)

	masterGeom := fb.configured[master.window]
	stackGeom := fb.configured[stacked.window]

	if masterGeom[0] >= stackGeom[0] {
		t.Errorf("master x %d should be left of stack x %d", masterGeom[0], stackGeom[0])
	}
	wantMasterW := int(float64(m.ww)*m.mfact) - 2*master.borderWidth - m.gappx
	if masterGeom[2] != wantMasterW {
		t.Errorf("master width = %d, want %d", masterGeom[2], wantMasterW)
	}
	_ = stacked
}

func TestTileIgnoresFloatingAndHiddenClients(t *testing.T) {
	wm, fb := newTestWM(1280, 720)
	m := wm.selmon

	floating := newTestClient(wm, m, 1, m.currentTags())
	floating.floating = true
	hidden := newTestClient(wm, m, 2, 1<<5) // not in m.currentTags()
	tiled := newTestClient(wm, m, 3, m.currentTags())

	wm.tile(m)

	if _, ok := fb.configured[floating.window]; ok {
		t.Error("tile() must not resize a floating client")
	}
	if _, ok := fb.configured[hidden.window]; ok {
		t.Error("tile() must not resize a client not on the current tag")
	}
	if _, ok := fb.configured[tiled.window]; !ok {
		t.Error("tile() should resize the one tiled, visible client")
	}
}

func TestMonocleFillsWorkAreaForEveryVisibleClient(t *testing.T) {
	wm, fb := newTestWM(1000, 800)
	m := wm.selmon

	a := newTestClient(wm, m, 1, m.currentTags())
	b := newTestClient(wm, m, 2, m.currentTags())

	wm.monocle(m)

	for _, c := range []*Client{a, b} {
		got := fb.configured[c.window]
		if got[2] != m.ww-2*c.borderWidth || got[3] != m.wh-2*c.borderWidth {
			t.Errorf("monocle geometry for window %d = %v, want full work area", c.window, got)
		}
	}
}

func TestZoomPromotesSelectedToMaster(t *testing.T) {
	wm, _ := newTestWM(1280, 720)
	m := wm.selmon
	m.nmaster = 1

	first := newTestClient(wm, m, 1, m.currentTags())
	_ = newTestClient(wm, m, 2, m.currentTags()) // attached after first, so it starts as master

	m.selected = first // not currently master

	wm.zoom()

	if nextTiled(m.clients) != first {
		t.Errorf("zoom() should promote the selected, non-master client to the head of the attachment list")
	}
}

func TestSetMFactRejectsResultsOutsideRange(t *testing.T) {
	wm, _ := newTestWM(1280, 720)
	m := wm.selmon
	m.mfact = 0.55

	wm.setMFact(10) // way out of range
	if m.mfact != 0.55 {
		t.Errorf("setMFact should reject an out-of-range delta, got mfact=%v", m.mfact)
	}

	wm.setMFact(0.1)
	if m.mfact != 0.65 {
		t.Errorf("setMFact(0.1) = %v, want 0.65", m.mfact)
	}
}

func TestIncNMasterNeverDropsBelowOne(t *testing.T) {
	wm, _ := newTestWM(1280, 720)
	m := wm.selmon
	m.nmaster = 1

	wm.incNMaster(-5)
	if m.nmaster != 1 {
		t.Errorf("incNMaster should floor nmaster at 1, got %d", m.nmaster)
	}
}
