// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestAttachInsertsAtHeadOfAttachmentList(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	a := newTestClient(wm, m, 1, m.currentTags())
	b := newTestClient(wm, m, 2, m.currentTags())

	if m.clients != b || m.clients.next != a {
		t.Error("attach() should insert the newest client at the head of the attachment list")
	}
}

func TestDetachRemovesFromAttachmentListOnly(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	a := newTestClient(wm, m, 1, m.currentTags())
	b := newTestClient(wm, m, 2, m.currentTags())

	wm.detach(a)

	if m.clients != b || m.clients.next != nil {
		t.Error("detach() left a dangling reference to the removed client")
	}
	if m.stack != b || m.stack.snext != a {
		t.Error("detach() must not touch the focus stack")
	}
}

func TestDetachStackReselectsFirstVisibleRemaining(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	a := newTestClient(wm, m, 1, m.currentTags())
	b := newTestClient(wm, m, 2, m.currentTags())
	m.selected = b

	wm.detachStack(b)

	if m.selected != a {
		t.Errorf("detachStack() should re-select the next visible client, got %v, want %v", m.selected, a)
	}
}

func TestDetachStackSkipsClientsNotOnCurrentTag(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	hidden := newTestClient(wm, m, 1, 1<<7)
	visible := newTestClient(wm, m, 2, m.currentTags())
	selected := newTestClient(wm, m, 3, m.currentTags())
	m.selected = selected

	wm.detachStack(selected)

	if m.selected != visible {
		t.Errorf("detachStack() should skip the hidden client and select %v, got %v", visible, m.selected)
	}
	_ = hidden
}

func TestFocusFallsBackToFirstVisibleOnSelectedMonitor(t *testing.T) {
	wm, fb := newTestWM(800, 600)
	m := wm.selmon

	hidden := newTestClient(wm, m, 1, 1<<7)
	visible := newTestClient(wm, m, 2, m.currentTags())

	wm.focus(nil)

	if m.selected != visible {
		t.Errorf("focus(nil) should select the first visible client, got %v want %v", m.selected, visible)
	}
	if fb.focused != visible.window {
		t.Errorf("focus(nil) should grant X input focus to %v, got %v", visible.window, fb.focused)
	}
	_ = hidden
}

func TestFocusWithNoVisibleClientsRevertsToRoot(t *testing.T) {
	wm, fb := newTestWM(800, 600)
	fb.focused = 42 // pretend some window had focus

	wm.focus(nil)

	if wm.selmon.selected != nil {
		t.Error("focus(nil) with no clients should leave nothing selected")
	}
	if fb.focused != 0 {
		t.Error("focus(nil) with no clients should revert input focus to the root window")
	}
}

func TestFocusStackWrapsAroundForward(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	a := newTestClient(wm, m, 1, m.currentTags())
	b := newTestClient(wm, m, 2, m.currentTags())
	m.selected = a // tail of the attachment list (a.next == nil)

	wm.focusStack(1)

	if m.selected != b {
		t.Errorf("focusStack(1) from the last client should wrap to %v, got %v", b, m.selected)
	}
}

func TestFocusStackSkipsHiddenClients(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	m := wm.selmon

	a := newTestClient(wm, m, 1, m.currentTags())
	hidden := newTestClient(wm, m, 2, 1<<7)
	c := newTestClient(wm, m, 3, m.currentTags())
	m.selected = c

	wm.focusStack(1)

	if m.selected != a {
		t.Errorf("focusStack(1) should skip the hidden client and land on %v, got %v", a, m.selected)
	}
	_ = hidden
}
