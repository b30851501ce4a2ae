// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "github.com/BurntSushi/xgb/xproto"

// ---- attachment list / focus stack primitives ----
//
// Every client hangs off its monitor through two independent singly
// linked lists: next (attachment order) and snext (focus-stack
// order). Neither list owns the client — the monitor does — so these
// four operations never free or allocate; they only relink (dwm.c
// attach/attachstack/detach/detachstack).

// attach inserts c at the head of its monitor's attachment list.
func (wm *WM) attach(c *Client) {
	c.next = c.mon.clients
	c.mon.clients = c
}

// detach removes c from its monitor's attachment list.
func (wm *WM) detach(c *Client) {
	pp := &c.mon.clients
	for *pp != nil && *pp != c {
		pp = &(*pp).next
	}
	*pp = c.next
}

// attachStack inserts c at the head of its monitor's focus stack.
func (wm *WM) attachStack(c *Client) {
	c.snext = c.mon.stack
	c.mon.stack = c
}

// detachStack removes c from its monitor's focus stack and, if c was
// selected, re-selects the first visible client remaining on the
// stack (dwm.c detachstack).
func (wm *WM) detachStack(c *Client) {
	m := c.mon
	pp := &m.stack
	for *pp != nil && *pp != c {
		pp = &(*pp).snext
	}
	*pp = c.snext

	if c == m.selected {
		s := m.stack
		for s != nil && !s.visible() {
			s = s.snext
		}
		m.selected = s
	}
}

// focus selects c as the active client (dwm.c focus). A nil or
// no-longer-visible c falls back to the first visible client on the
// selected monitor's focus stack; a nil result (no visible clients)
// reverts input focus to the root window.
func (wm *WM) focus(c *Client) {
	m := wm.selmon
	if c == nil || !c.visible() {
		c = m.stack
		for c != nil && !c.visible() {
			c = c.snext
		}
	}

	if m.selected != nil && m.selected != c {
		wm.unfocus(m.selected, false)
	}

	if c != nil {
		if c.mon != m {
			wm.selmon = c.mon
			m = c.mon
		}
		if c.urgent {
			wm.setUrgent(c, false)
		}
		wm.detachStack(c)
		wm.attachStack(c)
		wm.grabButtons(c, true)
		wm.conn.SetBorderPixel(c.window, wm.schemeBorderPixel(true))
		wm.setFocus(c)
	} else {
		wm.conn.FocusRevertToRoot(wm.root)
		wm.conn.DeleteProperty(wm.root, wm.atoms.NetActiveWindow)
	}

	m.selected = c
	wm.drawBars()
}

// unfocus drops c's focused appearance and, when setfocus is true,
// reverts input focus to the root window (dwm.c unfocus).
func (wm *WM) unfocus(c *Client, setfocus bool) {
	if c == nil {
		return
	}
	wm.grabButtons(c, false)
	wm.conn.SetBorderPixel(c.window, wm.schemeBorderPixel(false))
	if setfocus {
		wm.conn.FocusRevertToRoot(wm.root)
		wm.conn.DeleteProperty(wm.root, wm.atoms.NetActiveWindow)
	}
}

// setFocus grants X input focus to c's window, unless it opted out
// via WM_HINTS input=false, then announces the change through
// _NET_ACTIVE_WINDOW and offers WM_TAKE_FOCUS (dwm.c setfocus).
func (wm *WM) setFocus(c *Client) {
	if !c.neverFocus {
		wm.conn.SetInputFocus(c.window, xproto.TimeCurrentTime)
		wm.conn.SetActiveWindowProperty(wm.root, c.window)
	}
	wm.sendProtocolEvent(c, "WM_TAKE_FOCUS", wm.atoms.WMTakeFocus)
}

// setUrgent flips c's urgency flag and mirrors it into WM_HINTS
// (dwm.c seturgent).
func (wm *WM) setUrgent(c *Client, urgent bool) {
	c.urgent = urgent
	wm.conn.SetURgencyHint(c.window, urgent)
}

// restack raises the selected client above its siblings (floating, or
// no arrange function active) or, under a tiling layout, restacks the
// whole visible, non-floating subset just below the bar window in
// focus-stack order (dwm.c restack). The trailing EnterNotify drain
// prevents the resulting pointer-crossing events from triggering an
// unwanted sloppy-focus change.
func (wm *WM) restack(m *Monitor) {
	wm.drawBar(m)
	if m.selected == nil {
		return
	}

	if m.selected.floating || m.current().Arrange == nil {
		wm.conn.RaiseWindow(m.selected.window)
	}

	if m.current().Arrange != nil {
		sibling := m.barWindow
		for c := m.stack; c != nil; c = c.snext {
			if !c.floating && c.visible() {
				wm.conn.StackBelow(c.window, sibling)
				sibling = c.window
			}
		}
	}

	wm.conn.Sync()
	wm.conn.DrainEnterNotify()
}
