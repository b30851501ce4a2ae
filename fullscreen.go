// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

// setFullscreen toggles c into or out of fullscreen, snapshotting and
// restoring the floating flag, border width and geometry it had
// beforehand (dwm.c setfullscreen). The _NET_WM_STATE property is
// published so pagers/EWMH-aware clients see the state change.
func (wm *WM) setFullscreen(c *Client, fullscreen bool) {
	if fullscreen && !c.fullscreen {
		wm.conn.SetWindowState(c.window, wm.atoms.NetWMState, []uint32{uint32(wm.atoms.NetWMStateFullscreen)})
		c.fullscreen = true
		c.oldState = c.floating
		c.oldBorderWidth = c.borderWidth
		c.borderWidth = 0
		c.floating = true
		wm.resizeClient(c, c.mon.mx, c.mon.my, c.mon.mw, c.mon.mh)
		wm.conn.RaiseWindow(c.window)
	} else if !fullscreen && c.fullscreen {
		wm.conn.SetWindowState(c.window, wm.atoms.NetWMState, nil)
		c.fullscreen = false
		c.floating = c.oldState
		c.borderWidth = c.oldBorderWidth
		c.x, c.y, c.w, c.h = c.oldx, c.oldy, c.oldw, c.oldh
		wm.resizeClient(c, c.x, c.y, c.w, c.h)
		wm.arrange(c.mon)
	}
}

// toggleFullscreen flips the selected client's fullscreen state
// (bound through the action table; not present verbatim in dwm.c,
// which only drives setfullscreen from the ClientMessage handler, but
// a direct key binding is a natural, spec-compatible addition).
func (wm *WM) toggleFullscreen() {
	c := wm.selmon.selected
	if c == nil {
		return
	}
	wm.setFullscreen(c, !c.fullscreen)
}
