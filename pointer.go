// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "github.com/BurntSushi/xgb/xproto"

// pointerRateLimitMillis is the exact integer-ms MotionNotify
// throttle dwm.c's movemouse/resizemouse apply: `(ev.xmotion.time -
// lasttime) <= (1000 / 150)`. Kept as the literal integer division
// dwm.c performs (6, not a rounded-up or time.Duration rewrite).
const pointerRateLimitMillis = 1000 / 150

// moveMouse drives an interactive move of c (or the selected client
// if c is nil, the case when invoked from a key binding) until the
// grabbed button is released (dwm.c movemouse).
func (wm *WM) moveMouse(c *Client) {
	if c == nil {
		c = wm.selmon.selected
	}
	if c == nil || c.fullscreen {
		return
	}

	wm.restack(wm.selmon)
	ocx, ocy := c.x, c.y

	if !wm.conn.GrabPointer(wm.root, wm.cursors.Move) {
		return
	}
	x, y, ok := wm.conn.RootPointer()
	if !ok {
		wm.conn.UngrabPointer()
		return
	}

	var lastTime xproto.Timestamp
	for {
		ev, everr := wm.conn.WaitForEvent()
		if everr != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		case xproto.MotionNotifyEvent:
			if e.Time-lastTime <= pointerRateLimitMillis {
				continue
			}
			lastTime = e.Time

			m := wm.selmon
			nx := ocx + int(e.RootX) - x
			ny := ocy + int(e.RootY) - y
			if abs(m.wx-nx) < wm.cfg.SnapPx {
				nx = m.wx
			} else if abs((m.wx+m.ww)-(nx+c.width())) < wm.cfg.SnapPx {
				nx = m.wx + m.ww - c.width()
			}
			if abs(m.wy-ny) < wm.cfg.SnapPx {
				ny = m.wy
			} else if abs((m.wy+m.wh)-(ny+c.height())) < wm.cfg.SnapPx {
				ny = m.wy + m.wh - c.height()
			}

			if !c.floating && m.current().Arrange != nil &&
				(abs(nx-c.x) > wm.cfg.SnapPx || abs(ny-c.y) > wm.cfg.SnapPx) {
				wm.toggleFloating()
			}
			if m.current().Arrange == nil || c.floating {
				wm.resize(c, nx, ny, c.w, c.h, true)
			}
		case xproto.ButtonReleaseEvent:
			wm.conn.UngrabPointer()
			wm.settleAfterPointerMove(c)
			return
		}
	}
}

// resizeMouse drives an interactive resize of c from its bottom-right
// corner until the grabbed button is released (dwm.c resizemouse).
func (wm *WM) resizeMouse(c *Client) {
	if c == nil {
		c = wm.selmon.selected
	}
	if c == nil || c.fullscreen {
		return
	}

	wm.restack(wm.selmon)
	ocx, ocy := c.x, c.y

	if !wm.conn.GrabPointer(wm.root, wm.cursors.Resize) {
		return
	}
	wm.conn.WarpPointer(c.window, c.w+c.borderWidth-1, c.h+c.borderWidth-1)

	var lastTime xproto.Timestamp
	for {
		ev, everr := wm.conn.WaitForEvent()
		if everr != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		case xproto.MotionNotifyEvent:
			if e.Time-lastTime <= pointerRateLimitMillis {
				continue
			}
			lastTime = e.Time

			m := wm.selmon
			nw := max(int(e.RootX)-ocx-2*c.borderWidth+1, 1)
			nh := max(int(e.RootY)-ocy-2*c.borderWidth+1, 1)

			if c.mon.wx+nw >= m.wx && c.mon.wx+nw <= m.wx+m.ww &&
				c.mon.wy+nh >= m.wy && c.mon.wy+nh <= m.wy+m.wh {
				if !c.floating && m.current().Arrange != nil &&
					(abs(nw-c.w) > wm.cfg.SnapPx || abs(nh-c.h) > wm.cfg.SnapPx) {
					wm.toggleFloating()
				}
			}
			if m.current().Arrange == nil || c.floating {
				wm.resize(c, c.x, c.y, nw, nh, true)
			}
		case xproto.ButtonReleaseEvent:
			wm.conn.WarpPointer(c.window, c.w+c.borderWidth-1, c.h+c.borderWidth-1)
			wm.conn.UngrabPointer()
			wm.conn.DrainEnterNotify()
			wm.settleAfterPointerMove(c)
			return
		}
	}
}

// settleAfterPointerMove hands c to whichever monitor its geometry
// now sits on, after the modal loop above releases the grab (dwm.c's
// shared tail of movemouse/resizemouse).
func (wm *WM) settleAfterPointerMove(c *Client) {
	if m := recttomon(wm.mons, wm.selmon, c.x, c.y, c.w, c.h); m != wm.selmon {
		wm.sendMon(c, m)
		wm.selmon = m
		wm.focus(nil)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
