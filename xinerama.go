// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"

	"github.com/BurntSushi/xgb/xinerama"
)

// screenRect is one Xinerama-reported output rectangle.
type screenRect struct {
	x, y, w, h int
}

// queryUniqueScreens asks the Xinerama extension for the active
// screen layout and keeps only geometrically distinct rectangles
// (dwm.c updategeom's isuniquegeom filter collapses mirrored/cloned
// outputs that report the exact same rectangle twice).
func queryUniqueScreens(b *xgbBackend) ([]screenRect, bool) {
	if err := xinerama.Init(b.conn); err != nil {
		return nil, false
	}
	active, err := xinerama.IsActive(b.conn).Reply()
	if err != nil || active == nil || active.State == 0 {
		return nil, false
	}
	reply, err := xinerama.QueryScreens(b.conn).Reply()
	if err != nil || reply == nil {
		return nil, false
	}

	var unique []screenRect
	for _, s := range reply.ScreenInfo {
		r := screenRect{x: int(s.XOrg), y: int(s.YOrg), w: int(s.Width), h: int(s.Height)}
		dup := false
		for _, u := range unique {
			if u == r {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, r)
		}
	}
	return unique, true
}

// updateGeom reconciles the monitor set against the current screen
// layout, growing or shrinking it and reassigning any orphaned
// clients to the first surviving monitor, then re-derives selmon the
// same roundabout way dwm.c's updategeom does (dwm.c updategeom).
// Falls back to a single monitor spanning the whole root window when
// Xinerama is unavailable or inactive.
func (wm *WM) updateGeom() bool {
	b, ok := wm.conn.(*xgbBackend)
	if !ok {
		return false
	}

	dirty := false
	screens, active := queryUniqueScreens(b)
	if !active || len(screens) == 0 {
		if wm.mons == nil {
			wm.mons = newMonitor(wm.cfg)
			dirty = true
		}
		if wm.mons.mw != wm.screenW || wm.mons.mh != wm.screenH {
			dirty = true
			wm.mons.mx, wm.mons.my, wm.mons.mw, wm.mons.mh = 0, 0, wm.screenW, wm.screenH
			wm.mons.wx, wm.mons.wy, wm.mons.ww, wm.mons.wh = 0, 0, wm.screenW, wm.screenH
			wm.mons.updateBarPos(wm.barHeight)
		}
	} else {
		nmons := 0
		for m := wm.mons; m != nil; m = m.next {
			nmons++
		}

		if nmons <= len(screens) {
			tail := lastMonitor(wm.mons)
			for i := 0; i < len(screens)-nmons; i++ {
				nm := newMonitor(wm.cfg)
				if wm.mons == nil {
					wm.mons = nm
				} else {
					tail.next = nm
				}
				tail = nm
			}

			i := 0
			for m := wm.mons; m != nil && i < len(screens); m, i = m.next, i+1 {
				s := screens[i]
				if i >= nmons || s.x != m.mx || s.y != m.my || s.w != m.mw || s.h != m.mh {
					dirty = true
					m.num = i
					m.mx, m.my, m.mw, m.mh = s.x, s.y, s.w, s.h
					m.wx, m.wy, m.ww, m.wh = s.x, s.y, s.w, s.h
					m.updateBarPos(wm.barHeight)
				}
			}
		} else {
			for i := len(screens); i < nmons; i++ {
				last := lastMonitor(wm.mons)
				for c := last.clients; c != nil; {
					next := c.next
					dirty = true
					last.clients = next
					wm.detachStack(c)
					c.mon = wm.mons
					wm.attach(c)
					wm.attachStack(c)
					c = next
				}
				if last == wm.selmon {
					wm.selmon = wm.mons
				}
				wm.cleanupMon(last)
			}
		}
	}

	if dirty {
		wm.selmon = wm.mons
		wm.selmon = wm.windowToMonitor(wm.root)
	}
	return dirty
}

// cleanupMon unlinks m from the monitor set and destroys its bar
// window (dwm.c cleanupmon).
func (wm *WM) cleanupMon(m *Monitor) {
	if m == wm.mons {
		wm.mons = m.next
	} else {
		prev := wm.mons
		for prev != nil && prev.next != m {
			prev = prev.next
		}
		if prev != nil {
			prev.next = m.next
		}
	}
	if m.barGC != 0 {
		wm.conn.DestroyGC(m.barGC)
	}
	if m.barWindow != 0 {
		wm.conn.UnmapWindow(m.barWindow)
		wm.conn.DestroyWindow(m.barWindow)
	}
	log.Printf("monitor %d removed\n", m.num)
}
