// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "github.com/BurntSushi/xgb/xproto"

// Monitor is one output with a work area (spec.md §3).
type Monitor struct {
	layoutSymbol string
	mfact        float64
	nmaster      int
	num          int

	by                 int // bar y-coordinate
	mx, my, mw, mh     int // screen geometry
	wx, wy, ww, wh     int // work-area geometry
	gappx              int
	seltags            uint32    // selector bit: 0 or 1
	tagset             [2]uint32 // current, previous
	showBar            bool
	topBar             bool
	curLayout          []int // per-tag current-layout-index, indexed by tag bit position
	layouts            []Layout

	clients  *Client // attachment-list head
	selected *Client
	stack    *Client // focus-stack head

	barWindow xproto.Window
	barGC     xproto.Gcontext

	next *Monitor
}

// currentTags / previousTags realize the Tagset glossary entry:
// "current = tagset[sel]; previous = tagset[sel ^ 1]".
func (m *Monitor) currentTags() uint32  { return m.tagset[m.seltags] }
func (m *Monitor) previousTags() uint32 { return m.tagset[m.seltags^1] }

// current returns the layout selected for the monitor's current view,
// per-tag (spec.md §3: "per-tag current-layout-index").
func (m *Monitor) current() Layout {
	bit := firstTagBit(m.currentTags())
	idx := 0
	if bit >= 0 && bit < len(m.curLayout) {
		idx = m.curLayout[bit]
	}
	if idx < 0 || idx >= len(m.layouts) {
		idx = 0
	}
	return m.layouts[idx]
}

func firstTagBit(tags uint32) int {
	if tags == 0 {
		return -1
	}
	for i := 0; i < 31; i++ {
		if tags&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

func newMonitor(cfg *Config) *Monitor {
	m := &Monitor{
		mfact:   cfg.MFact,
		nmaster: cfg.NMaster,
		showBar: cfg.ShowBar,
		topBar:  cfg.TopBar,
		gappx:   cfg.GapPx,
	}
	m.tagset[0], m.tagset[1] = 1, 1
	m.layouts = builtinLayouts()
	m.curLayout = make([]int, len(cfg.Tags))
	m.layoutSymbol = m.layouts[0].Symbol
	return m
}

// updateBarPos realizes dwm.c's updatebarpos: the work area is the
// screen area minus the bar, reserved on the side TopBar names.
func (m *Monitor) updateBarPos(barHeight int) {
	m.wy = m.my
	m.wh = m.mh
	if m.showBar {
		m.wh -= barHeight
		if m.topBar {
			m.by = m.wy
			m.wy += barHeight
		} else {
			m.by = m.wy + m.wh
		}
	} else {
		m.by = -barHeight
	}
}

// intersectArea is dwm.c's INTERSECT macro: the area of the
// intersection of rectangle (x,y,w,h) with m's screen geometry.
func (m *Monitor) intersectArea(x, y, w, h int) int {
	ix := max(0, min(x+w, m.mx+m.mw)-max(x, m.mx))
	iy := max(0, min(y+h, m.my+m.mh)-max(y, m.my))
	return ix * iy
}

// ---- Monitor Set ----

// recttomon returns the monitor whose screen geometry has the largest
// intersection with the given rectangle, falling back to sel.
func recttomon(mons *Monitor, sel *Monitor, x, y, w, h int) *Monitor {
	r := sel
	area := 0
	for m := mons; m != nil; m = m.next {
		if a := m.intersectArea(x, y, w, h); a > area {
			area = a
			r = m
		}
	}
	return r
}

// dirtomon picks the monitor dir away from sel in the monitor set's
// link order (dwm.c dirtomon).
func dirtomon(mons *Monitor, sel *Monitor, dir int) *Monitor {
	if dir > 0 {
		if sel.next != nil {
			return sel.next
		}
		return mons
	}
	if sel == mons {
		return lastMonitor(mons)
	}
	prev := mons
	for prev != nil && prev.next != sel {
		prev = prev.next
	}
	if prev == nil {
		return mons
	}
	return prev
}

func lastMonitor(mons *Monitor) *Monitor {
	m := mons
	for m != nil && m.next != nil {
		m = m.next
	}
	return m
}
