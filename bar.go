// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "github.com/BurntSushi/xgbutil/icccm"

// tagBoxGeometry reproduces dwm.c drawbar's occupied-tag marker box
// sizing (`drw->fonts->h / 9`, `drw->fonts->h / 6 + 2`) against this
// drawer's line height instead of an Xft font struct.
func (wm *WM) tagBoxGeometry() (side, size int) {
	h := wm.drawer.face.Metrics().Height.Ceil()
	return h / 9, h/6 + 2
}

// schemeBorderPixel is the raw X border pixel for a client window,
// selected or not (dwm.c's `scheme[SchemeSel/Norm][ColBorder].pixel`).
func (wm *WM) schemeBorderPixel(selected bool) uint32 {
	if selected {
		return wm.colorSel.borderPixel
	}
	return wm.colorNorm.borderPixel
}

// updateBars creates the bar window for every monitor that doesn't
// already have one (dwm.c updatebars).
func (wm *WM) updateBars() {
	for m := wm.mons; m != nil; m = m.next {
		if m.barWindow != 0 {
			continue
		}
		m.barWindow = wm.conn.CreateWindow(wm.root, m.wx, m.by, m.ww, wm.barHeight)
		m.barGC = wm.conn.CreateGC(m.barWindow)
		wm.conn.MapWindow(m.barWindow)
	}
}

// updateStatus refreshes the root window's WM_NAME into the status
// text area (dwm.c updatestatus).
func (wm *WM) updateStatus() {
	name, err := icccm.WmNameGet(wm.xu, wm.root)
	if err != nil || name == "" {
		name = "wm"
	}
	wm.statusText = name
	wm.drawBar(wm.selmon)
}

// drawBars redraws every monitor's bar (dwm.c drawbars).
func (wm *WM) drawBars() {
	for m := wm.mons; m != nil; m = m.next {
		wm.drawBar(m)
	}
}

// drawBar renders m's bar canvas and presents it (dwm.c drawbar): the
// status text (selected monitor only), the tag cells (urgent tags drawn
// inverted; an occupied-tag box is drawn only on tags holding the
// selected monitor's selected client, other occupied tags get no box),
// the layout symbol, and finally either the selected client's title
// or, with no selection, a plain filled block.
func (wm *WM) drawBar(m *Monitor) {
	if m.barWindow == 0 || !m.showBar {
		return
	}
	d := wm.drawer
	cv := newCanvas(d, m.ww, wm.barHeight)
	boxSide, boxSize := wm.tagBoxGeometry()

	tw := 0
	if m == wm.selmon && wm.statusText != "" {
		tw = d.textWidth(wm.statusText) - d.lrpad + 2
		cv.drawText(m.ww-tw, 0, tw, wm.barHeight, 0, wm.statusText, wm.colorNorm, false)
	}

	var occ, urg uint32
	for c := m.clients; c != nil; c = c.next {
		occ |= c.tags
		if c.urgent {
			urg |= c.tags
		}
	}

	x := 0
	for i, name := range wm.cfg.Tags {
		w := d.textWidth(name)
		bit := uint32(1) << uint(i)
		scheme := wm.colorNorm
		if m.currentTags()&bit != 0 {
			scheme = wm.colorSel
		}
		cv.drawText(x, 0, w, wm.barHeight, d.lrpad, name, scheme, urg&bit != 0)
		if occ&bit != 0 {
			filled := m == wm.selmon && m.selected != nil && m.selected.tags&bit != 0
			boxColor := scheme.fg
			if urg&bit != 0 {
				boxColor = scheme.bg
			}
			if filled {
				cv.fillRect(x+boxSide, boxSide, boxSize, boxSize, boxColor)
			}
		}
		x += w
	}

	symW := d.textWidth(m.layoutSymbol)
	if symW > wm.layoutSymbolW {
		wm.layoutSymbolW = symW
	}
	cv.drawText(x, 0, symW, wm.barHeight, d.lrpad, m.layoutSymbol, wm.colorNorm, false)
	x += symW

	if w := m.ww - tw - x; w > wm.barHeight {
		if m.selected != nil {
			scheme := wm.colorNorm
			if m == wm.selmon {
				scheme = wm.colorSel
			}
			cv.drawText(x, 0, w, wm.barHeight, d.lrpad, m.selected.name, scheme, false)
			if m.selected.floating {
				side, size := boxSide, boxSize
				col := scheme.fg
				if !m.selected.fixed {
					col = scheme.bg
				}
				cv.fillRect(x+side, side, size, size, col)
			}
		} else {
			cv.fillRect(x, 0, w, wm.barHeight, wm.colorNorm.bg)
		}
	}

	wm.conn.PutImage(m.barWindow, m.barGC, m.ww, wm.barHeight, cv.bytesBGRX())
}

// barClick classifies an x coordinate on m's bar into one of dwm.c
// buttonpress's click regions, returning the tag index a "tagbar"
// click landed on as well (dwm.c buttonpress's tag/x loop), the same
// index form view/toggleView/tag/toggleTag take.
func (wm *WM) barClick(m *Monitor, x int) (click string, tagArg int32) {
	d := wm.drawer
	cursor := 0
	for i, name := range wm.cfg.Tags {
		cursor += d.textWidth(name)
		if x < cursor {
			return "tagbar", int32(i)
		}
		if i == len(wm.cfg.Tags)-1 && x < cursor+wm.layoutSymbolW {
			return "layoutsymbol", 0
		}
	}
	if x < cursor+wm.layoutSymbolW {
		return "layoutsymbol", 0
	}
	if wm.statusText != "" && x > m.ww-d.textWidth(wm.statusText) {
		return "status", 0
	}
	return "wintitle", 0
}
