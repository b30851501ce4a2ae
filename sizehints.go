// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "github.com/BurntSushi/xgbutil/icccm"

// applySizeHints clamps (x, y, w, h) in place to fit the screen
// (interact) or the monitor's work area (automatic layout), then
// reconciles them against WM_NORMAL_HINTS' base/increment/min/max/
// aspect fields when resize hints are honored: floating clients,
// clients under a floating layout, and any client when the
// configuration requests it unconditionally (dwm.c applysizehints).
// It reports whether the reconciled geometry differs from c's
// current one, so callers only issue an X request on real change.
func (wm *WM) applySizeHints(c *Client, x, y, w, h *int, interact bool) bool {
	m := c.mon

	*w = max(1, *w)
	*h = max(1, *h)

	if interact {
		if *x > wm.screenW {
			*x = wm.screenW - c.width()
		}
		if *y > wm.screenH {
			*y = wm.screenH - c.height()
		}
		if *x+*w+2*c.borderWidth < 0 {
			*x = 0
		}
		if *y+*h+2*c.borderWidth < 0 {
			*y = 0
		}
	} else {
		if *x >= m.wx+m.ww {
			*x = m.wx + m.ww - c.width()
		}
		if *y >= m.wy+m.wh {
			*y = m.wy + m.wh - c.height()
		}
		if *x+*w+2*c.borderWidth <= m.wx {
			*x = m.wx
		}
		if *y+*h+2*c.borderWidth <= m.wy {
			*y = m.wy
		}
	}

	if *h < wm.barHeight {
		*h = wm.barHeight
	}
	if *w < wm.barHeight {
		*w = wm.barHeight
	}

	if wm.cfg.ResizeHints || c.floating || c.mon.current().Arrange == nil {
		baseIsMin := c.basew == c.minw && c.baseh == c.minh
		if !baseIsMin {
			*w -= c.basew
			*h -= c.baseh
		}

		if c.mina > 0 && c.maxa > 0 {
			if c.maxa < float64(*w)/float64(*h) {
				*w = int(float64(*h)*c.maxa + 0.5)
			} else if c.mina < float64(*h)/float64(*w) {
				*h = int(float64(*w)*c.mina + 0.5)
			}
		}

		if baseIsMin {
			*w -= c.basew
			*h -= c.baseh
		}

		if c.incw != 0 {
			*w -= *w % c.incw
		}
		if c.inch != 0 {
			*h -= *h % c.inch
		}

		*w = max(*w+c.basew, c.minw)
		*h = max(*h+c.baseh, c.minh)
		if c.maxw != 0 {
			*w = min(*w, c.maxw)
		}
		if c.maxh != 0 {
			*h = min(*h, c.maxh)
		}
	}

	return *x != c.x || *y != c.y || *w != c.w || *h != c.h
}

// updateSizeHints reads WM_NORMAL_HINTS and caches the base/
// increment/min/max/aspect fields applySizeHints consumes (dwm.c
// updatesizehints).
func (wm *WM) updateSizeHints(c *Client) {
	hints, err := icccm.WmNormalHintsGet(wm.xu, c.window)
	if err != nil {
		c.basew, c.baseh = 0, 0
		c.incw, c.inch = 0, 0
		c.maxw, c.maxh = 0, 0
		c.minw, c.minh = 0, 0
		c.mina, c.maxa = 0, 0
		c.fixed = false
		return
	}

	if hints.Flags&icccm.SizeHintPAspect > 0 && hints.MaxAspectDen != 0 && hints.MinAspectDen != 0 {
		c.mina = float64(hints.MinAspectDen) / float64(hints.MinAspectNum)
		c.maxa = float64(hints.MaxAspectNum) / float64(hints.MaxAspectDen)
	} else {
		c.mina, c.maxa = 0, 0
	}

	if hints.Flags&icccm.SizeHintPBaseSize > 0 {
		c.basew, c.baseh = int(hints.BaseWidth), int(hints.BaseHeight)
	} else if hints.Flags&icccm.SizeHintPMinSize > 0 {
		c.basew, c.baseh = int(hints.MinWidth), int(hints.MinHeight)
	} else {
		c.basew, c.baseh = 0, 0
	}

	if hints.Flags&icccm.SizeHintPResizeInc > 0 {
		c.incw, c.inch = int(hints.WidthInc), int(hints.HeightInc)
	} else {
		c.incw, c.inch = 0, 0
	}

	if hints.Flags&icccm.SizeHintPMaxSize > 0 {
		c.maxw, c.maxh = int(hints.MaxWidth), int(hints.MaxHeight)
	} else {
		c.maxw, c.maxh = 0, 0
	}

	if hints.Flags&icccm.SizeHintPMinSize > 0 {
		c.minw, c.minh = int(hints.MinWidth), int(hints.MinHeight)
	} else if hints.Flags&icccm.SizeHintPBaseSize > 0 {
		c.minw, c.minh = int(hints.BaseWidth), int(hints.BaseHeight)
	} else {
		c.minw, c.minh = 0, 0
	}

	c.fixed = c.maxw != 0 && c.maxh != 0 && c.maxw == c.minw && c.maxh == c.minh
}
