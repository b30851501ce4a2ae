// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

// Layout is a pair of (symbol, arrange function). A nil Arrange
// denotes floating mode: no automatic geometry (spec.md §3).
type Layout struct {
	Symbol  string
	Arrange func(*WM, *Monitor)
}

func builtinLayouts() []Layout {
	return []Layout{
		{Symbol: "[]=", Arrange: (*WM).tile},
		{Symbol: "[M]", Arrange: (*WM).monocle},
		{Symbol: "><>", Arrange: nil},
	}
}

// nextTiled returns the first client at or after c that is visible
// and not floating — the subset the layout engine arranges
// (dwm.c nexttiled).
func nextTiled(c *Client) *Client {
	for c != nil && (c.floating || !c.visible()) {
		c = c.next
	}
	return c
}

func countTiled(m *Monitor) int {
	n := 0
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		n++
	}
	return n
}

// tile realizes spec.md §4.4's master/stack split, grounded on the
// masters_count/gappx variant of dwm.c's tile() read directly from
// original_source/dwm.c.
func (wm *WM) tile(m *Monitor) {
	n := countTiled(m)
	if n == 0 {
		return
	}

	var mw int
	if n > m.nmaster {
		if m.nmaster > 0 {
			mw = int(float64(m.ww) * m.mfact)
		} else {
			mw = 0
		}
	} else {
		mw = m.ww - m.gappx
	}

	my, ty := m.gappx, m.gappx
	i := 0
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		if i < m.nmaster {
			h := (m.wh-my)/(minInt(n, m.nmaster)-i) - m.gappx
			wm.resize(c, m.wx+m.gappx, m.wy+my, mw-2*c.borderWidth-m.gappx, h-2*c.borderWidth, false)
			my += c.height() + m.gappx
		} else {
			h := (m.wh-ty)/(n-i) - m.gappx
			wm.resize(c, m.wx+mw+m.gappx, m.wy+ty, m.ww-mw-2*c.borderWidth-2*m.gappx, h-2*c.borderWidth, false)
			ty += c.height() + m.gappx
		}
		i++
	}
}

// monocle realizes spec.md §4.4's monocle layout: every visible
// non-floating client fills the work area.
func (wm *WM) monocle(m *Monitor) {
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		wm.resize(c, m.wx, m.wy, m.ww-2*c.borderWidth, m.wh-2*c.borderWidth, false)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// arrange realizes spec.md §4.2's "arrange the monitor" step used
// throughout the lifecycle: show/hide per visibility, run the active
// layout, restack. A nil monitor arranges every monitor (dwm.c
// arrange(NULL)).
func (wm *WM) arrange(m *Monitor) {
	if m != nil {
		wm.showHide(m.stack)
		wm.arrangeMon(m)
		wm.restack(m)
		return
	}
	for mon := wm.mons; mon != nil; mon = mon.next {
		wm.showHide(mon.stack)
		wm.arrangeMon(mon)
	}
}

func (wm *WM) arrangeMon(m *Monitor) {
	m.layoutSymbol = m.current().Symbol
	if arr := m.current().Arrange; arr != nil {
		arr(wm, m)
	}
}

// showHide is the iterative, stack-safe rewrite of dwm.c's recursive
// showhide (spec.md Design Notes): a forward pass shows top-down, a
// reverse pass hides bottom-up, exactly reproducing the original's
// post-order show/hide without recursion.
func (wm *WM) showHide(stack *Client) {
	var order []*Client
	for c := stack; c != nil; c = c.snext {
		order = append(order, c)
	}
	for _, c := range order {
		if c.visible() {
			wm.showClient(c)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		if !c.visible() {
			wm.hideClient(c)
		}
	}
}

func (wm *WM) showClient(c *Client) {
	wm.moveWindow(c.window, c.x, c.y)
	layout := c.mon.current()
	if (layout.Arrange == nil || c.floating) && !c.fullscreen {
		wm.resize(c, c.x, c.y, c.w, c.h, false)
	}
}

func (wm *WM) hideClient(c *Client) {
	wm.moveWindow(c.window, -2*c.width(), c.y)
}

// zoom promotes the selected client to/from the master slot (dwm.c
// zoom; supplemented per SPEC_FULL.md §12 — present in the original,
// not excluded by any Non-goal).
func (wm *WM) zoom() {
	m := wm.selmon
	sel := m.selected
	if m.current().Arrange == nil || (sel != nil && sel.floating) {
		return
	}
	if sel == nextTiled(m.clients) {
		sel = nextTiled(sel.next)
		if sel == nil {
			return
		}
	}
	wm.pop(sel)
}

// pop moves c to the head of its monitor's attachment list and
// re-selects it, then re-arranges (dwm.c pop).
func (wm *WM) pop(c *Client) {
	wm.detach(c)
	wm.attach(c)
	wm.focus(c)
	wm.arrange(c.mon)
}

// incNMaster adjusts the master count (dwm.c change_masters_count).
func (wm *WM) incNMaster(delta int) {
	m := wm.selmon
	m.nmaster = maxInt(m.nmaster+delta, 1)
	wm.arrange(m)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// setMFact adjusts the master fraction by delta; a result outside
// [0.05, 0.95] is rejected and leaves mfact unchanged (dwm.c
// setmfact, expressed as a direct float delta rather
// than the original's overloaded <1.0-means-relative encoding — the
// Arg tagged union abstraction spec.md Design Notes calls for chooses
// its shape per binding site, and a float delta is the natural shape
// here).
func (wm *WM) setMFact(delta float64) {
	m := wm.selmon
	if m.current().Arrange == nil {
		return
	}
	f := m.mfact + delta
	if f < 0.05 || f > 0.95 {
		return
	}
	m.mfact = f
	wm.arrange(m)
}

// setGaps adjusts the inter-window gap in pixels, floored at zero.
func (wm *WM) setGaps(delta int) {
	m := wm.selmon
	m.gappx = maxInt(m.gappx+delta, 0)
	wm.arrange(m)
}

// setLayout selects layout index idx for the current tag (dwm.c
// setlayout). idx < 0 leaves the selection unchanged (used to redraw
// after a no-op toggle).
func (wm *WM) setLayout(idx int) {
	m := wm.selmon
	bit := firstTagBit(m.currentTags())
	if bit < 0 {
		return
	}
	if idx >= 0 && idx < len(m.layouts) {
		m.curLayout[bit] = idx
	}
	m.layoutSymbol = m.current().Symbol
	if m.selected != nil {
		wm.arrange(m)
	} else {
		wm.drawBar(m)
	}
}
