// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
)

// wmStateWithdrawn / wmStateNormal are ICCCM's WM_STATE values
// (WithdrawnState / NormalState in Xutil.h).
const (
	wmStateWithdrawn = 0
	wmStateNormal    = 1
)

// manage begins managing a newly mapped top-level window: it builds
// the Client, applies rules or inherits a transient parent's monitor
// and tags, clamps the initial geometry onto its monitor, centers it,
// and finally attaches, lists, and raises it (dwm.c manage).
func (wm *WM) manage(win xproto.Window) {
	override, _, x, y, w, h, borderWidth, ok := wm.conn.GetWindowAttributes(win)
	if !ok || override {
		return
	}

	c := &Client{
		window:         win,
		x:              x,
		y:              y,
		w:              w,
		h:              h,
		oldx:           x,
		oldy:           y,
		oldw:           w,
		oldh:           h,
		oldBorderWidth: borderWidth,
	}

	wm.updateTitle(c)

	hasTransient := false
	if transWin, hasTrans := wm.conn.GetTransientFor(win); hasTrans {
		hasTransient = true
		if t := wm.windowToClient(transWin); t != nil {
			c.mon = t.mon
			c.tags = t.tags
		}
	}
	if c.mon == nil {
		c.mon = wm.selmon
		wm.applyRules(c)
	}
	m := c.mon

	if c.x+c.width() > m.mx+m.mw {
		c.x = m.mx + m.mw - c.width()
	}
	if c.y+c.height() > m.my+m.mh {
		c.y = m.my + m.mh - c.height()
	}
	c.x = max(c.x, m.mx)
	if m.by == m.my && c.x+c.w/2 >= m.wx && c.x+c.w/2 < m.wx+m.ww {
		c.y = max(c.y, wm.barHeight)
	} else {
		c.y = max(c.y, m.my)
	}
	c.borderWidth = wm.cfg.BorderPx

	wm.conn.ConfigureWindow(win, c.x, c.y, c.w, c.h, c.borderWidth)
	wm.conn.SetBorderPixel(win, wm.schemeBorderPixel(false))
	wm.configureClient(c)
	wm.updateWindowType(c)
	wm.updateSizeHints(c)
	wm.updateWMHints(c)

	c.x = m.mx + (m.mw-c.width())/2
	c.y = m.my + (m.mh-c.height())/2

	wm.conn.SelectClientEventMask(win)
	wm.grabButtons(c, false)

	if !c.floating {
		c.floating = hasTransient || c.fixed
	}
	if c.floating {
		wm.conn.RaiseWindow(c.window)
	}

	wm.clients[win] = c
	wm.attach(c)
	wm.attachStack(c)
	wm.conn.AppendClientListWindow(wm.root, wm.atoms.NetClientList, win)
	wm.conn.MoveResizeWindow(win, c.x, c.y, c.w, c.h)
	wm.setClientState(c, wmStateNormal)

	if m == wm.selmon {
		wm.unfocus(wm.selmon.selected, false)
	}
	m.selected = c

	wm.arrange(m)
	wm.conn.MapWindow(win)
	wm.focus(nil)
}

// unmanage stops managing c: detaches it from both lists, restores
// its border width unless the window is already gone, frees it, and
// re-arranges its former monitor (dwm.c unmanage).
func (wm *WM) unmanage(c *Client, destroyed bool) {
	m := c.mon
	wm.detach(c)
	wm.detachStack(c)

	if !destroyed {
		closeGrab := wm.conn.GrabServerForCriticalSection()
		wm.conn.SetBorderWidth(c.window, c.oldBorderWidth)
		wm.conn.UngrabButton(c.window)
		wm.setClientState(c, wmStateWithdrawn)
		closeGrab()
	}

	delete(wm.clients, c.window)
	wm.focus(nil)
	wm.updateClientList()
	wm.arrange(m)
}

// applyRules matches c's class/instance/title against the configured
// rule list, setting its initial floating flag, tags and monitor
// (dwm.c applyrules). A client that matches no tag-bearing rule
// inherits its monitor's current view.
func (wm *WM) applyRules(c *Client) {
	c.floating = false
	c.tags = 0

	class, instance := "broken", "broken"
	if wc, err := icccm.WmClassGet(wm.xu, c.window); err == nil && wc != nil {
		if wc.Class != "" {
			class = wc.Class
		}
		if wc.Instance != "" {
			instance = wc.Instance
		}
	}

	for _, rule := range wm.cfg.Rules {
		if rule.Title != "" && !strings.Contains(c.name, rule.Title) {
			continue
		}
		if rule.Class != "" && !strings.Contains(class, rule.Class) {
			continue
		}
		if rule.Instance != "" && !strings.Contains(instance, rule.Instance) {
			continue
		}

		c.floating = rule.Floating
		c.tags |= rule.Tags

		for m := wm.mons; m != nil; m = m.next {
			if m.num == rule.Monitor {
				c.mon = m
				break
			}
		}
	}

	if c.tags&wm.tagMask() != 0 {
		c.tags &= wm.tagMask()
	} else {
		c.tags = c.mon.currentTags()
	}
}

// updateTitle refreshes c's cached display name from _NET_WM_NAME,
// falling back to WM_NAME and finally to a placeholder (dwm.c
// updatetitle / gettextprop).
func (wm *WM) updateTitle(c *Client) {
	name, err := ewmh.WmNameGet(wm.xu, c.window)
	if err != nil || name == "" {
		name, err = icccm.WmNameGet(wm.xu, c.window)
	}
	if err != nil || name == "" {
		name = "broken"
	}
	if len(name) > clientNameMax {
		name = name[:clientNameMax]
	}
	c.name = name
}

// updateWindowType promotes fullscreen/dialog state recorded in
// _NET_WM_STATE / _NET_WM_WINDOW_TYPE before the client is ever mapped
// (dwm.c updatewindowtype).
func (wm *WM) updateWindowType(c *Client) {
	state := wm.getAtomProp(c.window, "_NET_WM_STATE")
	wtype := wm.getAtomProp(c.window, "_NET_WM_WINDOW_TYPE")

	if state == wm.atoms.NetWMStateFullscreen {
		wm.setFullscreen(c, true)
	}
	if wtype == wm.atoms.NetWMWindowTypeDialog {
		c.floating = true
	}
}

// updateWMHints reconciles c's urgency and input-model flags from
// WM_HINTS (dwm.c updatewmhints). A hint claiming urgency for the
// already-selected client is cleared immediately, matching the
// original's "don't let the focused window stay urgent" behavior.
func (wm *WM) updateWMHints(c *Client) {
	hints, err := icccm.WmHintsGet(wm.xu, c.window)
	if err != nil {
		return
	}

	if c == wm.selmon.selected && hints.Flags&xUrgencyHint != 0 {
		wm.conn.SetURgencyHint(c.window, false)
	} else {
		c.urgent = hints.Flags&xUrgencyHint != 0
	}

	if hints.Flags&icccm.HintInput != 0 {
		c.neverFocus = hints.Input == 0
	} else {
		c.neverFocus = false
	}
}

func (wm *WM) getAtomProp(win xproto.Window, propName string) xproto.Atom {
	raw, err := xprop.PropValNum(xprop.GetProperty(wm.xu, win, propName))
	if err != nil {
		return 0
	}
	return xproto.Atom(raw)
}

// getState reads WM_STATE's state field, returning -1 if absent
// (dwm.c getstate).
func (wm *WM) getState(win xproto.Window) int {
	reply, err := xprop.PropValNum(xprop.GetProperty(wm.xu, win, "WM_STATE"))
	if err != nil {
		return -1
	}
	return int(reply)
}

// setClientState publishes WM_STATE (dwm.c setclientstate).
func (wm *WM) setClientState(c *Client, state uint32) {
	wm.conn.ChangeClientState(c.window, wm.atoms.WMState, wm.atoms.WMState, state)
}

// updateClientList rebuilds _NET_CLIENT_LIST from the live client set
// (dwm.c updateclientlist).
func (wm *WM) updateClientList() {
	var wins []xproto.Window
	for m := wm.mons; m != nil; m = m.next {
		for c := m.clients; c != nil; c = c.next {
			wins = append(wins, c.window)
		}
	}
	wm.conn.ReplaceClientList(wm.root, wm.atoms.NetClientList, wins)
}

// killClient asks the selected client to close via WM_DELETE_WINDOW,
// falling back to a forced XKillClient-equivalent destroy if it does
// not honor the protocol (dwm.c kill_selected_client).
func (wm *WM) killClient() {
	c := wm.selmon.selected
	if c == nil {
		return
	}
	if !wm.sendProtocolEvent(c, "WM_DELETE_WINDOW", wm.atoms.WMDelete) {
		wm.conn.KillClient(c.window)
	}
}

// quit stops the event loop (dwm.c quit).
func (wm *WM) quit() {
	wm.running = false
}

// focusStack moves the selected client's focus forward (dir > 0) or
// backward through the visible clients on the current monitor in
// attachment order, wrapping around (dwm.c focusstack). A fullscreen
// client with layout locking enabled (not modeled; this fork has no
// lockfullscreen knob) is never skipped.
func (wm *WM) focusStack(dir int) {
	m := wm.selmon
	sel := m.selected
	if sel == nil {
		return
	}

	var target *Client
	if dir > 0 {
		for c := sel.next; c != nil; c = c.next {
			if c.visible() {
				target = c
				break
			}
		}
		if target == nil {
			for c := m.clients; c != nil && c != sel; c = c.next {
				if c.visible() {
					target = c
					break
				}
			}
		}
	} else {
		for c := m.clients; c != nil && c != sel; c = c.next {
			if c.visible() {
				target = c
			}
		}
		if target == nil {
			for c := sel.next; c != nil; c = c.next {
				if c.visible() {
					target = c
				}
			}
		}
	}

	if target != nil {
		wm.focus(target)
		wm.restack(m)
	}
}

// toggleFloating flips the selected client between tiled and floating
// presentation (dwm.c togglefloating); fullscreen clients are exempt.
func (wm *WM) toggleFloating() {
	c := wm.selmon.selected
	if c == nil || c.fullscreen {
		return
	}
	c.floating = !c.floating || c.fixed
	if c.floating {
		wm.resize(c, c.x, c.y, c.w, c.h, false)
	}
	wm.arrange(wm.selmon)
}

// toggleBar shows or hides the selected monitor's bar window (dwm.c
// togglebar).
func (wm *WM) toggleBar() {
	m := wm.selmon
	m.showBar = !m.showBar
	m.updateBarPos(wm.barHeight)
	wm.conn.MoveResizeWindow(m.barWindow, m.wx, m.by, m.ww, wm.barHeight)
	wm.arrange(m)
}

// focusMon switches the selected monitor in direction dir, without
// touching which client is selected on the destination (dwm.c
// focusmon).
func (wm *WM) focusMon(dir int) {
	if wm.mons.next == nil {
		return
	}
	m := dirtomon(wm.mons, wm.selmon, dir)
	if m == wm.selmon {
		return
	}
	wm.unfocus(wm.selmon.selected, false)
	wm.selmon = m
	wm.focus(nil)
}

// tagMon sends the selected client to the monitor in direction dir
// (dwm.c tagmon).
func (wm *WM) tagMon(dir int) {
	if wm.selmon.selected == nil || wm.mons.next == nil {
		return
	}
	wm.sendMon(wm.selmon.selected, dirtomon(wm.mons, wm.selmon, dir))
}

// sendMon reassigns c to monitor m, inheriting m's current tags
// (dwm.c sendmon).
func (wm *WM) sendMon(c *Client, m *Monitor) {
	if c.mon == m {
		return
	}
	wm.unfocus(c, true)
	wm.detach(c)
	wm.detachStack(c)
	c.mon = m
	c.tags = m.currentTags()
	wm.attach(c)
	wm.attachStack(c)
	wm.focus(nil)
	wm.arrange(nil)
}

// wmStateIconic is ICCCM's WM_STATE IconicState value.
const wmStateIconic = 3

// scan populates the initial client set from windows that already
// exist when the window manager starts (dwm.c scan). The first pass
// manages every viewable-or-iconic top-level window that has no
// transient-for hint; the second pass manages viewable-or-iconic
// transient windows, so a transient's parent (already handled in the
// first pass, if it is itself non-transient) is always managed first.
func (wm *WM) scan() {
	tops := wm.conn.QueryTree(wm.root)

	for _, w := range tops {
		override, mapped, _, _, _, _, _, ok := wm.conn.GetWindowAttributes(w)
		if !ok || override {
			continue
		}
		if _, hasTrans := wm.conn.GetTransientFor(w); hasTrans {
			continue
		}
		if mapped || wm.getState(w) == wmStateIconic {
			wm.manage(w)
		}
	}

	for _, w := range tops {
		override, mapped, _, _, _, _, _, ok := wm.conn.GetWindowAttributes(w)
		if !ok || override {
			continue
		}
		if _, hasTrans := wm.conn.GetTransientFor(w); !hasTrans {
			continue
		}
		if mapped || wm.getState(w) == wmStateIconic {
			wm.manage(w)
		}
	}
}
