// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/mousebind"
)

// run is the single-threaded cooperative event loop: block for the
// next X event, dispatch it by concrete type, repeat until a "quit"
// binding clears wm.running (dwm.c's run(), whose `handler[ev.type]`
// table this type switch replaces one-for-one).
func (wm *WM) run() {
	for wm.running {
		ev, err := wm.conn.WaitForEvent()
		if err != nil {
			continue
		}
		switch e := ev.(type) {
		case xproto.ButtonPressEvent:
			wm.handleButtonPress(e)
		case xproto.ClientMessageEvent:
			wm.handleClientMessage(e)
		case xproto.ConfigureRequestEvent:
			wm.handleConfigureRequest(e)
		case xproto.ConfigureNotifyEvent:
			wm.handleConfigureNotify(e)
		case xproto.DestroyNotifyEvent:
			wm.handleDestroyNotify(e)
		case xproto.EnterNotifyEvent:
			wm.handleEnterNotify(e)
		case xproto.ExposeEvent:
			wm.handleExpose(e)
		case xproto.FocusInEvent:
			wm.handleFocusIn(e)
		case xproto.KeyPressEvent:
			wm.keyPress(e.Detail, e.State)
		case xproto.MappingNotifyEvent:
			wm.handleMappingNotify(e)
		case xproto.MapRequestEvent:
			wm.handleMapRequest(e)
		case xproto.MotionNotifyEvent:
			wm.handleMotionNotify(e)
		case xproto.PropertyNotifyEvent:
			wm.handlePropertyNotify(e)
		case xproto.UnmapNotifyEvent:
			wm.handleUnmapNotify(e)
		}
	}
}

// handleButtonPress classifies the click (bar region, client window,
// or root) and runs every matching button binding (dwm.c buttonpress).
func (wm *WM) handleButtonPress(e xproto.ButtonPressEvent) {
	if m := wm.windowToMonitor(e.Event); m != nil && m != wm.selmon {
		wm.unfocus(wm.selmon.selected, true)
		wm.selmon = m
		wm.focus(nil)
	}

	click := "root"
	var tagArg int32
	var target *Client

	switch {
	case wm.selmon.barWindow != 0 && e.Event == wm.selmon.barWindow:
		click, tagArg = wm.barClick(wm.selmon, int(e.EventX))
	default:
		if c := wm.windowToClient(e.Event); c != nil {
			target = c
			wm.focus(c)
			wm.restack(wm.selmon)
			wm.conn.AllowEventsReplayPointer()
			click = "clientwin"
		}
	}

	if click == "tagbar" {
		wm.buttonPressWithTagArg(tagArg, e.Detail, e.State)
		return
	}
	wm.buttonPress(click, e.Detail, e.State, target)
}

// buttonPressWithTagArg is "tagbar"'s special case in dwm.c
// buttonpress: a binding whose configured Arg is 0 receives the
// clicked tag's index instead of its own Arg.
func (wm *WM) buttonPressWithTagArg(tagIdx int32, button uint8, state uint16) {
	clean := wm.cleanMask(state)
	for _, bb := range wm.cfg.Buttons {
		if bb.Click != "tagbar" || bb.Button != button {
			continue
		}
		mods, _, err := mousebind.ParseString(wm.xu, buttonSpec(modString(bb.Mod), bb.Button))
		if err != nil || wm.cleanMask(mods) != clean {
			continue
		}
		arg := bb.Arg
		if arg == 0 {
			arg = tagIdx
		}
		dispatch(wm, bb.Action, arg, nil)
		return
	}
}

// handleClientMessage honors _NET_WM_STATE fullscreen toggles and
// _NET_ACTIVE_WINDOW urgency requests from other clients (dwm.c
// clientmessage).
func (wm *WM) handleClientMessage(e xproto.ClientMessageEvent) {
	c := wm.windowToClient(e.Window)
	if c == nil {
		return
	}
	data := e.Data.Data32()

	switch e.Type {
	case wm.atoms.NetWMState:
		if len(data) >= 3 && (xproto.Atom(data[1]) == wm.atoms.NetWMStateFullscreen ||
			xproto.Atom(data[2]) == wm.atoms.NetWMStateFullscreen) {
			add := data[0] == 1
			toggle := data[0] == 2 && !c.fullscreen
			wm.setFullscreen(c, add || toggle)
		}
	case wm.atoms.NetActiveWindow:
		if c != wm.selmon.selected && !c.urgent {
			wm.setUrgent(c, true)
		}
	}
}

// handleConfigureRequest honors or overrides an unmanaged/floating
// window's requested geometry, or simply forwards the request
// unchanged for a window wm does not yet track (dwm.c
// configurerequest).
func (wm *WM) handleConfigureRequest(e xproto.ConfigureRequestEvent) {
	c := wm.windowToClient(e.Window)
	if c == nil {
		wm.conn.ConfigureWindow(e.Window, int(e.X), int(e.Y), int(e.Width), int(e.Height), int(e.BorderWidth))
		return
	}

	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		c.borderWidth = int(e.BorderWidth)
		return
	}

	if !c.floating && c.mon.current().Arrange != nil {
		wm.configureClient(c)
		return
	}

	m := c.mon
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		c.oldx = c.x
		c.x = m.mx + int(e.X)
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		c.oldy = c.y
		c.y = m.my + int(e.Y)
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		c.oldw = c.w
		c.w = int(e.Width)
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		c.oldh = c.h
		c.h = int(e.Height)
	}
	if c.x+c.w > m.mx+m.mw && c.floating {
		c.x = m.mx + (m.mw/2 - c.width()/2)
	}
	if c.y+c.h > m.my+m.mh && c.floating {
		c.y = m.my + (m.mh/2 - c.height()/2)
	}

	onlyMove := e.ValueMask&(xproto.ConfigWindowX|xproto.ConfigWindowY) != 0 &&
		e.ValueMask&(xproto.ConfigWindowWidth|xproto.ConfigWindowHeight) == 0
	if onlyMove {
		wm.configureClient(c)
	}
	if c.visible() {
		wm.conn.MoveResizeWindow(c.window, c.x, c.y, c.w, c.h)
	}
}

// handleConfigureNotify reacts to a root-window resize: re-derive the
// monitor layout, resize the bars, re-fit any fullscreen client to its
// monitor, and re-arrange (dwm.c configurenotify).
func (wm *WM) handleConfigureNotify(e xproto.ConfigureNotifyEvent) {
	if e.Window != wm.root {
		return
	}
	wm.screenW, wm.screenH = int(e.Width), int(e.Height)
	if !wm.updateGeom() {
		return
	}
	wm.updateBars()
	for m := wm.mons; m != nil; m = m.next {
		for c := m.clients; c != nil; c = c.next {
			if c.fullscreen {
				wm.resizeClient(c, m.mx, m.my, m.mw, m.mh)
			}
		}
		wm.conn.MoveResizeWindow(m.barWindow, m.wx, m.by, m.ww, wm.barHeight)
	}
	wm.focus(nil)
	wm.arrange(nil)
}

// handleDestroyNotify stops managing a client whose window is gone
// (dwm.c destroynotify).
func (wm *WM) handleDestroyNotify(e xproto.DestroyNotifyEvent) {
	if c := wm.windowToClient(e.Window); c != nil {
		wm.unmanage(c, true)
	}
}

// handleEnterNotify follows real pointer crossings (as opposed to
// ones synthesized by a restack) to update focus (dwm.c enternotify).
func (wm *WM) handleEnterNotify(e xproto.EnterNotifyEvent) {
	if (e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior) && e.Event != wm.root {
		return
	}
	c := wm.windowToClient(e.Event)
	m := wm.selmon
	if c != nil {
		m = c.mon
	} else {
		m = wm.windowToMonitor(e.Event)
	}
	if m != wm.selmon {
		wm.unfocus(wm.selmon.selected, true)
		wm.selmon = m
	} else if c == nil || c == wm.selmon.selected {
		return
	}
	wm.focus(c)
}

// handleExpose redraws a monitor's bar after an expose with no more
// exposures queued behind it (dwm.c expose).
func (wm *WM) handleExpose(e xproto.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	if m := wm.windowToMonitor(e.Window); m != nil {
		wm.drawBar(m)
	}
}

// handleFocusIn steals focus back for the selected client when some
// other, broken client manages to acquire it (dwm.c focusin).
func (wm *WM) handleFocusIn(e xproto.FocusInEvent) {
	if sel := wm.selmon.selected; sel != nil && e.Event != sel.window {
		wm.setFocus(sel)
	}
}

// handleMappingNotify re-reads the keyboard mapping and regrabs keys
// whenever it changes (dwm.c mappingnotify).
func (wm *WM) handleMappingNotify(e xproto.MappingNotifyEvent) {
	if e.Request == xproto.MappingKeyboard {
		wm.grabKeys()
	}
}

// handleMapRequest manages a newly mapped window the first time it is
// seen, ignoring override-redirect windows (dwm.c maprequest).
func (wm *WM) handleMapRequest(e xproto.MapRequestEvent) {
	override, _, _, _, _, _, _, ok := wm.conn.GetWindowAttributes(e.Window)
	if !ok || override {
		return
	}
	if wm.windowToClient(e.Window) == nil {
		wm.manage(e.Window)
	}
}

// handleMotionNotify follows the pointer across monitor boundaries on
// the root window (dwm.c motionnotify's static `mon` tracker,
// represented here as a WM field since there is no function-static
// storage in Go).
func (wm *WM) handleMotionNotify(e xproto.MotionNotifyEvent) {
	if e.Event != wm.root {
		return
	}
	m := recttomon(wm.mons, wm.selmon, int(e.RootX), int(e.RootY), 1, 1)
	if m != wm.lastMotionMon && wm.lastMotionMon != nil {
		wm.unfocus(wm.selmon.selected, true)
		wm.selmon = m
		wm.focus(nil)
	}
	wm.lastMotionMon = m
}

// handlePropertyNotify reacts to property changes a client (or the
// root window) announces: status text, transient-for promotion to
// floating, size/urgency hints, title and window-type updates (dwm.c
// propertynotify).
func (wm *WM) handlePropertyNotify(e xproto.PropertyNotifyEvent) {
	if e.Window == wm.root && e.Atom == xproto.AtomWmName {
		wm.updateStatus()
		return
	}
	if e.State == xproto.PropertyDelete {
		return
	}
	c := wm.windowToClient(e.Window)
	if c == nil {
		return
	}

	switch e.Atom {
	case xproto.AtomWmTransientFor:
		if !c.floating {
			if trans, ok := wm.conn.GetTransientFor(e.Window); ok {
				if wm.windowToClient(trans) != nil {
					c.floating = true
					wm.arrange(c.mon)
				}
			}
		}
	case xproto.AtomWmNormalHints:
		wm.updateSizeHints(c)
	case xproto.AtomWmHints:
		wm.updateWMHints(c)
		wm.drawBars()
	}

	if e.Atom == xproto.AtomWmName || e.Atom == wm.atoms.NetWMName {
		wm.updateTitle(c)
		if c == c.mon.selected {
			wm.drawBar(c.mon)
		}
	}
	if e.Atom == wm.atoms.NetWMWindowType {
		wm.updateWindowType(c)
	}
}

// handleUnmapNotify stops managing c (dwm.c unmapnotify). dwm.c
// additionally distinguishes a synthetic UnmapNotify (sent by a
// pager/withdraw sequence) and only marks the client withdrawn in
// that case; xgb's decoded event structs don't surface the
// synthetic-event bit the core protocol header carries, so that
// distinction is not representable here and every unmap is treated as
// real.
func (wm *WM) handleUnmapNotify(e xproto.UnmapNotifyEvent) {
	if c := wm.windowToClient(e.Window); c != nil {
		wm.unmanage(c, false)
	}
}
