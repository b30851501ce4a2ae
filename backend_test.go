// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// fakeBackend is a recording no-op implementation of the backend
// interface (x11.go), the substitute SPEC_FULL.md §10 calls for so
// the data-layer logic can run without a real X display.
type fakeBackend struct {
	configured    map[xproto.Window][4]int
	mapped        map[xproto.Window]bool
	raised        []xproto.Window
	borderPixels  map[xproto.Window]uint32
	focused       xproto.Window
	destroyed     []xproto.Window
	killed        []xproto.Window
	sentClientMsg []xproto.Window
	activeWindow  xproto.Window
	nextWindowID  xproto.Window
	protocols     map[xproto.Window]map[string]bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		configured:   make(map[xproto.Window][4]int),
		mapped:       make(map[xproto.Window]bool),
		borderPixels: make(map[xproto.Window]uint32),
		protocols:    make(map[xproto.Window]map[string]bool),
		nextWindowID: 1000,
	}
}

func (b *fakeBackend) ConfigureWindow(win xproto.Window, x, y, w, h, borderWidth int) error {
	b.configured[win] = [4]int{x, y, w, h}
	return nil
}
func (b *fakeBackend) SendConfigureNotify(win xproto.Window, x, y, w, h, borderWidth int) {}
func (b *fakeBackend) MoveResizeWindow(win xproto.Window, x, y, w, h int) {
	b.configured[win] = [4]int{x, y, w, h}
}
func (b *fakeBackend) MoveWindow(win xproto.Window, x, y int) {
	c := b.configured[win]
	c[0], c[1] = x, y
	b.configured[win] = c
}
func (b *fakeBackend) SetBorderWidth(win xproto.Window, width int) {}
func (b *fakeBackend) SetBorderPixel(win xproto.Window, pixel uint32) {
	b.borderPixels[win] = pixel
}
func (b *fakeBackend) RaiseWindow(win xproto.Window) { b.raised = append(b.raised, win) }
func (b *fakeBackend) MapWindow(win xproto.Window)   { b.mapped[win] = true }
func (b *fakeBackend) UnmapWindow(win xproto.Window) { b.mapped[win] = false }
func (b *fakeBackend) DestroyWindow(win xproto.Window) {
	b.destroyed = append(b.destroyed, win)
}
func (b *fakeBackend) SetInputFocus(win xproto.Window, t xproto.Timestamp) { b.focused = win }
func (b *fakeBackend) FocusRevertToRoot(root xproto.Window)                { b.focused = 0 }
func (b *fakeBackend) DeleteProperty(win xproto.Window, atom xproto.Atom)  {}
func (b *fakeBackend) StackBelow(win, sibling xproto.Window)               {}
func (b *fakeBackend) WarpPointer(win xproto.Window, x, y int)             {}
func (b *fakeBackend) RootPointer() (x, y int, ok bool)                    { return 0, 0, true }
func (b *fakeBackend) SendClientMessage(win xproto.Window, typ xproto.Atom, data [5]uint32) {
	b.sentClientMsg = append(b.sentClientMsg, win)
}
func (b *fakeBackend) SetActiveWindowProperty(root xproto.Window, active xproto.Window) {
	b.activeWindow = active
}
func (b *fakeBackend) SetWindowState(win xproto.Window, prop xproto.Atom, values []uint32) {}
func (b *fakeBackend) AppendClientListWindow(root xproto.Window, prop xproto.Atom, win xproto.Window) {
}
func (b *fakeBackend) ReplaceClientList(root xproto.Window, prop xproto.Atom, wins []xproto.Window) {
}
func (b *fakeBackend) ChangeClientState(win xproto.Window, prop, typ xproto.Atom, state uint32) {}
func (b *fakeBackend) SelectRootEventMask(root xproto.Window) error                             { return nil }
func (b *fakeBackend) SelectClientEventMask(win xproto.Window)                                  {}
func (b *fakeBackend) GetWindowAttributes(win xproto.Window) (override, mapped bool, x, y, w, h, borderWidth int, ok bool) {
	return false, true, 0, 0, 100, 100, 1, true
}
func (b *fakeBackend) QueryTree(root xproto.Window) []xproto.Window { return nil }
func (b *fakeBackend) GetTransientFor(win xproto.Window) (xproto.Window, bool) {
	return 0, false
}
func (b *fakeBackend) SetURgencyHint(win xproto.Window, urgent bool) {}
func (b *fakeBackend) SupportsProtocol(win xproto.Window, protoName string) bool {
	return b.protocols[win] != nil && b.protocols[win][protoName]
}
func (b *fakeBackend) KillClient(win xproto.Window)                                            { b.killed = append(b.killed, win) }
func (b *fakeBackend) GrabButton(win xproto.Window, button uint8, modifiers uint16, sync bool) {}
func (b *fakeBackend) AllowEventsReplayPointer()                                               {}
func (b *fakeBackend) UngrabButton(win xproto.Window)                                          {}
func (b *fakeBackend) GrabKey(root xproto.Window, code xproto.Keycode, modifiers uint16)       {}
func (b *fakeBackend) UngrabKey(root xproto.Window)                                            {}
func (b *fakeBackend) KeysymToKeycode(keysym uint32) xproto.Keycode                            { return 0 }
func (b *fakeBackend) NumlockMask() uint16                                                     { return 0 }
func (b *fakeBackend) GrabPointer(root xproto.Window, cursor xproto.Cursor) bool               { return true }
func (b *fakeBackend) UngrabPointer()                                                          {}
func (b *fakeBackend) SetRootCursor(root xproto.Window, cursor xproto.Cursor)                  {}
func (b *fakeBackend) Sync()                                                                   {}
func (b *fakeBackend) GrabServerForCriticalSection() func()                                    { return func() {} }
func (b *fakeBackend) DrainEnterNotify()                                                       {}
func (b *fakeBackend) WaitForEvent() (xgb.Event, xgb.Error)                                    { return nil, nil }
func (b *fakeBackend) CreateWindow(parent xproto.Window, x, y, w, h int) xproto.Window {
	b.nextWindowID++
	return b.nextWindowID
}
func (b *fakeBackend) CreateGC(win xproto.Window) xproto.Gcontext                              { return 1 }
func (b *fakeBackend) PutImage(win xproto.Window, gc xproto.Gcontext, w, h int, pixels []byte) {}
func (b *fakeBackend) DestroyGC(gc xproto.Gcontext)                                            {}

// newTestWM builds a *WM wired to a fakeBackend with a single monitor
// sized to screen's w/h and a default tag/layout configuration,
// leaving every bar-window field zero so drawBar's early-return path
// is taken (no font drawer needed for these tests).
func newTestWM(w, h int) (*WM, *fakeBackend) {
	cfg := defaultConfig()
	// grabButtons (keys.go) resolves every "clientwin" ButtonBinding
	// through mousebind.ParseString(wm.xu, ...); wm.xu is never set up
	// for these data-layer tests (no real display), so the binding
	// table is emptied here to keep focus()/manage()-adjacent paths
	// from reaching it.
	cfg.Buttons = nil
	fb := newFakeBackend()
	wm := newWM(&cfg)
	wm.conn = fb
	wm.screenW, wm.screenH = w, h

	m := newMonitor(&cfg)
	m.mx, m.my, m.mw, m.mh = 0, 0, w, h
	m.wx, m.wy, m.ww, m.wh = 0, 0, w, h
	m.showBar = false

	wm.mons = m
	wm.selmon = m
	return wm, fb
}

// newTestClient builds a Client attached to m with a fixed geometry
// and no size-hint constraints (as if updateSizeHints never ran).
func newTestClient(wm *WM, m *Monitor, win xproto.Window, tags uint32) *Client {
	c := &Client{
		window:      win,
		x:           m.wx,
		y:           m.wy,
		w:           100,
		h:           100,
		borderWidth: wm.cfg.BorderPx,
		mon:         m,
		tags:        tags,
	}
	wm.clients[win] = c
	wm.attach(c)
	wm.attachStack(c)
	return c
}
