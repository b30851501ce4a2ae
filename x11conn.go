// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
)

// xUrgencyHint is ICCCM's WM_HINTS.flags bit for "this window wants
// the user's attention" (XUrgencyHint in Xutil.h).
const xUrgencyHint = 1 << 8

// keysymNumLock is the X keysym for the Num Lock key (XK_Num_Lock).
const keysymNumLock = 0xff7f

// xgbBackend is the production backend: every method is a thin
// wrapper around an xgb/xproto request, grounded on marwind
// wm/wm.go's direct xproto usage rather than xgbutil's higher-level
// (and heavier) xgraphics/xwindow helpers, since the spec calls for
// exact control over individual requests (synthetic ConfigureNotify,
// stacking order, and so on).
type xgbBackend struct {
	xu     *xgbutil.XUtil
	conn   *xgb.Conn
	root   xproto.Window
	screen *xproto.ScreenInfo
}

func newXgbBackend(xu *xgbutil.XUtil) *xgbBackend {
	return &xgbBackend{xu: xu, conn: xu.Conn(), root: xu.RootWin(), screen: xu.Screen()}
}

func (b *xgbBackend) ConfigureWindow(win xproto.Window, x, y, w, h, borderWidth int) error {
	return xproto.ConfigureWindowChecked(b.conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|
			xproto.ConfigWindowHeight|xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(x), uint32(y), uint32(w), uint32(h), uint32(borderWidth)},
	).Check()
}

func (b *xgbBackend) SendConfigureNotify(win xproto.Window, x, y, w, h, borderWidth int) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            win,
		Window:           win,
		AboveSibling:     0,
		X:                int16(x),
		Y:                int16(y),
		Width:            uint16(w),
		Height:           uint16(h),
		BorderWidth:      uint16(borderWidth),
		OverrideRedirect: false,
	}
	if err := xproto.SendEventChecked(b.conn, false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check(); err != nil {
		log.Printf("synthetic ConfigureNotify failed: %v\n", err)
	}
}

func (b *xgbBackend) MoveResizeWindow(win xproto.Window, x, y, w, h int) {
	if err := xproto.ConfigureWindowChecked(b.conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(x), uint32(y), uint32(w), uint32(h)},
	).Check(); err != nil {
		log.Printf("move-resize failed: %v\n", err)
	}
}

func (b *xgbBackend) MoveWindow(win xproto.Window, x, y int) {
	if err := xproto.ConfigureWindowChecked(b.conn, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)},
	).Check(); err != nil {
		log.Printf("move failed: %v\n", err)
	}
}

func (b *xgbBackend) SetBorderWidth(win xproto.Window, width int) {
	if err := xproto.ConfigureWindowChecked(b.conn, win,
		xproto.ConfigWindowBorderWidth, []uint32{uint32(width)},
	).Check(); err != nil {
		log.Printf("set border width failed: %v\n", err)
	}
}

func (b *xgbBackend) SetBorderPixel(win xproto.Window, pixel uint32) {
	if err := xproto.ChangeWindowAttributesChecked(b.conn, win,
		xproto.CwBorderPixel, []uint32{pixel},
	).Check(); err != nil {
		log.Printf("set border pixel failed: %v\n", err)
	}
}

func (b *xgbBackend) RaiseWindow(win xproto.Window) {
	if err := xproto.ConfigureWindowChecked(b.conn, win,
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove},
	).Check(); err != nil {
		log.Printf("raise failed: %v\n", err)
	}
}

func (b *xgbBackend) MapWindow(win xproto.Window) {
	if err := xproto.MapWindowChecked(b.conn, win).Check(); err != nil {
		log.Printf("map failed: %v\n", err)
	}
}

func (b *xgbBackend) UnmapWindow(win xproto.Window) {
	if err := xproto.UnmapWindowChecked(b.conn, win).Check(); err != nil {
		log.Printf("unmap failed: %v\n", err)
	}
}

func (b *xgbBackend) DestroyWindow(win xproto.Window) {
	if err := xproto.DestroyWindowChecked(b.conn, win).Check(); err != nil {
		log.Printf("destroy failed: %v\n", err)
	}
}

func (b *xgbBackend) SetInputFocus(win xproto.Window, t xproto.Timestamp) {
	if err := xproto.SetInputFocusChecked(b.conn, xproto.InputFocusPointerRoot, win, t).Check(); err != nil {
		log.Printf("set input focus failed: %v\n", err)
	}
}

func (b *xgbBackend) FocusRevertToRoot(root xproto.Window) {
	if err := xproto.SetInputFocusChecked(b.conn, xproto.InputFocusPointerRoot, root, xproto.TimeCurrentTime).Check(); err != nil {
		log.Printf("revert focus to root failed: %v\n", err)
	}
}

func (b *xgbBackend) DeleteProperty(win xproto.Window, atom xproto.Atom) {
	if err := xproto.DeletePropertyChecked(b.conn, win, atom).Check(); err != nil {
		log.Printf("delete property failed: %v\n", err)
	}
}

func (b *xgbBackend) StackBelow(win, sibling xproto.Window) {
	if err := xproto.ConfigureWindowChecked(b.conn, win,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeBelow},
	).Check(); err != nil {
		log.Printf("restack failed: %v\n", err)
	}
}

func (b *xgbBackend) WarpPointer(win xproto.Window, x, y int) {
	if err := xproto.WarpPointerChecked(b.conn, xproto.WindowNone, win, 0, 0, 0, 0, int16(x), int16(y)).Check(); err != nil {
		log.Printf("warp pointer failed: %v\n", err)
	}
}

func (b *xgbBackend) RootPointer() (int, int, bool) {
	reply, err := xproto.QueryPointer(b.conn, b.root).Reply()
	if err != nil || reply == nil {
		return 0, 0, false
	}
	return int(reply.RootX), int(reply.RootY), true
}

func (b *xgbBackend) SendClientMessage(win xproto.Window, typ xproto.Atom, data [5]uint32) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New(data[:]),
	}
	if err := xproto.SendEventChecked(b.conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check(); err != nil {
		log.Printf("send client message failed: %v\n", err)
	}
}

// SetActiveWindowProperty publishes _NET_ACTIVE_WINDOW on the root
// window (dwm.c setfocus's XChangeProperty call).
func (b *xgbBackend) SetActiveWindowProperty(root, active xproto.Window) {
	if err := xprop.ChangeProp32(b.xu, root, "_NET_ACTIVE_WINDOW", "WINDOW", uint(active)); err != nil {
		log.Printf("set active window failed: %v\n", err)
	}
}

// SetWindowState overwrites an atom-list property (_NET_WM_STATE) on
// win; an empty values clears it to the empty list (dwm.c
// setfullscreen's XChangeProperty calls).
func (b *xgbBackend) SetWindowState(win xproto.Window, prop xproto.Atom, values []uint32) {
	data := make([]byte, len(values)*4)
	for i, v := range values {
		xgb.Put32(data[i*4:], v)
	}
	if err := xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, win, prop,
		xproto.AtomAtom, 32, uint32(len(values)), data).Check(); err != nil {
		log.Printf("set window state failed: %v\n", err)
	}
}

// AppendClientListWindow appends one window id to _NET_CLIENT_LIST
// (dwm.c manage's PropModeAppend XChangeProperty call).
func (b *xgbBackend) AppendClientListWindow(root xproto.Window, prop xproto.Atom, win xproto.Window) {
	data := make([]byte, 4)
	xgb.Put32(data, uint32(win))
	if err := xproto.ChangePropertyChecked(b.conn, xproto.PropModeAppend, root, prop,
		xproto.AtomWindow, 32, 1, data).Check(); err != nil {
		log.Printf("append client list failed: %v\n", err)
	}
}

// ReplaceClientList rebuilds _NET_CLIENT_LIST from scratch (dwm.c
// updateclientlist: delete then re-append every managed window).
func (b *xgbBackend) ReplaceClientList(root xproto.Window, prop xproto.Atom, wins []xproto.Window) {
	if err := xproto.DeletePropertyChecked(b.conn, root, prop).Check(); err != nil {
		log.Printf("delete client list failed: %v\n", err)
	}
	for _, w := range wins {
		b.AppendClientListWindow(root, prop, w)
	}
}

// ChangeClientState sets WM_STATE's (state, icon) pair (dwm.c
// setclientstate).
func (b *xgbBackend) ChangeClientState(win xproto.Window, prop, typ xproto.Atom, state uint32) {
	data := make([]byte, 8)
	xgb.Put32(data[0:], state)
	xgb.Put32(data[4:], 0)
	if err := xproto.ChangePropertyChecked(b.conn, xproto.PropModeReplace, win, prop,
		typ, 32, 2, data).Check(); err != nil {
		log.Printf("set client state failed: %v\n", err)
	}
}

// SelectRootEventMask subscribes to the root window's substructure
// events; failure (another window manager already holds them) is the
// signal becomeWM uses to refuse to start (dwm.c checkotherwm).
func (b *xgbBackend) SelectRootEventMask(root xproto.Window) error {
	mask := xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
		xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion |
		xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
		xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange
	return xproto.ChangeWindowAttributesChecked(b.conn, root, xproto.CwEventMask, []uint32{uint32(mask)}).Check()
}

// SelectClientEventMask subscribes to the per-client events manage()
// needs (dwm.c manage's XSelectInput call).
func (b *xgbBackend) SelectClientEventMask(win xproto.Window) {
	mask := xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
		xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.ChangeWindowAttributesChecked(b.conn, win, xproto.CwEventMask, []uint32{uint32(mask)}).Check(); err != nil {
		log.Printf("select client input failed: %v\n", err)
	}
}

// GetWindowAttributes reads a window's current geometry and
// override-redirect flag (dwm.c manage/scan's XGetWindowAttributes).
func (b *xgbBackend) GetWindowAttributes(win xproto.Window) (override, mapped bool, x, y, w, h, borderWidth int, ok bool) {
	reply, err := xproto.GetGeometry(b.conn, xproto.Drawable(win)).Reply()
	if err != nil || reply == nil {
		return false, false, 0, 0, 0, 0, 0, false
	}
	attrs, err := xproto.GetWindowAttributes(b.conn, win).Reply()
	if err != nil || attrs == nil {
		return false, false, 0, 0, 0, 0, 0, false
	}
	return attrs.OverrideRedirect, attrs.MapState == xproto.MapStateViewable,
		int(reply.X), int(reply.Y), int(reply.Width), int(reply.Height), int(reply.BorderWidth), true
}

// QueryTree lists root's children, the startup-scan candidate set
// (dwm.c scan's XQueryTree call).
func (b *xgbBackend) QueryTree(root xproto.Window) []xproto.Window {
	reply, err := xproto.QueryTree(b.conn, root).Reply()
	if err != nil || reply == nil {
		return nil
	}
	return reply.Children
}

// GetTransientFor reads WM_TRANSIENT_FOR (dwm.c manage's
// XGetTransientForHint).
func (b *xgbBackend) GetTransientFor(win xproto.Window) (xproto.Window, bool) {
	reply, err := xproto.GetProperty(b.conn, false, win, xproto.AtomWmTransientFor,
		xproto.AtomWindow, 0, 1).Reply()
	if err != nil || reply == nil || len(reply.Value) < 4 {
		return 0, false
	}
	return xproto.Window(xgb.Get32(reply.Value)), true
}

// SetURgencyHint flips WM_HINTS' urgency bit, preserving every other
// field (dwm.c seturgent).
func (b *xgbBackend) SetURgencyHint(win xproto.Window, urgent bool) {
	hints, err := icccm.WmHintsGet(b.xu, win)
	if err != nil {
		return
	}
	if urgent {
		hints.Flags |= xUrgencyHint
	} else {
		hints.Flags &^= xUrgencyHint
	}
	if err := icccm.WmHintsSet(b.xu, win, hints); err != nil {
		log.Printf("set urgency hint failed: %v\n", err)
	}
}

// SupportsProtocol reports whether win's WM_PROTOCOLS property
// advertises protoName (dwm.c sendevent's advertised-protocol scan).
func (b *xgbBackend) SupportsProtocol(win xproto.Window, protoName string) bool {
	supported, err := icccm.WmProtocolsGet(b.xu, win)
	if err != nil {
		return false
	}
	for _, name := range supported {
		if name == protoName {
			return true
		}
	}
	return false
}

// KillClient forces the destruction of an unresponsive window under a
// server grab (dwm.c kill_selected_client's fallback path, used when
// sendProtocolEvent reports the client does not honor WM_DELETE_WINDOW).
func (b *xgbBackend) KillClient(win xproto.Window) {
	close := b.GrabServerForCriticalSection()
	defer close()
	if err := xproto.KillClientChecked(b.conn, uint32(win)).Check(); err != nil {
		log.Printf("kill client failed: %v\n", err)
	}
}

const buttonMask = xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease

// GrabButton grabs one button/modifier combination on win. sync
// installs a synchronous pointer grab (dwm.c grabbuttons' unfocused
// catch-all: the server freezes pointer event delivery until
// AllowEventsReplayPointer lets the click through, so the click that
// focuses an unfocused client is replayed to it rather than
// swallowed). Configured click bindings keep the async grab so
// press/motion/release keep flowing while the grab is active.
func (b *xgbBackend) GrabButton(win xproto.Window, button uint8, modifiers uint16, sync bool) {
	pointerMode := byte(xproto.GrabModeAsync)
	if sync {
		pointerMode = xproto.GrabModeSync
	}
	xproto.GrabButton(b.conn, false, win, buttonMask,
		pointerMode, xproto.GrabModeSync,
		xproto.WindowNone, xproto.CursorNone, button, modifiers)
}

// AllowEventsReplayPointer releases a frozen synchronous pointer grab
// by replaying the triggering event to whatever window the pointer is
// over (dwm.c buttonpress's XAllowEvents(dpy, ReplayPointer,
// CurrentTime) call, run right after the click has been used to focus
// the client).
func (b *xgbBackend) AllowEventsReplayPointer() {
	if err := xproto.AllowEventsChecked(b.conn, xproto.AllowReplayPointer, xproto.TimeCurrentTime).Check(); err != nil {
		log.Printf("allow events (replay pointer) failed: %v\n", err)
	}
}

// UngrabButton releases every button grab previously installed on win
// (dwm.c grabbuttons' leading XUngrabButton(..., AnyButton, AnyModifier, ...)).
func (b *xgbBackend) UngrabButton(win xproto.Window) {
	xproto.UngrabButton(b.conn, xproto.ButtonIndexAny, win, xproto.ModMaskAny)
}

// GrabKey grabs one keycode/modifier combination on root (dwm.c
// grabkeys' inner XGrabKey call).
func (b *xgbBackend) GrabKey(root xproto.Window, code xproto.Keycode, modifiers uint16) {
	xproto.GrabKey(b.conn, true, root, modifiers, code, xproto.GrabModeAsync, xproto.GrabModeAsync)
}

// UngrabKey releases every key grab on root (dwm.c grabkeys' leading
// XUngrabKey(..., AnyKey, AnyModifier, root_window)).
func (b *xgbBackend) UngrabKey(root xproto.Window) {
	xproto.UngrabKey(b.conn, xproto.KeyAny, root, xproto.ModMaskAny)
}

// keycodeForKeysym scans the keyboard mapping table for the keycode
// bound to keysym (dwm.c's XKeysymToKeycode, reimplemented over raw
// xproto since xgb has no Xlib keysym table of its own).
func (b *xgbBackend) keycodeForKeysym(keysym uint32) xproto.Keycode {
	setup := xproto.Setup(b.conn)
	count := byte(setup.MaxKeycode-setup.MinKeycode) + 1
	reply, err := xproto.GetKeyboardMapping(b.conn, setup.MinKeycode, count).Reply()
	if err != nil || reply == nil || reply.KeysymsPerKeycode == 0 {
		return 0
	}
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i < int(count); i++ {
		for j := 0; j < per; j++ {
			if uint32(reply.Keysyms[i*per+j]) == keysym {
				return xproto.Keycode(int(setup.MinKeycode) + i)
			}
		}
	}
	return 0
}

func (b *xgbBackend) KeysymToKeycode(keysym uint32) xproto.Keycode {
	return b.keycodeForKeysym(keysym)
}

// NumlockMask discovers which modifier bit the server has bound Num
// Lock to, so grabs can be duplicated across it (dwm.c
// updatenumlockmask).
func (b *xgbBackend) NumlockMask() uint16 {
	code := b.keycodeForKeysym(keysymNumLock)
	if code == 0 {
		return 0
	}
	reply, err := xproto.GetModifierMapping(b.conn).Reply()
	if err != nil || reply == nil {
		return 0
	}
	per := int(reply.KeycodesPerModifier)
	for i := 0; i < 8; i++ {
		for j := 0; j < per; j++ {
			if reply.Keycodes[i*per+j] == code {
				return uint16(1 << uint(i))
			}
		}
	}
	return 0
}

// GrabPointer actively grabs the pointer for the duration of an
// interactive move/resize (dwm.c movemouse/resizemouse's XGrabPointer
// call).
func (b *xgbBackend) GrabPointer(root xproto.Window, cursor xproto.Cursor) bool {
	reply, err := xproto.GrabPointer(b.conn, false, root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, cursor, xproto.TimeCurrentTime).Reply()
	return err == nil && reply != nil && reply.Status == xproto.GrabStatusSuccess
}

// SetRootCursor installs the default pointer cursor for the root
// window (dwm.c setup's `wa.cursor = cursor[CurNormal]->cursor`
// passed to XChangeWindowAttributes); without it the root keeps
// whatever cursor the X server defaults to.
func (b *xgbBackend) SetRootCursor(root xproto.Window, cursor xproto.Cursor) {
	if err := xproto.ChangeWindowAttributesChecked(b.conn, root,
		xproto.CwCursor, []uint32{uint32(cursor)}).Check(); err != nil {
		log.Printf("set root cursor failed: %v\n", err)
	}
}

func (b *xgbBackend) UngrabPointer() {
	if err := xproto.UngrabPointerChecked(b.conn, xproto.TimeCurrentTime).Check(); err != nil {
		log.Printf("ungrab pointer failed: %v\n", err)
	}
}

func (b *xgbBackend) Sync() {
	xproto.GetInputFocus(b.conn).Reply() //nolint:errcheck // round trip only
}

// GrabServerForCriticalSection realizes spec.md §5's server-grab
// discipline: grab the server and return a closer that syncs and
// releases the grab. No error handler is swapped in; each checked
// request made under the grab logs its own error instead of failing.
// KillClient defers the closer; unmanage calls it after its last
// request.
func (b *xgbBackend) GrabServerForCriticalSection() func() {
	if err := xproto.GrabServerChecked(b.conn).Check(); err != nil {
		log.Printf("grab server failed: %v\n", err)
	}
	return func() {
		b.Sync()
		if err := xproto.UngrabServerChecked(b.conn).Check(); err != nil {
			log.Printf("ungrab server failed: %v\n", err)
		}
	}
}

// DrainEnterNotify discards pending EnterNotify events after a
// restack so the resulting pointer-in-window crossings don't trigger
// an unwanted sloppy-focus change (dwm.c restack's trailing
// XCheckMaskEvent drain loop).
func (b *xgbBackend) DrainEnterNotify() {
	for {
		ev, err := b.conn.PollForEvent()
		if err != nil || ev == nil {
			return
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); !ok {
			// Not an EnterNotify: there is no general "push back" in
			// xgb, so re-dispatching would require a queue. In
			// practice the only events generated by a restack's
			// ConfigureWindow calls are EnterNotify crossings, so
			// this is safe; anything else is logged and dropped.
			log.Printf("DrainEnterNotify: dropped non-EnterNotify event %T\n", ev)
		}
	}
}

// WaitForEvent blocks for the next X event, the single primitive the
// main event loop and the interactive move/resize modal loop both
// read from (dwm.c's shared use of XMaskEvent/XNextEvent against the
// same connection).
func (b *xgbBackend) WaitForEvent() (xgb.Event, xgb.Error) {
	return b.conn.WaitForEvent()
}

// CreateWindow creates an override-redirect, ParentRelative-background
// InputOutput window the size and position given — used for the bar
// windows (dwm.c updatebars's XCreateWindow call).
func (b *xgbBackend) CreateWindow(parent xproto.Window, x, y, w, h int) xproto.Window {
	win, err := xproto.NewWindowId(b.conn)
	if err != nil {
		log.Printf("NewWindowId failed: %v\n", err)
		return 0
	}
	mask := uint32(xproto.CwOverrideRedirect | xproto.CwBackPixmap | xproto.CwEventMask)
	values := []uint32{
		1, // override-redirect
		uint32(xproto.BackPixmapParentRelative),
		uint32(xproto.EventMaskButtonPress | xproto.EventMaskExposure),
	}
	err = xproto.CreateWindowChecked(b.conn, b.screen.RootDepth, win, parent,
		int16(x), int16(y), uint16(w), uint16(h), 0,
		xproto.WindowClassInputOutput, b.screen.RootVisual, mask, values).Check()
	if err != nil {
		log.Printf("create bar window failed: %v\n", err)
		return 0
	}
	return win
}

// CreateGC allocates the graphics context PutImage needs to blit the
// bar canvas (dwm.c drw_create's XCreateGC).
func (b *xgbBackend) CreateGC(win xproto.Window) xproto.Gcontext {
	gc, err := xproto.NewGcontextId(b.conn)
	if err != nil {
		log.Printf("NewGcontextId failed: %v\n", err)
		return 0
	}
	if err := xproto.CreateGCChecked(b.conn, gc, xproto.Drawable(win), 0, nil).Check(); err != nil {
		log.Printf("create GC failed: %v\n", err)
	}
	return gc
}

func (b *xgbBackend) DestroyGC(gc xproto.Gcontext) {
	if err := xproto.FreeGCChecked(b.conn, gc).Check(); err != nil {
		log.Printf("free GC failed: %v\n", err)
	}
}

// PutImage blits a w*h BGRX32 pixel buffer onto win, the bar's
// "present the rendered frame" step (dwm.c drw_map's XCopyArea from
// the off-screen Pixmap; here the source is a plain Go image instead
// of an Xlib Pixmap since nothing in this fork draws through Xft).
func (b *xgbBackend) PutImage(win xproto.Window, gc xproto.Gcontext, w, h int, pixels []byte) {
	err := xproto.PutImageChecked(b.conn, xproto.ImageFormatZPixmap, xproto.Drawable(win), gc,
		uint16(w), uint16(h), 0, 0, 0, b.screen.RootDepth, pixels).Check()
	if err != nil {
		log.Printf("put image failed: %v\n", err)
	}
}
