// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
)

// cleanMask strips the lock modifiers (Num Lock, Caps Lock) a grabbed
// state can carry so a binding's modifier spec compares equal
// regardless of whether either lock happens to be on (dwm.c's
// CLEANMASK macro).
func (wm *WM) cleanMask(mask uint16) uint16 {
	return mask &^ (wm.numlockMask | xproto.ModMaskLock)
}

// lockModifierCombos is the four-way duplication dwm.c's grabbuttons/
// grabkeys apply to every grab, so a binding still fires with either
// lock key toggled on or off.
func (wm *WM) lockModifierCombos() [4]uint16 {
	return [4]uint16{0, xproto.ModMaskLock, wm.numlockMask, wm.numlockMask | xproto.ModMaskLock}
}

// modString turns a KeyBinding/ButtonBinding's pipe-separated Mod
// field ("Mod1|Shift") into the hyphenated form keybind.ParseString /
// mousebind.ParseString expect ("Mod1-Shift").
func modString(mod string) string {
	if mod == "" {
		return ""
	}
	return strings.Join(strings.Split(mod, "|"), "-")
}

// updateNumlockMask discovers which modifier bit Num Lock is bound to
// (dwm.c updatenumlockmask), called before every grab/ungrab pass
// since the binding can change at runtime (e.g. after a keyboard
// remap).
func (wm *WM) updateNumlockMask() {
	wm.numlockMask = wm.conn.NumlockMask()
}

// grabKeys (re)installs every configured key grab on the root window
// (dwm.c grabkeys).
func (wm *WM) grabKeys() {
	wm.updateNumlockMask()
	wm.conn.UngrabKey(wm.root)

	for _, kb := range wm.cfg.Keys {
		spec := kb.Key
		if m := modString(kb.Mod); m != "" {
			spec = m + "-" + kb.Key
		}
		mods, keycode, err := keybind.ParseString(wm.xu, spec)
		if err != nil {
			continue
		}
		for _, lock := range wm.lockModifierCombos() {
			wm.conn.GrabKey(wm.root, keycode, mods|lock)
		}
	}
}

// grabButtons (re)installs c's button grabs: a catch-all passive grab
// when c is not focused (so any click focuses it first, dwm.c's
// `XGrabButton(..., AnyButton, AnyModifier, ...)`), plus every
// configured "clientwin" click binding (dwm.c grabbuttons).
func (wm *WM) grabButtons(c *Client, focused bool) {
	wm.updateNumlockMask()
	wm.conn.UngrabButton(c.window)

	if !focused {
		wm.conn.GrabButton(c.window, uint8(xproto.ButtonIndexAny), uint16(xproto.ModMaskAny), true)
	}

	for _, bb := range wm.cfg.Buttons {
		if bb.Click != "clientwin" {
			continue
		}
		spec := modString(bb.Mod)
		mods, button, err := mousebind.ParseString(wm.xu, buttonSpec(spec, bb.Button))
		if err != nil {
			continue
		}
		for _, lock := range wm.lockModifierCombos() {
			wm.conn.GrabButton(c.window, uint8(button), mods|lock, false)
		}
	}
}

// buttonSpec appends a literal button number to a modifier spec the
// way mousebind.ParseString expects ("Mod1-1"); configured Button
// values are X11 button indices (1=left, 2=middle, 3=right, ...).
func buttonSpec(modSpec string, button uint8) string {
	name := [...]string{"", "1", "2", "3", "4", "5"}
	n := "1"
	if int(button) < len(name) && name[button] != "" {
		n = name[button]
	}
	if modSpec == "" {
		return n
	}
	return modSpec + "-" + n
}

// keyPress resolves a KeyPress event's (keysym, clean modifier state)
// pair against the configured bindings and dispatches the first match
// (dwm.c keypress).
func (wm *WM) keyPress(keycode xproto.Keycode, state uint16) {
	keysym := keybind.KeysymGet(wm.xu, keycode, 0)
	clean := wm.cleanMask(state)

	for _, kb := range wm.cfg.Keys {
		spec := kb.Key
		if m := modString(kb.Mod); m != "" {
			spec = m + "-" + kb.Key
		}
		mods, code, err := keybind.ParseString(wm.xu, spec)
		if err != nil || code != keycode {
			continue
		}
		boundSym := keybind.KeysymGet(wm.xu, code, 0)
		if boundSym == keysym && wm.cleanMask(mods) == clean {
			dispatch(wm, kb.Action, kb.Arg, nil)
			return
		}
	}
}

// buttonPress resolves a ButtonPress event against the configured
// "tagbar"/"layoutsymbol"/"status"/"wintitle"/"clientwin"/"root" click
// regions (dwm.c buttonpress); the bar's region classification lives
// in bar.go's barClick.
func (wm *WM) buttonPress(click string, button uint8, state uint16, c *Client) {
	clean := wm.cleanMask(state)
	for _, bb := range wm.cfg.Buttons {
		if bb.Click != click || bb.Button != button {
			continue
		}
		mods, _, err := mousebind.ParseString(wm.xu, buttonSpec(modString(bb.Mod), bb.Button))
		if err != nil || wm.cleanMask(mods) != clean {
			continue
		}
		dispatch(wm, bb.Action, bb.Arg, c)
		return
	}
}
