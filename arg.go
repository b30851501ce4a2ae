// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "log"

// action is the function shape every KeyBinding/ButtonBinding.Action
// name resolves to: the bound Arg value plus, for button bindings
// only, the client under the pointer when the click landed on a
// client window (nil otherwise). This mirrors dwm.c's single `const
// Arg*` signature, generalized just enough to carry the extra context
// button clicks need (dwm.c buttonpress computes this the same way,
// inline, before dispatching).
type action func(wm *WM, arg int32, c *Client)

// actionTable is the fixed name -> action dispatch table config.go's
// KeyBinding.Action / ButtonBinding.Action strings are resolved
// against at grab time and at dispatch time (dwm.c's keys[]/buttons[]
// arrays, generalized from compile-time function pointers to a
// runtime map since the binding table itself now comes from
// configuration).
var actionTable = map[string]action{
	"spawn": func(wm *WM, arg int32, _ *Client) {
		wm.spawnCommand(int(arg))
	},
	"focusstack": func(wm *WM, arg int32, _ *Client) {
		wm.focusStack(int(arg))
	},
	"setmfact": func(wm *WM, arg int32, _ *Client) {
		wm.setMFact(float64(arg) / 100)
	},
	"incnmaster": func(wm *WM, arg int32, _ *Client) {
		wm.incNMaster(int(arg))
	},
	"setgaps": func(wm *WM, arg int32, _ *Client) {
		wm.setGaps(int(arg))
	},
	"setlayout": func(wm *WM, arg int32, _ *Client) {
		wm.setLayout(int(arg))
	},
	"zoom": func(wm *WM, _ int32, _ *Client) {
		wm.zoom()
	},
	"view": func(wm *WM, arg int32, _ *Client) {
		wm.view(int(arg))
	},
	"toggleview": func(wm *WM, arg int32, _ *Client) {
		wm.toggleView(int(arg))
	},
	"tag": func(wm *WM, arg int32, _ *Client) {
		wm.tag(int(arg))
	},
	"toggletag": func(wm *WM, arg int32, _ *Client) {
		wm.toggleTag(int(arg))
	},
	"killclient": func(wm *WM, _ int32, _ *Client) {
		wm.killClient()
	},
	"togglefloating": func(wm *WM, _ int32, _ *Client) {
		wm.toggleFloating()
	},
	"togglefullscreen": func(wm *WM, _ int32, _ *Client) {
		wm.toggleFullscreen()
	},
	"togglebar": func(wm *WM, _ int32, _ *Client) {
		wm.toggleBar()
	},
	"focusmon": func(wm *WM, arg int32, _ *Client) {
		wm.focusMon(int(arg))
	},
	"tagmon": func(wm *WM, arg int32, _ *Client) {
		wm.tagMon(int(arg))
	},
	"movemouse": func(wm *WM, _ int32, c *Client) {
		wm.moveMouse(c)
	},
	"resizemouse": func(wm *WM, _ int32, c *Client) {
		wm.resizeMouse(c)
	},
	"quit": func(wm *WM, _ int32, _ *Client) {
		wm.quit()
	},
}

// dispatch resolves name against actionTable and runs it, logging and
// dropping unknown names rather than failing the event loop (a
// misconfigured binding should never take the whole manager down).
func dispatch(wm *WM, name string, arg int32, c *Client) {
	fn, ok := actionTable[name]
	if !ok {
		log.Printf("unknown action %q in binding\n", name)
		return
	}
	fn(wm, arg, c)
}
