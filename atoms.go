// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
)

// atomTable interns the ICCCM and EWMH atoms spec.md §6 lists, the
// way teacher main.go:fixWindowClass interns individual atoms through
// xgbutil's xprop-backed cache, generalized here to every atom the
// core consumes.
type atomTable struct {
	WMProtocols           xproto.Atom
	WMDelete              xproto.Atom
	WMState               xproto.Atom
	WMTakeFocus           xproto.Atom
	NetActiveWindow       xproto.Atom
	NetSupported          xproto.Atom
	NetWMName             xproto.Atom
	NetWMState            xproto.Atom
	NetSupportingWMCheck  xproto.Atom
	NetWMStateFullscreen  xproto.Atom
	NetWMWindowType       xproto.Atom
	NetWMWindowTypeDialog xproto.Atom
	NetClientList         xproto.Atom
}

func internAtoms(xu *xgbutil.XUtil) (atomTable, error) {
	names := []string{
		"WM_PROTOCOLS", "WM_DELETE_WINDOW", "WM_STATE", "WM_TAKE_FOCUS",
		"_NET_ACTIVE_WINDOW", "_NET_SUPPORTED", "_NET_WM_NAME", "_NET_WM_STATE",
		"_NET_SUPPORTING_WM_CHECK", "_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_WINDOW_TYPE", "_NET_WM_WINDOW_TYPE_DIALOG", "_NET_CLIENT_LIST",
	}
	resolved := make(map[string]xproto.Atom, len(names))
	for _, n := range names {
		a, err := xprop.Atm(xu, n)
		if err != nil {
			return atomTable{}, err
		}
		resolved[n] = a
	}
	return atomTable{
		WMProtocols:           resolved["WM_PROTOCOLS"],
		WMDelete:              resolved["WM_DELETE_WINDOW"],
		WMState:               resolved["WM_STATE"],
		WMTakeFocus:           resolved["WM_TAKE_FOCUS"],
		NetActiveWindow:       resolved["_NET_ACTIVE_WINDOW"],
		NetSupported:          resolved["_NET_SUPPORTED"],
		NetWMName:             resolved["_NET_WM_NAME"],
		NetWMState:            resolved["_NET_WM_STATE"],
		NetSupportingWMCheck:  resolved["_NET_SUPPORTING_WM_CHECK"],
		NetWMStateFullscreen:  resolved["_NET_WM_STATE_FULLSCREEN"],
		NetWMWindowType:       resolved["_NET_WM_WINDOW_TYPE"],
		NetWMWindowTypeDialog: resolved["_NET_WM_WINDOW_TYPE_DIALOG"],
		NetClientList:         resolved["_NET_CLIENT_LIST"],
	}, nil
}

func (a atomTable) supported() []xproto.Atom {
	return []xproto.Atom{
		a.NetActiveWindow, a.NetSupported, a.NetWMName, a.NetWMState,
		a.NetSupportingWMCheck, a.NetWMStateFullscreen, a.NetWMWindowType,
		a.NetWMWindowTypeDialog, a.NetClientList,
	}
}
