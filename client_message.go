// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"github.com/BurntSushi/xgb/xproto"
)

// sendProtocolEvent offers a client a WM_PROTOCOLS message naming
// proto, but only if the client actually advertised support for it in
// its WM_PROTOCOLS property (dwm.c sendevent). Callers that need to
// know whether the offer was made — killClient's fallback to a forced
// kill — use the returned bool.
func (wm *WM) sendProtocolEvent(c *Client, protoName string, proto xproto.Atom) bool {
	if !wm.conn.SupportsProtocol(c.window, protoName) {
		return false
	}

	wm.conn.SendClientMessage(c.window, wm.atoms.WMProtocols,
		[5]uint32{uint32(proto), uint32(xproto.TimeCurrentTime), 0, 0, 0})
	return true
}
