// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "github.com/BurntSushi/xgb/xproto"

// Client is one managed top-level window (spec.md §3). It is threaded
// onto two independent orderings over the same owned set: the
// monitor's attachment list (next) and its focus stack (snext).
// Neither ordering owns the Client; the Monitor does.
type Client struct {
	name string // displayed title, truncated to clientNameMax bytes

	x, y, w, h             int
	oldx, oldy, oldw, oldh int

	basew, baseh   int
	incw, inch     int
	maxw, maxh     int
	minw, minh     int
	mina, maxa     float64
	borderWidth    int
	oldBorderWidth int

	tags uint32

	fixed      bool
	floating   bool
	urgent     bool
	neverFocus bool
	fullscreen bool
	oldState   bool // floating flag snapshotted before entering fullscreen

	window xproto.Window

	mon *Monitor

	next  *Client // next in attachment order
	snext *Client // next in focus-stack order
}

const clientNameMax = 255

// width/height including the border, matching dwm.c's WIDTH/HEIGHT
// macros exactly (used throughout layout and size-hint arithmetic).
func (c *Client) width() int  { return c.w + 2*c.borderWidth }
func (c *Client) height() int { return c.h + 2*c.borderWidth }

// visible reports whether c's tags intersect its monitor's current
// view (spec.md §3 Tagset: "A client is visible iff client.tags &
// monitor.current != 0").
func (c *Client) visible() bool {
	return c.tags&c.mon.currentTags() != 0
}
