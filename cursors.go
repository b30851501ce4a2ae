// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
)

// cursorTable creates the three cursors spec.md §2's Atom & Cursor
// Registry promises: normal, move, resize.
type cursorTable struct {
	Normal xproto.Cursor
	Move   xproto.Cursor
	Resize xproto.Cursor
}

func createCursors(xu *xgbutil.XUtil) (cursorTable, error) {
	normal, err := xcursor.CreateCursor(xu, xcursor.LeftPtr)
	if err != nil {
		return cursorTable{}, err
	}
	move, err := xcursor.CreateCursor(xu, xcursor.Fleur)
	if err != nil {
		return cursorTable{}, err
	}
	resize, err := xcursor.CreateCursor(xu, xcursor.BottomRightCorner)
	if err != nil {
		return cursorTable{}, err
	}
	return cursorTable{Normal: normal, Move: move, Resize: resize}, nil
}
