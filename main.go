// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
)

func main() {
	opt := parseCLIOpts()
	doCLI(opt)

	log.Printf("wm starting, version %s\n", version)

	initializeConfigIfNot()
	cfg := readConfig()

	xu, err := xgbutil.NewConn()
	if err != nil {
		fatalf("could not connect to the X server: %v\n", err)
	}
	defer xu.Conn().Close()

	wm := newWM(cfg)
	wm.xu = xu
	wm.root = xu.RootWin()
	wm.conn = newXgbBackend(xu)

	if err := wm.conn.SelectRootEventMask(wm.root); err != nil {
		fatalf("%v\n", becomeWMErr(err))
	}

	screen := xu.Screen()
	wm.screenW, wm.screenH = int(screen.WidthInPixels), int(screen.HeightInPixels)

	atoms, err := internAtoms(xu)
	if err != nil {
		fatalf("could not intern atoms: %v\n", err)
	}
	wm.atoms = atoms

	cursors, err := createCursors(xu)
	if err != nil {
		fatalf("could not create cursors: %v\n", err)
	}
	wm.cursors = cursors

	fontBytes, err := loadFontBytes(cfg)
	if err != nil {
		fatalf("no fonts could be loaded: %v\n", err)
	}
	drawer, err := newBarDrawer(fontBytes, fontSizeFromSpec(cfg.Font))
	if err != nil {
		fatalf("could not parse font: %v\n", err)
	}
	wm.drawer = drawer
	wm.barHeight = drawer.height()

	wm.colorNorm = makeScheme(cfg.ColorNorm)
	wm.colorSel = makeScheme(cfg.ColorSel)

	setupEWMHSupport(wm)

	wm.updateGeom()
	wm.selmon = wm.mons
	wm.updateBars()
	wm.updateStatus()

	wm.grabKeys()
	wm.scan()
	wm.arrange(nil)
	wm.focus(nil)

	reapChildren()
	dropPrivileges()

	wm.run()

	wm.cleanup()
}

// makeScheme derives both the border pixel and the bar-text colours
// from a Config colour triple (border, bg, fg), the fields
// defaultConfig populates alongside dwm.c's Scheme layout.
func makeScheme(c [3]string) barScheme {
	_, borderPixel := parseHexColor(c[0])
	bg, _ := parseHexColor(c[1])
	fg, _ := parseHexColor(c[2])
	return barScheme{borderPixel: borderPixel, bg: bg, fg: fg}
}

// setupEWMHSupport announces the subset of EWMH this fork actually
// implements through a supporting-WM-check window (dwm.c setup's
// _NET_SUPPORTING_WM_CHECK dance), and installs the default pointer
// cursor on the root window (dwm.c setup's XChangeWindowAttributes
// call with CwCursor). The check window's WM_NAME is kept as "dwm",
// not this fork's own name, for compatibility with status monitors
// that key off it.
func setupEWMHSupport(wm *WM) {
	wm.conn.SetRootCursor(wm.root, wm.cursors.Normal)

	check := wm.conn.CreateWindow(wm.root, -1, -1, 1, 1)
	if check == 0 {
		return
	}
	if err := ewmh.SupportingWmCheckSet(wm.xu, wm.root, check); err != nil {
		log.Printf("could not set supporting WM check on root: %v\n", err)
	}
	if err := ewmh.SupportingWmCheckSet(wm.xu, check, check); err != nil {
		log.Printf("could not set supporting WM check on check window: %v\n", err)
	}
	if err := ewmh.WmNameSet(wm.xu, check, "dwm"); err != nil {
		log.Printf("could not set WM_NAME on check window: %v\n", err)
	}
	if err := ewmh.SupportedSet(wm.xu, wm.atoms.supported()); err != nil {
		log.Printf("could not set _NET_SUPPORTED: %v\n", err)
	}
}

// cleanup unwinds every managed client and monitor before exit (dwm.c
// cleanup): the attachment/focus lists hold every client regardless of
// which tag is selected, so unmanaging m.stack top-down reaches hidden
// clients too without needing to view every tag first.
func (wm *WM) cleanup() {
	for m := wm.mons; m != nil; m = m.next {
		for m.stack != nil {
			wm.unmanage(m.stack, false)
		}
	}
	wm.conn.UngrabKey(wm.root)

	for wm.mons != nil {
		wm.cleanupMon(wm.mons)
	}

	wm.conn.Sync()
	wm.conn.FocusRevertToRoot(wm.root)
	wm.conn.DeleteProperty(wm.root, wm.atoms.NetActiveWindow)
}
