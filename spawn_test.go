// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "testing"

func TestSpawnCommandRejectsOutOfRangeIndex(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	wm.cfg.Commands = [][]string{{"true"}}

	wm.spawnCommand(5)  // past the end
	wm.spawnCommand(-1) // negative
	// Neither call should panic; spawnCommand silently logs and returns.
}

func TestSpawnCommandIgnoresEmptyArgv(t *testing.T) {
	wm, _ := newTestWM(800, 600)
	wm.cfg.Commands = [][]string{{}}

	wm.spawnCommand(0) // empty argv, must not attempt exec.Command("")
}
