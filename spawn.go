// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"
	"os"
	"os/exec"
	"syscall"
)

// spawnCommand launches cfg.Commands[idx] detached from wm: its own
// session (Setsid, so it survives wm exiting and never receives wm's
// terminal signals) and without inheriting wm's X connection fd
// (dwm.c spawn forks then closes ConnectionNumber(dpy); Go's exec
// achieves the same by simply not passing that fd through — only the
// three standard streams are inherited).
func (wm *WM) spawnCommand(idx int) {
	if idx < 0 || idx >= len(wm.cfg.Commands) {
		log.Printf("spawn: no command configured at index %d\n", idx)
		return
	}
	argv := wm.cfg.Commands[idx]
	if len(argv) == 0 {
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		log.Printf("spawn: %s: %v\n", argv[0], err)
		return
	}
	// Deliberately not Wait()ed: reapChildren (signal.go) reaps every
	// exited child through a single shared SIGCHLD handler, the same
	// fire-and-forget shape dwm.c's spawn has (it never waitpid()s the
	// child it just forked either).
}
