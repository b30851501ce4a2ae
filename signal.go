// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
)

// reapChildren installs a SIGCHLD handler that reaps every exited
// spawned command in a loop, the Go-idiomatic equivalent of dwm.c's
// self-reinstalling `sigchld` handler (`signal(SIGCHLD, sigchld)` at
// the top of its own body, looping `waitpid(-1, NULL, WNOHANG)`). Go
// has no re-entrant signal-handler concept, so this is a channel
// drained for the lifetime of the process instead of a handler that
// reinstalls itself.
func reapChildren() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGCHLD)
	go func() {
		for range ch {
			for {
				var status syscall.WaitStatus
				pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG, nil)
				if pid <= 0 || err != nil {
					break
				}
				log.Printf("reaped child process %d\n", pid)
			}
		}
	}()
}
