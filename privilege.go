// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"log"

	"github.com/syndtr/gocapability/capability"
)

// dropPrivileges clears the process's effective, permitted and
// inheritable capability sets once the display connection, atoms,
// monitors and bindings are all set up and nothing more needs
// CAP_SYS_*-class privilege for the rest of the run. This is the
// nearest pack-available analogue to a BSD pledge("stdio rpath proc
// exec") call: the teacher used the same capability library to grant
// CAP_SYS_RESOURCE for realtime audio (capability.go); wm runs that
// machinery in reverse, to shed rather than acquire.
func dropPrivileges() {
	caps, err := capability.NewPid2(0)
	if err != nil {
		log.Printf("could not load process capabilities: %v\n", err)
		return
	}
	if err := caps.Load(); err != nil {
		log.Printf("could not load process capabilities: %v\n", err)
		return
	}

	caps.Clear(capability.EFFECTIVE | capability.PERMITTED | capability.INHERITABLE)
	if err := caps.Apply(capability.EFFECTIVE | capability.PERMITTED | capability.INHERITABLE); err != nil {
		log.Printf("could not drop process capabilities: %v\n", err)
	}
}
