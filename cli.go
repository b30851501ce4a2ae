// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIOpts mirrors the handful of flags wm actually accepts.
type CLIOpts struct {
	printVersion bool
}

func parseCLIOpts() CLIOpts {
	fs := flag.NewFlagSet("wm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wm [-v]\n")
	}

	var opt CLIOpts
	fs.BoolVar(&opt.printVersion, "v", false, "print version banner and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}
	return opt
}

// doCLI handles every flag that short-circuits run(); it never returns
// when it does.
func doCLI(opt CLIOpts) {
	if opt.printVersion {
		printVersionBanner()
		os.Exit(1)
	}
}
