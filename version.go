// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import "fmt"

var version = "unknown" // set by the build

func printVersionBanner() {
	fmt.Printf("wm-%s\n", version)
}
