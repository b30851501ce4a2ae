// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"os"
	"strconv"
	"strings"
)

// fontSizeFromSpec extracts the point size from an Xft-style font
// spec ("monospace:size=10"), defaulting to 10 the way dwm.c's config
// default does.
func fontSizeFromSpec(spec string) float64 {
	const marker = "size="
	if i := strings.Index(spec, marker); i >= 0 {
		rest := spec[i+len(marker):]
		if j := strings.IndexByte(rest, ':'); j >= 0 {
			rest = rest[:j]
		}
		if size, err := strconv.ParseFloat(rest, 64); err == nil {
			return size
		}
	}
	return 10
}

// fallbackFontPaths are tried in order when cfg.Font doesn't name a
// path directly; there is no fontconfig binding in the corpus this
// module draws on, so resolving an Xft-style "monospace:size=10" name
// to an actual file is out of reach the way it would be through Xft.
// dwm.c's own die("no fonts could be loaded.") is mirrored at the call
// site: if nothing here exists either, startup aborts.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	"/usr/share/fonts/liberation-mono/LiberationMono-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansMono-Regular.ttf",
}

// loadFontBytes tries cfg.Font as a literal file path (whatever its
// form) and then each of fallbackFontPaths, returning the first file
// that actually reads; if none reads, the error is cfg.Font's.
func loadFontBytes(cfg *Config) ([]byte, error) {
	candidates := append([]string{cfg.Font}, fallbackFontPaths...)
	var firstErr error
	for _, path := range candidates {
		b, err := os.ReadFile(path)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
