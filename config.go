// This file is part of the program "wm".
// Please see the LICENSE file for copyright information.

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Rule is a predicate over (class, instance, title) substrings plus
// the tag bits, float flag and target monitor to apply on match. The
// rule surface itself is an external collaborator (spec.md §1); this
// struct is the shape the core consumes.
type Rule struct {
	Class    string
	Instance string
	Title    string
	Tags     uint32
	Floating bool
	Monitor  int
}

// KeyBinding names a key combination and the action it triggers. Mod
// and Key are resolved against X11 modifier masks and keysym names at
// grab time (keys.go); Action is resolved against the fixed action
// table (arg.go).
type KeyBinding struct {
	Mod    string
	Key    string
	Action string
	Arg    int32
}

// ButtonBinding is the pointer-click analogue of KeyBinding. Click
// names one of the bar's click regions ("tagbar", "layoutsymbol",
// "status", "wintitle", "clientwin", "root").
type ButtonBinding struct {
	Click  string
	Mod    string
	Button uint8
	Action string
	Arg    int32
}

// Config is the entire external-collaborator surface spec.md §1
// declares out of core scope: keys, buttons, rules, colours, fonts,
// tag names and the layout table. The core only ever consumes the
// resulting struct.
type Config struct {
	Tags        []string
	Layouts     []string // layout symbols; not read: monitors always use builtinLayouts (layout.go)
	BorderPx    int
	SnapPx      int
	GapPx       int
	MFact       float64
	NMaster     int
	ShowBar     bool
	TopBar      bool
	Font        string
	ColorNorm   [3]string // border, bg, fg
	ColorSel    [3]string
	Rules       []Rule
	Keys        []KeyBinding
	Buttons     []ButtonBinding
	Commands    [][]string // argv vectors, indexed by a "spawn" binding's Arg
	ResizeHints bool
}

const configFile = "config.toml"

func defaultConfig() Config {
	return Config{
		Tags:      []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Layouts:   []string{"[]=", "[M]", "><>"},
		BorderPx:  1,
		SnapPx:    32,
		GapPx:     0,
		MFact:     0.55,
		NMaster:   1,
		ShowBar:   true,
		TopBar:    true,
		Font:      "monospace:size=10",
		ColorNorm: [3]string{"#444444", "#222222", "#bbbbbb"},
		ColorSel:  [3]string{"#005577", "#005577", "#eeeeee"},
		Rules: []Rule{
			{Class: "Gimp", Floating: true},
			{Class: "firefox", Tags: 1 << 8},
		},
		Keys: []KeyBinding{
			{Mod: "Mod1", Key: "p", Action: "spawn", Arg: 0},
			{Mod: "Mod1|Shift", Key: "Return", Action: "spawn", Arg: 1},
			{Mod: "Mod1", Key: "j", Action: "focusstack", Arg: 1},
			{Mod: "Mod1", Key: "k", Action: "focusstack", Arg: -1},
			{Mod: "Mod1", Key: "h", Action: "setmfact", Arg: -5},
			{Mod: "Mod1", Key: "l", Action: "setmfact", Arg: 5},
			{Mod: "Mod1", Key: "Return", Action: "zoom", Arg: 0},
			{Mod: "Mod1", Key: "Tab", Action: "view", Arg: -1},
			{Mod: "Mod1|Shift", Key: "c", Action: "killclient", Arg: 0},
			{Mod: "Mod1", Key: "space", Action: "togglefloating", Arg: 0},
			{Mod: "Mod1|Shift", Key: "q", Action: "quit", Arg: 0},
		},
		Buttons: []ButtonBinding{
			{Click: "clientwin", Mod: "Mod1", Button: 1, Action: "movemouse"},
			{Click: "clientwin", Mod: "Mod1", Button: 3, Action: "resizemouse"},
			{Click: "tagbar", Button: 1, Action: "view"},
			{Click: "tagbar", Button: 3, Action: "toggleview"},
		},
		Commands: [][]string{
			{"dmenu_run"},
			{"xterm"},
		},
		ResizeHints: false,
	}
}

func initializeConfigIfNot() {
	log.Println("Checking if config needs to be initialized")

	configdir := configDir()
	ok, err := exists(configdir)
	if err != nil {
		log.Fatalf("Couldn't check if config directory exists: %v\n", err)
	}
	if !ok {
		if err := os.MkdirAll(configdir, 0700); err != nil {
			log.Fatalf("Couldn't create config directory: %v\n", err)
		}
	}
	tomlfile := filepath.Join(configdir, configFile)
	ok, err = exists(tomlfile)
	if err != nil {
		log.Fatalf("Couldn't check if config file exists: %v\n", err)
	}
	if !ok {
		log.Println("Initializing config")
		conf := defaultConfig()
		writeConfig(&conf)
	}
}

func readConfig() *Config {
	f := filepath.Join(configDir(), configFile)
	conf := defaultConfig()
	if _, err := toml.DecodeFile(f, &conf); err != nil {
		log.Fatalf("Couldn't read config file: %v\n", err)
	}
	return &conf
}

func writeConfig(conf *Config) {
	f := filepath.Join(configDir(), configFile)
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		log.Fatalf("Couldn't write config file: %v\n", err)
	}
	if err := os.WriteFile(f, buffer.Bytes(), 0644); err != nil {
		log.Fatalf("Couldn't write config file: %v\n", err)
	}
}

func configDir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "wm")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			log.Printf("Resolved $%s to '%s'\n", xdg, dir)
			return dir
		}
	}

	log.Printf("Couldn't resolve $%s falling back to '%s'\n", xdg, fallback)
	return fallback
}
