package manager

import (
	"fmt"
	"regexp"
	"strings"
)

// worldLine matches one line of `<server> worlds list`, e.g.
//
//	[ ACTIVE ] "world" is in RAM.
//	[ INACTIVE ] "nether" is stored on disk.
var worldLine = regexp.MustCompile(`^\[ (ACTIVE|INACTIVE) \] "([^"]+)"`)

// World is one world of a server.
type World struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ParseWorlds converts `worlds list` output into worlds in output order.
func ParseWorlds(output string) []World {
	var worlds []World
	for _, line := range strings.Split(output, "\n") {
		m := worldLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		worlds = append(worlds, World{Name: m[2], Active: m[1] == "ACTIVE"})
	}
	return worlds
}

// FormatWorlds renders worlds in the `worlds list` grammar.
func FormatWorlds(worlds []World) string {
	var b strings.Builder
	for _, w := range worlds {
		if w.Active {
			fmt.Fprintf(&b, "[ ACTIVE ] \"%s\" is in RAM.\n", w.Name)
		} else {
			fmt.Fprintf(&b, "[ INACTIVE ] \"%s\" is stored on disk.\n", w.Name)
		}
	}
	return b.String()
}
