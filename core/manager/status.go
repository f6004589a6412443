package manager

import (
	"fmt"
	"regexp"
	"strings"
)

// statusLine matches one server line of `server list`:
//
//	[ ACTIVE ] "<name>" is running.
//	[ INACTIVE ] "<name>" is stopped.
var statusLine = regexp.MustCompile(`^\[ (?:ACTIVE|INACTIVE) \] "(.+)" is (running|stopped)\.$`)

// Server is one managed server as reported by the CLI.
type Server struct {
	Name   string `json:"name"`
	Online bool   `json:"online"`
}

// Registry is an ordered snapshot of servers keyed by name.
// The zero value is an empty registry.
type Registry struct {
	order   []string
	servers map[string]Server
}

// NewRegistry builds a registry from servers in order.
// A repeated name keeps its first position and takes the last value.
func NewRegistry(servers ...Server) Registry {
	var r Registry
	for _, s := range servers {
		r.put(s)
	}
	return r
}

func (r *Registry) put(s Server) {
	if r.servers == nil {
		r.servers = make(map[string]Server)
	}
	if _, ok := r.servers[s.Name]; !ok {
		r.order = append(r.order, s.Name)
	}
	r.servers[s.Name] = s
}

// Get returns the server with the given name.
func (r Registry) Get(name string) (Server, bool) {
	s, ok := r.servers[name]
	return s, ok
}

// Len returns the number of servers.
func (r Registry) Len() int {
	return len(r.order)
}

// Names returns server names in CLI output order.
func (r Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Servers returns servers in CLI output order.
func (r Registry) Servers() []Server {
	out := make([]Server, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.servers[name])
	}
	return out
}

// First returns the first listed server.
func (r Registry) First() (Server, bool) {
	if len(r.order) == 0 {
		return Server{}, false
	}
	return r.servers[r.order[0]], true
}

// ParseStatus converts `server list` output into a Registry.
// Lines outside the grammar are ignored.
func ParseStatus(output string) Registry {
	var r Registry
	for _, line := range strings.Split(output, "\n") {
		m := statusLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		r.put(Server{Name: m[1], Online: m[2] == "running"})
	}
	return r
}

// FormatStatus renders servers in the `server list` grammar.
func FormatStatus(servers []Server) string {
	var b strings.Builder
	for _, s := range servers {
		if s.Online {
			fmt.Fprintf(&b, "[ ACTIVE ] \"%s\" is running.\n", s.Name)
		} else {
			fmt.Fprintf(&b, "[ INACTIVE ] \"%s\" is stopped.\n", s.Name)
		}
	}
	return b.String()
}
