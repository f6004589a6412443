package manager

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigMap holds the raw values printed by `config`.
type ConfigMap map[string]string

// ParseConfig converts KEY="value" lines into a ConfigMap.
// A line must contain exactly one '=' and is skipped otherwise. The value
// loses exactly one leading and one trailing character, whatever they are.
func ParseConfig(output string) ConfigMap {
	cfg := make(ConfigMap)
	for _, line := range strings.Split(output, "\n") {
		parts := strings.Split(strings.TrimSuffix(line, "\r"), "=")
		if len(parts) != 2 {
			continue
		}
		value := parts[1]
		if len(value) >= 2 {
			value = value[1 : len(value)-1]
		} else {
			value = ""
		}
		cfg[parts[0]] = value
	}
	return cfg
}

// JarStoragePath returns the jar storage root stored under key.
func (m ConfigMap) JarStoragePath(key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// String renders the map as sorted KEY="value" lines.
func (m ConfigMap) String() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=\"%s\"\n", k, m[k])
	}
	return b.String()
}
