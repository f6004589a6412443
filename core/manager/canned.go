package manager

import (
	"context"
	"fmt"
	"sync"
)

// CannedJars is the jar catalog served in debug mode.
var CannedJars = []string{
	"minecraft/2017-09-10-01-26-11-minecraft_server.1.12.1.jar",
	"minecraft/2017-09-22-16-53-04-minecraft_server.1.12.2.jar",
	"minerva/minerva.jar",
	"minukkit/craftbukkit-1.12.jar",
}

// CannedRunner answers manager commands with fixed output in the CLI
// grammar. Lifecycle commands flip the canned server state.
type CannedRunner struct {
	mu      sync.Mutex
	servers []Server
	worlds  []World
	config  ConfigMap
}

// NewCannedRunner creates a runner with the debug data set.
func NewCannedRunner() *CannedRunner {
	return &CannedRunner{
		servers: []Server{
			{Name: "creative2", Online: true},
			{Name: "minerva", Online: true},
			{Name: "anarchy", Online: false},
			{Name: "creative", Online: true},
			{Name: "patreon", Online: false},
		},
		worlds: []World{
			{Name: "world", Active: true},
			{Name: "Other", Active: true},
			{Name: "worlds", Active: false},
			{Name: "show", Active: false},
			{Name: "here", Active: false},
		},
		config: ConfigMap{
			"SERVER_STORAGE_PATH":  "/opt/msm/servers",
			"JAR_STORAGE_PATH":     "/opt/msm/jars",
			"RAMDISK_STORAGE_PATH": "/dev/shm/msm",
		},
	}
}

// Run implements Runner.
func (r *CannedRunner) Run(ctx context.Context, args ...string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case len(args) == 2 && args[0] == "server" && args[1] == "list":
		return Result{Stdout: FormatStatus(r.servers)}, nil
	case len(args) == 1 && args[0] == "config":
		return Result{Stdout: r.config.String()}, nil
	case len(args) == 3 && args[1] == "worlds" && args[2] == "list":
		if r.index(args[0]) < 0 {
			return r.unknown(args[0]), nil
		}
		return Result{Stdout: FormatWorlds(r.worlds)}, nil
	case len(args) == 2:
		action, ok := ParseAction(args[1])
		if !ok {
			break
		}
		i := r.index(args[0])
		if i < 0 {
			return r.unknown(args[0]), nil
		}
		r.servers[i].Online = action != ActionStop
		return Result{Stdout: fmt.Sprintf("%s %s: done.\n", args[0], action)}, nil
	}

	return Result{ExitStatus: 64, Stderr: fmt.Sprintf("unknown command: %v", args)}, nil
}

func (r *CannedRunner) index(name string) int {
	for i, s := range r.servers {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func (r *CannedRunner) unknown(name string) Result {
	return Result{ExitStatus: 1, Stderr: fmt.Sprintf("There is no server with the name %q.", name)}
}
