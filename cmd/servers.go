package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mc-panel/core/manager"
	"mc-panel/core/tasks"

	"github.com/spf13/cobra"
)

// serversCmd represents the servers command
var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List servers known to the manager",
	Args:  cobra.NoArgs,
	RunE:  runServerList,
}

var serversListCmd = &cobra.Command{
	Use:   "list",
	Short: "List servers and their state",
	Args:  cobra.NoArgs,
	RunE:  runServerList,
}

func runServerList(cmd *cobra.Command, args []string) error {
	p, err := setupPanel()
	if err != nil {
		return err
	}
	defer p.logger.Sync()

	reg, err := p.servers.Registry(commandContext(cmd))
	if err != nil {
		return err
	}
	printServers(cmd.OutOrStdout(), reg)
	return nil
}

func printServers(w io.Writer, reg manager.Registry) {
	if reg.Len() == 0 {
		fmt.Fprintln(w, "No servers? :(")
		return
	}
	for _, s := range reg.Servers() {
		state := "stopped"
		if s.Online {
			state = "running"
		}
		fmt.Fprintf(w, "%-24s %s\n", s.Name, state)
	}
}

// lifecycleCmd builds `servers start|stop|restart <name>`, which waits for
// the command and reports its outcome.
func lifecycleCmd(action manager.Action) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " <name>",
		Short: strings.ToUpper(string(action[:1])) + string(action[1:]) + " a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := setupPanel()
			if err != nil {
				return err
			}
			defer p.logger.Sync()

			task, err := p.servers.Submit(commandContext(cmd), args[0], action)
			if err != nil {
				return err
			}
			task, err = p.tracker.Wait(commandContext(cmd), task.ID)
			if err != nil {
				return err
			}
			return reportTask(cmd.OutOrStdout(), task)
		},
	}
}

func reportTask(w io.Writer, task tasks.Task) error {
	fmt.Fprintf(w, "%s %s: %s (exit status %d)\n", task.Server, task.Action, task.State, task.ExitStatus)
	if out := strings.TrimSpace(task.Output); out != "" {
		fmt.Fprintln(w, out)
	}
	if task.State == tasks.StateFailed {
		return fmt.Errorf("%s %s failed: %s", task.Server, task.Action, task.Error)
	}
	return nil
}

// setupPanel loads the configuration and wires the manager for a one-shot
// command.
func setupPanel() (*panel, error) {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	return newPanel(cfg, logg)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	serversCmd.AddCommand(serversListCmd)
	for _, action := range []manager.Action{manager.ActionStart, manager.ActionStop, manager.ActionRestart} {
		serversCmd.AddCommand(lifecycleCmd(action))
	}
	RootCmd.AddCommand(serversCmd)
}
