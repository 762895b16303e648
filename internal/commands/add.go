package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"daycare/internal/config"
	"daycare/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add an activity to a pet's checklist" }
func (c *AddCmd) Usage() string     { return "daycare add <pet> <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: pet required")
		return exitcode.UserError
	}

	// Validated here and again by the store.
	description := strings.TrimSpace(strings.Join(args[1:], " "))
	if description == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	p, code := enterRoom(ctx, env, args[0], errOut)
	if code != exitcode.Success {
		return code
	}

	t, err := p.AddTask(description)
	if err != nil {
		return reportError(errOut, err)
	}
	if code := savePet(ctx, env, p, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok %s\n", t.ID)
	}
	return exitcode.Success
}
