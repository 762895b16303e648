package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daycare/internal/config"
	"daycare/internal/exitcode"
	"daycare/internal/output"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Each referenced activity has its
// completion flipped, so done also reopens a finished activity.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle activities complete/incomplete" }
func (c *DoneCmd) Usage() string     { return "daycare done <pet> <ref...>" }
func (c *DoneCmd) NeedsStore() bool  { return true }
func (c *DoneCmd) NeedsAuth() bool   { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: pet required")
		return exitcode.UserError
	}

	p, code := enterRoom(ctx, env, args[0], errOut)
	if code != exitcode.Success {
		return code
	}

	ids, err := ResolveTaskRefs(args[1:], p.Tasks())
	if err != nil {
		return reportRefError(errOut, err)
	}

	if err := p.ToggleTasks(ids...); err != nil {
		return reportError(errOut, err)
	}
	if code := savePet(ctx, env, p, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		output.FormatStatus(out, p.Profile)
	}
	return exitcode.Success
}
