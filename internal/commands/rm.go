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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return nil }
func (c *RmCmd) Synopsis() string  { return "Remove activities from a pet's checklist" }
func (c *RmCmd) Usage() string     { return "daycare rm <pet> <ref...>" }
func (c *RmCmd) NeedsStore() bool  { return true }
func (c *RmCmd) NeedsAuth() bool   { return false }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
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

	if err := p.RemoveTasks(ids...); err != nil {
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
