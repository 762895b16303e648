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
	Register(&ReleaseCmd{})
}

// ReleaseCmd implements the release command.
type ReleaseCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *ReleaseCmd) SetForce(force bool) {
	c.force = force
}

func (c *ReleaseCmd) Name() string      { return "release" }
func (c *ReleaseCmd) Aliases() []string { return nil }
func (c *ReleaseCmd) Synopsis() string  { return "Delete a pet and its checklist" }
func (c *ReleaseCmd) Usage() string     { return "daycare release [--force] <pet>" }
func (c *ReleaseCmd) NeedsStore() bool  { return true }
func (c *ReleaseCmd) NeedsAuth() bool   { return false }

func (c *ReleaseCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *ReleaseCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	ref := strings.TrimSpace(strings.Join(args, " "))
	if ref == "" {
		fmt.Fprintln(errOut, "error: pet required")
		return exitcode.UserError
	}

	p, code := enterRoom(ctx, env, ref, errOut)
	if code != exitcode.Success {
		return code
	}

	// Refuse to drop a checklist unless asked to
	if len(p.Tasks()) > 0 && !c.force {
		fmt.Fprintf(errOut, "error: %s still has %d activities (use --force)\n", p.Name, len(p.Tasks()))
		return exitcode.UserError
	}

	if err := p.Wipe(); err != nil {
		return reportError(errOut, err)
	}
	if err := env.Pets.Delete(ctx, p.ID); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
