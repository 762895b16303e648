package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"daycare/internal/config"
	"daycare/internal/exitcode"
)

func init() {
	Register(&NewDayCmd{})
}

// NewDayCmd implements the newday command. It is the only way an event
// flag is cleared; nothing resets flags on a timer.
type NewDayCmd struct{}

func (c *NewDayCmd) Name() string      { return "newday" }
func (c *NewDayCmd) Aliases() []string { return nil }
func (c *NewDayCmd) Synopsis() string  { return "Start a new day: every pet may attend an event again" }
func (c *NewDayCmd) Usage() string     { return "daycare newday" }
func (c *NewDayCmd) NeedsStore() bool  { return true }
func (c *NewDayCmd) NeedsAuth() bool   { return false }

func (c *NewDayCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NewDayCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	n, err := env.Pets.ResetEvents(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "new day: %d pets rested\n", n)
	}
	return exitcode.Success
}
