package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"daycare/internal/config"
	"daycare/internal/exitcode"
	"daycare/internal/output"
)

func init() {
	Register(&EventCmd{})
}

// EventCmd implements the event command: today's random outing.
type EventCmd struct{}

func (c *EventCmd) Name() string      { return "event" }
func (c *EventCmd) Aliases() []string { return nil }
func (c *EventCmd) Synopsis() string  { return "Take a pet to today's event" }
func (c *EventCmd) Usage() string     { return "daycare event <pet>" }
func (c *EventCmd) NeedsStore() bool  { return true }
func (c *EventCmd) NeedsAuth() bool   { return false }

func (c *EventCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EventCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	ref := strings.TrimSpace(strings.Join(args, " "))
	if ref == "" {
		fmt.Fprintln(errOut, "error: pet required")
		return exitcode.UserError
	}

	engine, err := env.eventEngine()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	p, code := enterRoom(ctx, env, ref, errOut)
	if code != exitcode.Success {
		return code
	}

	res := p.TriggerEvent(engine)
	env.logger().Debug("event resolved", "pet", p.ID, "script", res.Script, "delta", res.Delta, "attended", res.AlreadyAttended)

	// Persist the outcome along with the refreshed status.
	if code := savePet(ctx, env, p, errOut); code != exitcode.Success {
		return code
	}

	output.FormatEvent(out, p.Profile, res)
	if !res.AlreadyAttended && !cfg.Quiet {
		output.FormatStatus(out, p.Profile)
	}
	return exitcode.Success
}
