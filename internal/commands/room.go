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
	Register(&RoomCmd{})
}

// RoomCmd implements the room command: it enters the pet room, refreshes the
// cached status and prints the checklist.
type RoomCmd struct{}

func (c *RoomCmd) Name() string      { return "room" }
func (c *RoomCmd) Aliases() []string { return []string{"show"} }
func (c *RoomCmd) Synopsis() string  { return "Show a pet's mood and checklist" }
func (c *RoomCmd) Usage() string     { return "daycare room <pet>" }
func (c *RoomCmd) NeedsStore() bool  { return true }
func (c *RoomCmd) NeedsAuth() bool   { return false }

func (c *RoomCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RoomCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	ref := strings.TrimSpace(strings.Join(args, " "))
	if ref == "" {
		fmt.Fprintln(errOut, "error: pet required")
		return exitcode.UserError
	}

	p, code := enterRoom(ctx, env, ref, errOut)
	if code != exitcode.Success {
		return code
	}
	if code := savePet(ctx, env, p, errOut); code != exitcode.Success {
		return code
	}

	output.FormatRoomHeader(out, p.Profile)
	tasks := p.Tasks()
	for i, t := range tasks {
		output.FormatTask(out, i+1, t)
	}
	if len(tasks) == 0 && !cfg.Quiet {
		fmt.Fprintln(out, "no activities yet")
	}
	return exitcode.Success
}
