package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"daycare/internal/backend/googletasks"
	"daycare/internal/config"
	"daycare/internal/exitcode"
	"daycare/internal/mirror"
	"daycare/internal/service"
)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command.
type SyncCmd struct{}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return nil }
func (c *SyncCmd) Synopsis() string  { return "Mirror a pet's checklist to Google Tasks" }
func (c *SyncCmd) Usage() string     { return "daycare sync <pet>" }
func (c *SyncCmd) NeedsStore() bool  { return true }
func (c *SyncCmd) NeedsAuth() bool   { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	ref := strings.TrimSpace(strings.Join(args, " "))
	if ref == "" {
		fmt.Fprintln(errOut, "error: pet required")
		return exitcode.UserError
	}

	p, code := enterRoom(ctx, env, ref, errOut)
	if code != exitcode.Success {
		return code
	}

	res, err := mirror.Sync(ctx, env.Remote, p.Name, p.Tasks())
	if err != nil {
		switch {
		case errors.Is(err, googletasks.ErrAuth):
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		case errors.Is(err, service.ErrAmbiguousList):
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		default:
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
	}
	env.logger().Debug("synced", "pet", p.ID, "list", res.List.ID, "created", res.Created, "completed", res.Completed)

	if !cfg.Quiet {
		fmt.Fprintf(out, "synced %s: %d created, %d completed, %d unchanged\n",
			res.List.Title, res.Created, res.Completed, res.Unchanged)
	}
	return exitcode.Success
}
