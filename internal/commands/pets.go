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
	Register(&PetsCmd{})
}

// PetsCmd implements the pets command.
// Handles both `daycare` (no args) and `daycare pets`.
type PetsCmd struct{}

func (c *PetsCmd) Name() string      { return "pets" }
func (c *PetsCmd) Aliases() []string { return []string{"ls"} }
func (c *PetsCmd) Synopsis() string  { return "List pets" }
func (c *PetsCmd) Usage() string     { return "daycare pets" }
func (c *PetsCmd) NeedsStore() bool  { return true }
func (c *PetsCmd) NeedsAuth() bool   { return false }

func (c *PetsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PetsCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	pets, err := env.Pets.List(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	if len(pets) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no pets yet (run: daycare adopt <name>)")
		}
		return exitcode.Success
	}

	for _, p := range pets {
		output.FormatPet(out, p)
	}
	return exitcode.Success
}
