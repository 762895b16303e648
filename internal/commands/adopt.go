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
	Register(&AdoptCmd{})
}

// AdoptCmd implements the adopt command.
type AdoptCmd struct {
	species  string
	animalID string
}

// SetSpecies sets the species (for testing).
func (c *AdoptCmd) SetSpecies(species string) {
	c.species = species
}

func (c *AdoptCmd) Name() string      { return "adopt" }
func (c *AdoptCmd) Aliases() []string { return nil }
func (c *AdoptCmd) Synopsis() string  { return "Adopt a new pet" }
func (c *AdoptCmd) Usage() string {
	return "daycare adopt [--species <species>] [--animal <id>] <name...>"
}
func (c *AdoptCmd) NeedsStore() bool { return true }
func (c *AdoptCmd) NeedsAuth() bool  { return false }

func (c *AdoptCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.species, "species", "", "")
	fs.StringVar(&c.species, "s", "", "")
	fs.StringVar(&c.animalID, "animal", "", "")
}

func (c *AdoptCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		fmt.Fprintln(errOut, "error: pet name required")
		return exitcode.UserError
	}

	p, err := env.Pets.Create(ctx, name, c.species, c.animalID)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "adopted %s (%s)\n", p.Name, p.ID)
	}
	return exitcode.Success
}
