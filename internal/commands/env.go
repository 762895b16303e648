package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"daycare/internal/account"
	"daycare/internal/exitcode"
	"daycare/internal/pet"
	"daycare/internal/service"
	"daycare/internal/taskstore"
)

// PetStore is the pet-record collaborator commands persist profiles through.
type PetStore interface {
	Create(ctx context.Context, name, species, animalID string) (pet.Profile, error)
	List(ctx context.Context) ([]pet.Profile, error)
	Resolve(ctx context.Context, ref string) (pet.Profile, error)
	SavePetRecord(ctx context.Context, p pet.Profile) error
	Delete(ctx context.Context, id string) error
	ResetEvents(ctx context.Context) (int64, error)
}

// Env carries the dependencies a command runs against.
type Env struct {
	Pets   PetStore
	Tasks  pet.TaskStore
	Rand   pet.Rand
	Remote service.Service
	Logger *slog.Logger

	// Scripts overrides the event table; nil means pet.DefaultScripts.
	Scripts []pet.Script
}

// Close releases the pet store if it holds resources.
func (e *Env) Close() error {
	if e == nil {
		return nil
	}
	if c, ok := e.Pets.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e *Env) rand() pet.Rand {
	if e.Rand == nil {
		e.Rand = pet.NewRand()
	}
	return e.Rand
}

func (e *Env) eventEngine() (*pet.EventEngine, error) {
	scripts := e.Scripts
	if scripts == nil {
		scripts = pet.DefaultScripts()
	}
	return pet.NewEventEngine(scripts, e.rand())
}

// enterRoom resolves ref to a pet, loads its checklist and recomputes its
// status. On failure the error is reported and a non-zero exit code returned.
func enterRoom(ctx context.Context, env *Env, ref string, errOut io.Writer) (*pet.Pet, int) {
	profile, err := env.Pets.Resolve(ctx, ref)
	if err != nil {
		return nil, reportError(errOut, err)
	}

	p := pet.New(profile, env.Tasks, env.rand())
	if err := p.EnterRoom(); err != nil {
		return nil, reportError(errOut, err)
	}
	env.logger().Debug("entered room", "pet", p.ID, "tasks", len(p.Tasks()), "status", p.Status)
	return p, exitcode.Success
}

// savePet persists the pet's profile after a status-affecting change.
func savePet(ctx context.Context, env *Env, p *pet.Pet, errOut io.Writer) int {
	if err := env.Pets.SavePetRecord(ctx, p.Profile); err != nil {
		return reportError(errOut, err)
	}
	return exitcode.Success
}

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, account.ErrAmbiguous),
		errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, pet.ErrTaskNotFound):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, taskstore.ErrInvalidInput):
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	case errors.Is(err, taskstore.ErrCorruptStore):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	default:
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}
}
