package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"daycare/internal/account"
	"daycare/internal/backend/googletasks"
	"daycare/internal/commands"
	"daycare/internal/config"
	"daycare/internal/exitcode"
	"daycare/internal/pet"
	"daycare/internal/service"
	"daycare/internal/taskstore"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// EnvFactory opens the local stores a command runs against.
type EnvFactory func(cfg *config.Config, logger *slog.Logger) (*commands.Env, error)

// OpenEnv opens the SQLite pet store and the CSV task store named by cfg.
func OpenEnv(cfg *config.Config, logger *slog.Logger) (*commands.Env, error) {
	pets, err := account.Open(cfg.DBPath(), logger)
	if err != nil {
		return nil, err
	}
	return &commands.Env{
		Pets:   pets,
		Tasks:  taskstore.New(cfg.TaskPath(), taskstore.WithLogger(logger)),
		Rand:   pet.NewRand(),
		Logger: logger,
	}, nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	envs     EnvFactory
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithEnvFactory replaces OpenEnv.
func WithEnvFactory(f EnvFactory) Option {
	return func(d *Dispatcher) { d.envs = f }
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		factory:  factory,
		envs:     OpenEnv,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list pets
	if len(args) == 0 {
		return d.dispatch(ctx, "pets", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(errOut, err)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	logger := cfg.Logger(errOut)
	logger.Debug("dispatch", "command", cmd.Name(), "config", cfg.Dir)

	env := &commands.Env{Logger: logger}
	if cmd.NeedsStore() {
		env, err = d.envs(cfg, logger)
		if err != nil {
			fmt.Fprintf(errOut, "error: store error: %s\n", err)
			return exitcode.StoreError
		}
		defer env.Close()
		if env.Logger == nil {
			env.Logger = logger
		}
	}

	if cmd.NeedsAuth() {
		if code := d.connect(ctx, cfg, env, errOut); code != exitcode.Success {
			return code
		}
	}

	return cmd.Run(ctx, cfg, env, positionalArgs, out, errOut)
}

// connect fills env.Remote, checking the auth files when no factory is set.
func (d *Dispatcher) connect(ctx context.Context, cfg *config.Config, env *commands.Env, errOut io.Writer) int {
	if d.factory == nil {
		if !cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", cfg.Dir)
			return exitcode.AuthError
		}
		if !cfg.HasToken() {
			fmt.Fprintf(errOut, "error: not logged in (run: daycare login)\n")
			return exitcode.AuthError
		}
		fmt.Fprintln(errOut, "error: no backend configured")
		return exitcode.BackendError
	}

	svc, err := d.factory(ctx, cfg)
	if err != nil {
		if errors.Is(err, googletasks.ErrAuth) {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}
	env.Remote = svc
	return exitcode.Success
}

func reportFlagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		flagPart := strings.TrimSpace(parts[len(parts)-1])
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
		return exitcode.UserError
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
