package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotmcp/internal/session"
	"github.com/desertthunder/spotmcp/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	logger *log.Logger
	output io.Writer
	cache  *session.TokenCache
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Logger *log.Logger
	Output io.Writer
	Cache  *session.TokenCache
}

// NewRunner creates a new Runner with the provided options.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		logger: opts.Logger,
		output: opts.Output,
		cache:  opts.Cache,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, authCommand, toolsCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// resolveConfig loads and validates the config named by the command's
// --config flag, with env overrides applied.
func (r *Runner) resolveConfig(cmd *cli.Command) (*shared.Config, error) {
	config := shared.ResolveConfig(cmd.String("config"))
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v (run 'spotmcp config init' or set SPOTIFY_CLIENT_ID)", shared.ErrInvalidConfig, err)
	}
	return config, nil
}

// tokenCache returns the cache injected for tests, or the default one
// under the user's config directory.
func (r *Runner) tokenCache() (*session.TokenCache, error) {
	if r.cache != nil {
		return r.cache, nil
	}
	return session.DefaultTokenCache()
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
