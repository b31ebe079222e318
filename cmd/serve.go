package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotmcp/internal/mcp"
	"github.com/desertthunder/spotmcp/internal/session"
	"github.com/desertthunder/spotmcp/internal/shared"
	"github.com/desertthunder/spotmcp/internal/tools"
)

// Serve establishes the Spotify session and runs the MCP server over
// stdio. Without a usable cached token it exits before serving, so the
// client sees a startup failure instead of a wall of auth errors.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	cache, err := r.tokenCache()
	if err != nil {
		return fmt.Errorf("locating token cache: %w", err)
	}

	provider := session.NewProvider(config, cache, r.logger)
	provider.Initialize(ctx)

	if _, available := provider.Client(); !available {
		return fmt.Errorf("%w: run 'spotmcp auth login' first", shared.ErrNotAuthenticated)
	}

	server := mcp.NewServer(
		tools.NewRegistry(provider),
		mcp.ServerInfo{Name: config.Server.Name, Version: version},
		r.logger,
	)

	r.logger.Info("serving MCP over stdio", "server", config.Server.Name)
	return server.Run(ctx, os.Stdin, os.Stdout)
}

// ListTools prints the catalog without touching Spotify.
func (r *Runner) ListTools(_ context.Context, _ *cli.Command) error {
	registry := tools.NewRegistry(session.Unavailable())
	for _, tool := range registry.Tools() {
		if err := r.writePlain("%s\n    %s\n", tool.Name, tool.Description); err != nil {
			return err
		}
	}
	return nil
}
