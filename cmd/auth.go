package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotmcp/internal/session"
	"github.com/desertthunder/spotmcp/internal/shared"
)

// AuthLogin runs the browser authorization flow and caches the token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	cache, err := r.tokenCache()
	if err != nil {
		return fmt.Errorf("locating token cache: %w", err)
	}

	if _, err := session.Login(ctx, config, cache, r.logger); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	return r.writePlain("✓ Authorization complete, token cached at %s\n", cache.Path())
}

// AuthStatus reports whether a cached token exists and verifies it
// against Spotify when one does.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	cache, err := r.tokenCache()
	if err != nil {
		return fmt.Errorf("locating token cache: %w", err)
	}

	token, err := cache.Load()
	if err != nil {
		return fmt.Errorf("reading token cache: %w", err)
	}
	if token == nil {
		return r.writePlain("✗ Not authenticated (no cached token at %s)\n", cache.Path())
	}

	provider := session.NewProvider(config, cache, r.logger)
	provider.Initialize(ctx)
	if _, available := provider.Client(); !available {
		return r.writePlain("✗ Cached token at %s is not usable, run 'spotmcp auth login'\n", cache.Path())
	}

	return r.writePlain("✓ Authenticated, token cached at %s\n", cache.Path())
}

// AuthLogout deletes the cached token.
func (r *Runner) AuthLogout(_ context.Context, _ *cli.Command) error {
	cache, err := r.tokenCache()
	if err != nil {
		return fmt.Errorf("locating token cache: %w", err)
	}

	if err := cache.Delete(); err != nil {
		return fmt.Errorf("deleting token cache: %w", err)
	}

	return r.writePlain("✓ Logged out, removed %s\n", cache.Path())
}

// ConfigInit writes the starter configuration file.
func (r *Runner) ConfigInit(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("wrote config file", "path", path)
	return r.writePlain("✓ Created %s, fill in your Spotify client ID\n", path)
}
