package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"

	"github.com/desertthunder/spotmcp/internal/shared"
)

const callbackTimeout = 2 * time.Minute

// Login runs the interactive authorization code + PKCE flow: it starts a
// loopback callback server, opens the authorization URL in the browser,
// exchanges the returned code, and saves the token to the cache.
//
// This is the only part of the program that talks to the account-level
// authorization endpoints; the serving process consumes the cached token.
func Login(ctx context.Context, config *shared.Config, cache *TokenCache, logger *log.Logger) (*oauth2.Token, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	redirect, err := url.Parse(config.Credentials.Spotify.RedirectURI)
	if err != nil {
		return nil, fmt.Errorf("invalid redirect URI: %w", err)
	}

	auth := NewAuthenticator(config)
	state := shared.GenerateID()
	verifier := oauth2.GenerateVerifier()

	tokenCh := make(chan *oauth2.Token, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "State mismatch", http.StatusBadRequest)
			errCh <- shared.ErrStateMismatch
			return
		}

		if errMsg := r.URL.Query().Get("error"); errMsg != "" {
			http.Error(w, "Authentication failed: "+errMsg, http.StatusBadRequest)
			errCh <- fmt.Errorf("%w: %s", shared.ErrAuthFailed, errMsg)
			return
		}

		token, err := auth.Token(r.Context(), state, r, oauth2.VerifierOption(verifier))
		if err != nil {
			http.Error(w, "Failed to get token", http.StatusInternalServerError)
			errCh <- fmt.Errorf("exchanging code for token: %w", err)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Authentication Successful</title></head>
<body>
<h1>Authentication Successful!</h1>
<p>You can close this window and return to the terminal.</p>
</body>
</html>`)

		tokenCh <- token
	})

	server := &http.Server{Addr: redirect.Host, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("callback server error: %w", err)
		}
	}()

	authURL := auth.AuthURL(state, oauth2.S256ChallengeOption(verifier))
	logger.Info("waiting for authorization in browser", "url", authURL)
	if err := shared.OpenBrowser(authURL); err != nil {
		logger.Warn("could not open browser, visit the URL manually", "err", err)
	}

	var token *oauth2.Token
	select {
	case token = <-tokenCh:
	case err := <-errCh:
		shutdown(server)
		return nil, err
	case <-time.After(callbackTimeout):
		shutdown(server)
		return nil, shared.ErrTimeout
	case <-ctx.Done():
		shutdown(server)
		return nil, ctx.Err()
	}

	shutdown(server)

	if err := cache.Save(token); err != nil {
		// Auth itself succeeded; the next run just has to log in again.
		logger.Warn("failed to cache token", "err", err)
	}

	return token, nil
}

func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
