// package session owns the single authenticated Spotify session handle.
//
// A [Provider] is initialized once at process start from a cached OAuth
// token and never refreshed by the rest of the program. Operation handlers
// consume it exclusively through [Provider.Client]; an absent handle is a
// terminal state until the process restarts.
package session

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"

	"github.com/desertthunder/spotmcp/internal/shared"
)

// Scopes is the full permission superset needed by the tool catalog. The
// session is authorized once for everything so individual tools never have
// to renegotiate.
var Scopes = []string{
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistModifyPrivate,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopeUserModifyPlaybackState,
	spotifyauth.ScopeUserLibraryRead,
	spotifyauth.ScopeUserLibraryModify,
	spotifyauth.ScopeUserTopRead,
	spotifyauth.ScopeUserFollowRead,
	spotifyauth.ScopeUserReadPrivate,
	spotifyauth.ScopeUserReadEmail,
}

// Client is the slice of the Spotify Web API that operation handlers use.
// *spotify.Client satisfies it; tests substitute doubles with call counters.
type Client interface {
	CurrentUser(ctx context.Context) (*spotify.PrivateUser, error)
	CurrentUsersPlaylists(ctx context.Context, opts ...spotify.RequestOption) (*spotify.SimplePlaylistPage, error)
	GetPlaylist(ctx context.Context, playlistID spotify.ID, opts ...spotify.RequestOption) (*spotify.FullPlaylist, error)
	GetPlaylistItems(ctx context.Context, playlistID spotify.ID, opts ...spotify.RequestOption) (*spotify.PlaylistItemPage, error)
	CreatePlaylistForUser(ctx context.Context, userID, playlistName, description string, public bool, collaborative bool) (*spotify.FullPlaylist, error)
	AddTracksToPlaylist(ctx context.Context, playlistID spotify.ID, trackIDs ...spotify.ID) (string, error)
	RemoveTracksFromPlaylist(ctx context.Context, playlistID spotify.ID, trackIDs ...spotify.ID) (string, error)
	RemoveTracksFromPlaylistOpt(ctx context.Context, playlistID spotify.ID, tracks []spotify.TrackToRemove, snapshotID string) (string, error)
	PlayerState(ctx context.Context, opts ...spotify.RequestOption) (*spotify.PlayerState, error)
	GetQueue(ctx context.Context) (*spotify.Queue, error)
	QueueSongOpt(ctx context.Context, trackID spotify.ID, opt *spotify.PlayOptions) error
	PauseOpt(ctx context.Context, opt *spotify.PlayOptions) error
	NextOpt(ctx context.Context, opt *spotify.PlayOptions) error
	PreviousOpt(ctx context.Context, opt *spotify.PlayOptions) error
	PlayOpt(ctx context.Context, opt *spotify.PlayOptions) error
	Search(ctx context.Context, query string, t spotify.SearchType, opts ...spotify.RequestOption) (*spotify.SearchResult, error)
	GetAlbum(ctx context.Context, id spotify.ID, opts ...spotify.RequestOption) (*spotify.FullAlbum, error)
	GetArtist(ctx context.Context, id spotify.ID) (*spotify.FullArtist, error)
	GetArtistAlbums(ctx context.Context, artistID spotify.ID, ts []spotify.AlbumType, opts ...spotify.RequestOption) (*spotify.SimpleAlbumPage, error)
	GetArtistsTopTracks(ctx context.Context, artistID spotify.ID, country string) ([]spotify.FullTrack, error)
	CurrentUsersTopArtists(ctx context.Context, opts ...spotify.RequestOption) (*spotify.FullArtistPage, error)
	CurrentUsersTopTracks(ctx context.Context, opts ...spotify.RequestOption) (*spotify.FullTrackPage, error)
	CurrentUsersFollowedArtists(ctx context.Context, opts ...spotify.RequestOption) (*spotify.FullArtistCursorPage, error)
}

// Source yields the shared session handle, or reports it unavailable.
// Handlers depend on this narrow interface so tests can inject doubles.
type Source interface {
	Client() (Client, bool)
}

type unavailableSource struct{}

func (unavailableSource) Client() (Client, bool) { return nil, false }

// Unavailable returns a Source that never yields a client. Useful for
// inspecting the tool catalog without a session.
func Unavailable() Source {
	return unavailableSource{}
}

// Provider holds the process-wide authenticated client. The handle is
// written once during Initialize and read-only afterwards, which is what
// makes concurrent handler invocations safe without locks.
type Provider struct {
	config *shared.Config
	cache  *TokenCache
	logger *log.Logger
	client Client
}

// NewProvider creates an uninitialized Provider.
func NewProvider(config *shared.Config, cache *TokenCache, logger *log.Logger) *Provider {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Provider{config: config, cache: cache, logger: logger}
}

// Initialize attempts a single authentication handshake from the cached
// token. Failures are logged and leave the provider without a handle; they
// are never propagated, matching the contract that handlers only ever see
// "session available" or "session unavailable".
func (p *Provider) Initialize(ctx context.Context) {
	if err := p.config.Validate(); err != nil {
		p.logger.Error("authentication failed", "err", err)
		return
	}

	token, err := p.cache.Load()
	if err != nil {
		p.logger.Error("authentication failed", "err", err)
		return
	}
	if token == nil {
		p.logger.Error("authentication failed", "err", shared.ErrNoCachedToken,
			"hint", "run `spotmcp auth login` first")
		return
	}

	auth := NewAuthenticator(p.config)
	client := spotify.New(auth.Client(ctx, token), spotify.WithRetry(true))

	// Liveness probe, purely diagnostic.
	user, err := client.CurrentUser(ctx)
	if err != nil {
		p.logger.Error("authentication failed", "err", err)
		return
	}

	p.client = client
	p.logger.Info("authenticated with spotify", "user", user.DisplayName, "id", user.ID)
}

// Client returns the stored handle, or reports unavailability. This is the
// only entry point operation handlers use.
func (p *Provider) Client() (Client, bool) {
	if p.client == nil {
		return nil, false
	}
	return p.client, true
}

// NewAuthenticator builds the spotifyauth Authenticator for the configured
// application identity and the fixed scope set.
func NewAuthenticator(config *shared.Config) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(config.Credentials.Spotify.ClientID),
		spotifyauth.WithRedirectURL(config.Credentials.Spotify.RedirectURI),
		spotifyauth.WithScopes(Scopes...),
	)
}
