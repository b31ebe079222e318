package tools

import (
	"context"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/session"
)

// fakeClient is a call-counting test double for [session.Client]. When err
// is set every method fails with it; otherwise canned payloads are returned.
type fakeClient struct {
	calls map[string]int
	err   error

	user         *spotify.PrivateUser
	playlistPage *spotify.SimplePlaylistPage
	playlist     *spotify.FullPlaylist
	items        *spotify.PlaylistItemPage
	created      *spotify.FullPlaylist
	snapshot     string
	playerState  *spotify.PlayerState
	playerQueue  *spotify.Queue
	searchResult *spotify.SearchResult
	album        *spotify.FullAlbum
	artist       *spotify.FullArtist
	artistAlbums *spotify.SimpleAlbumPage
	topOfArtist  []spotify.FullTrack
	topArtists   *spotify.FullArtistPage
	topTracks    *spotify.FullTrackPage
	followed     *spotify.FullArtistCursorPage
}

func (f *fakeClient) record(method string) {
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[method]++
}

func (f *fakeClient) totalCalls() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) CurrentUser(context.Context) (*spotify.PrivateUser, error) {
	f.record("CurrentUser")
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil {
		return &spotify.PrivateUser{User: spotify.User{ID: "user123", DisplayName: "Test User"}}, nil
	}
	return f.user, nil
}

func (f *fakeClient) CurrentUsersPlaylists(context.Context, ...spotify.RequestOption) (*spotify.SimplePlaylistPage, error) {
	f.record("CurrentUsersPlaylists")
	if f.err != nil {
		return nil, f.err
	}
	if f.playlistPage == nil {
		return &spotify.SimplePlaylistPage{}, nil
	}
	return f.playlistPage, nil
}

func (f *fakeClient) GetPlaylist(context.Context, spotify.ID, ...spotify.RequestOption) (*spotify.FullPlaylist, error) {
	f.record("GetPlaylist")
	if f.err != nil {
		return nil, f.err
	}
	if f.playlist == nil {
		return &spotify.FullPlaylist{}, nil
	}
	return f.playlist, nil
}

func (f *fakeClient) GetPlaylistItems(context.Context, spotify.ID, ...spotify.RequestOption) (*spotify.PlaylistItemPage, error) {
	f.record("GetPlaylistItems")
	if f.err != nil {
		return nil, f.err
	}
	if f.items == nil {
		return &spotify.PlaylistItemPage{}, nil
	}
	return f.items, nil
}

func (f *fakeClient) CreatePlaylistForUser(context.Context, string, string, string, bool, bool) (*spotify.FullPlaylist, error) {
	f.record("CreatePlaylistForUser")
	if f.err != nil {
		return nil, f.err
	}
	if f.created == nil {
		return &spotify.FullPlaylist{SimplePlaylist: spotify.SimplePlaylist{ID: "newpl1"}}, nil
	}
	return f.created, nil
}

func (f *fakeClient) AddTracksToPlaylist(context.Context, spotify.ID, ...spotify.ID) (string, error) {
	f.record("AddTracksToPlaylist")
	if f.err != nil {
		return "", f.err
	}
	return f.snapshot, nil
}

func (f *fakeClient) RemoveTracksFromPlaylist(context.Context, spotify.ID, ...spotify.ID) (string, error) {
	f.record("RemoveTracksFromPlaylist")
	if f.err != nil {
		return "", f.err
	}
	return f.snapshot, nil
}

func (f *fakeClient) RemoveTracksFromPlaylistOpt(context.Context, spotify.ID, []spotify.TrackToRemove, string) (string, error) {
	f.record("RemoveTracksFromPlaylistOpt")
	if f.err != nil {
		return "", f.err
	}
	return f.snapshot, nil
}

func (f *fakeClient) PlayerState(context.Context, ...spotify.RequestOption) (*spotify.PlayerState, error) {
	f.record("PlayerState")
	if f.err != nil {
		return nil, f.err
	}
	if f.playerState == nil {
		return &spotify.PlayerState{}, nil
	}
	return f.playerState, nil
}

func (f *fakeClient) GetQueue(context.Context) (*spotify.Queue, error) {
	f.record("GetQueue")
	if f.err != nil {
		return nil, f.err
	}
	if f.playerQueue == nil {
		return &spotify.Queue{}, nil
	}
	return f.playerQueue, nil
}

func (f *fakeClient) QueueSongOpt(context.Context, spotify.ID, *spotify.PlayOptions) error {
	f.record("QueueSongOpt")
	return f.err
}

func (f *fakeClient) PauseOpt(context.Context, *spotify.PlayOptions) error {
	f.record("PauseOpt")
	return f.err
}

func (f *fakeClient) NextOpt(context.Context, *spotify.PlayOptions) error {
	f.record("NextOpt")
	return f.err
}

func (f *fakeClient) PreviousOpt(context.Context, *spotify.PlayOptions) error {
	f.record("PreviousOpt")
	return f.err
}

func (f *fakeClient) PlayOpt(context.Context, *spotify.PlayOptions) error {
	f.record("PlayOpt")
	return f.err
}

func (f *fakeClient) Search(context.Context, string, spotify.SearchType, ...spotify.RequestOption) (*spotify.SearchResult, error) {
	f.record("Search")
	if f.err != nil {
		return nil, f.err
	}
	if f.searchResult == nil {
		return &spotify.SearchResult{}, nil
	}
	return f.searchResult, nil
}

func (f *fakeClient) GetAlbum(context.Context, spotify.ID, ...spotify.RequestOption) (*spotify.FullAlbum, error) {
	f.record("GetAlbum")
	if f.err != nil {
		return nil, f.err
	}
	if f.album == nil {
		return &spotify.FullAlbum{}, nil
	}
	return f.album, nil
}

func (f *fakeClient) GetArtist(context.Context, spotify.ID) (*spotify.FullArtist, error) {
	f.record("GetArtist")
	if f.err != nil {
		return nil, f.err
	}
	if f.artist == nil {
		return &spotify.FullArtist{SimpleArtist: spotify.SimpleArtist{Name: "Fake Artist"}}, nil
	}
	return f.artist, nil
}

func (f *fakeClient) GetArtistAlbums(context.Context, spotify.ID, []spotify.AlbumType, ...spotify.RequestOption) (*spotify.SimpleAlbumPage, error) {
	f.record("GetArtistAlbums")
	if f.err != nil {
		return nil, f.err
	}
	if f.artistAlbums == nil {
		return &spotify.SimpleAlbumPage{}, nil
	}
	return f.artistAlbums, nil
}

func (f *fakeClient) GetArtistsTopTracks(context.Context, spotify.ID, string) ([]spotify.FullTrack, error) {
	f.record("GetArtistsTopTracks")
	if f.err != nil {
		return nil, f.err
	}
	return f.topOfArtist, nil
}

func (f *fakeClient) CurrentUsersTopArtists(context.Context, ...spotify.RequestOption) (*spotify.FullArtistPage, error) {
	f.record("CurrentUsersTopArtists")
	if f.err != nil {
		return nil, f.err
	}
	if f.topArtists == nil {
		return &spotify.FullArtistPage{}, nil
	}
	return f.topArtists, nil
}

func (f *fakeClient) CurrentUsersTopTracks(context.Context, ...spotify.RequestOption) (*spotify.FullTrackPage, error) {
	f.record("CurrentUsersTopTracks")
	if f.err != nil {
		return nil, f.err
	}
	if f.topTracks == nil {
		return &spotify.FullTrackPage{}, nil
	}
	return f.topTracks, nil
}

func (f *fakeClient) CurrentUsersFollowedArtists(context.Context, ...spotify.RequestOption) (*spotify.FullArtistCursorPage, error) {
	f.record("CurrentUsersFollowedArtists")
	if f.err != nil {
		return nil, f.err
	}
	if f.followed == nil {
		return &spotify.FullArtistCursorPage{}, nil
	}
	return f.followed, nil
}

// stubSource is a [session.Source] test double.
type stubSource struct {
	client    session.Client
	available bool
}

func (s stubSource) Client() (session.Client, bool) {
	if !s.available {
		return nil, false
	}
	return s.client, true
}

func withClient(c session.Client) stubSource {
	return stubSource{client: c, available: true}
}

func noSession() stubSource {
	return stubSource{}
}

func fullTrack(id, name string, artists ...string) spotify.FullTrack {
	sa := make([]spotify.SimpleArtist, len(artists))
	for i, a := range artists {
		sa[i] = spotify.SimpleArtist{Name: a}
	}
	return spotify.FullTrack{SimpleTrack: spotify.SimpleTrack{
		ID:      spotify.ID(id),
		Name:    name,
		Artists: sa,
		URI:     spotify.URI("spotify:track:" + id),
	}}
}
