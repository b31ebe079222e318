package formatter

import (
	"strings"
	"testing"

	"github.com/zmb3/spotify/v2"
)

func simpleTrack(id, name string, artists ...string) spotify.SimpleTrack {
	sa := make([]spotify.SimpleArtist, len(artists))
	for i, a := range artists {
		sa[i] = spotify.SimpleArtist{Name: a}
	}
	return spotify.SimpleTrack{
		ID:      spotify.ID(id),
		Name:    name,
		Artists: sa,
		URI:     spotify.URI("spotify:track:" + id),
	}
}

func fullTrack(id, name string, artists ...string) spotify.FullTrack {
	return spotify.FullTrack{SimpleTrack: simpleTrack(id, name, artists...)}
}

func TestCount(t *testing.T) {
	tc := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tc {
		if got := Count(tt.n); got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestArtistNames(t *testing.T) {
	artists := []spotify.SimpleArtist{{Name: "Artist A"}, {Name: "Artist B"}, {Name: "Artist C"}}
	if got := ArtistNames(artists); got != "Artist A, Artist B, Artist C" {
		t.Errorf("ArtistNames() = %q", got)
	}

	if got := ArtistNames(nil); got != "" {
		t.Errorf("ArtistNames(nil) = %q, want empty", got)
	}
}

func TestGenres(t *testing.T) {
	tc := []struct {
		name   string
		genres []string
		want   string
	}{
		{"empty", nil, "No genres"},
		{"under limit", []string{"jazz", "bebop"}, "jazz, bebop"},
		{"truncated to three", []string{"jazz", "bebop", "swing", "fusion", "cool jazz"}, "jazz, bebop, swing"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := Genres(tt.genres); got != tt.want {
				t.Errorf("Genres() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeRangeLabel(t *testing.T) {
	tc := []struct {
		in   string
		want string
	}{
		{"short_term", "last 4 weeks"},
		{"medium_term", "last 6 months"},
		{"long_term", "all time"},
		{"bogus_range", "bogus_range"},
	}

	for _, tt := range tc {
		if got := TimeRangeLabel(tt.in); got != tt.want {
			t.Errorf("TimeRangeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlaylistTracks(t *testing.T) {
	t.Run("skips null tracks without renumbering gaps", func(t *testing.T) {
		one := fullTrack("t1", "First Song", "Artist One")
		two := fullTrack("t3", "Second Song", "Artist Two")
		items := []spotify.PlaylistItem{
			{Track: spotify.PlaylistItemTrack{Track: &one}},
			{Track: spotify.PlaylistItemTrack{Track: nil}}, // local track
			{Track: spotify.PlaylistItemTrack{Track: &two}},
		}
		playlist := &spotify.FullPlaylist{
			SimplePlaylist: spotify.SimplePlaylist{Name: "Mix", Description: "test playlist"},
		}

		got := PlaylistTracks(playlist, items)

		if !strings.Contains(got, "1. Track: First Song") {
			t.Errorf("missing first track, got:\n%s", got)
		}
		if !strings.Contains(got, "2. Track: Second Song") {
			t.Errorf("second valid track should be numbered 2, got:\n%s", got)
		}
		if strings.Contains(got, "3.") {
			t.Errorf("numbering should not skip to 3, got:\n%s", got)
		}
	})
}

func TestCurrentPlayback(t *testing.T) {
	track := fullTrack("t1", "Playing Now", "Artist One")

	tc := []struct {
		name     string
		state    *spotify.PlayerState
		contains []string
		excludes []string
	}{
		{
			name: "active device and item",
			state: &spotify.PlayerState{
				Device:           spotify.PlayerDevice{ID: "dev1", Active: true},
				CurrentlyPlaying: spotify.CurrentlyPlaying{Item: &track},
			},
			contains: []string{"Current active device ID: 'dev1'", "Playing Now"},
		},
		{
			name: "inactive device",
			state: &spotify.PlayerState{
				Device:           spotify.PlayerDevice{ID: "dev1", Active: false},
				CurrentlyPlaying: spotify.CurrentlyPlaying{Item: &track},
			},
			contains: []string{"No active device", "Playing Now"},
			excludes: []string{"Current active device ID"},
		},
		{
			name:     "no device and no item",
			state:    &spotify.PlayerState{},
			contains: []string{"No active device", "No item in playback currently"},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPlayback(tt.state)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q, got:\n%s", want, got)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q, got:\n%s", not, got)
				}
			}
		})
	}
}

func TestQueue(t *testing.T) {
	t.Run("empty queue", func(t *testing.T) {
		got := Queue(&spotify.Queue{})
		if !strings.Contains(got, "Queue is empty") {
			t.Errorf("expected empty queue message, got:\n%s", got)
		}
	})

	t.Run("caps display at 50 entries", func(t *testing.T) {
		queue := &spotify.Queue{CurrentlyPlaying: fullTrack("now", "Now Playing", "Artist")}
		for i := 0; i < 60; i++ {
			queue.Items = append(queue.Items, fullTrack("t", "Queued Song", "Artist"))
		}

		got := Queue(queue)

		if !strings.Contains(got, "Now playing: Now Playing") {
			t.Errorf("missing now-playing line, got:\n%s", got)
		}
		if !strings.Contains(got, "50. Track:") {
			t.Errorf("expected 50th entry, got:\n%s", got)
		}
		if strings.Contains(got, "51. Track:") {
			t.Errorf("should cap at 50 entries, got:\n%s", got)
		}
	})
}

func TestSearchResults(t *testing.T) {
	allKinds := []string{"track", "artist", "album", "playlist"}

	t.Run("all kinds empty collapses to single message", func(t *testing.T) {
		results := &spotify.SearchResult{
			Tracks:    &spotify.FullTrackPage{},
			Artists:   &spotify.FullArtistPage{},
			Albums:    &spotify.SimpleAlbumPage{},
			Playlists: &spotify.SimplePlaylistPage{},
		}

		got := SearchResults("obscure query", allKinds, results)

		if got != "No results found for 'obscure query'" {
			t.Errorf("expected bare no-results message, got:\n%s", got)
		}
	})

	t.Run("renders only non-empty kinds", func(t *testing.T) {
		results := &spotify.SearchResult{
			Tracks: &spotify.FullTrackPage{Tracks: []spotify.FullTrack{fullTrack("t1", "Hit Song", "Artist One")}},
			Artists: &spotify.FullArtistPage{Artists: []spotify.FullArtist{{
				SimpleArtist: spotify.SimpleArtist{Name: "Big Artist", URI: "spotify:artist:a1"},
				Followers:    spotify.Followers{Count: 1234567},
			}}},
		}

		got := SearchResults("hit", allKinds, results)

		if !strings.Contains(got, "Search results for 'hit':") {
			t.Errorf("missing header, got:\n%s", got)
		}
		if !strings.Contains(got, "TRACKS:") || !strings.Contains(got, "ARTISTS:") {
			t.Errorf("missing sections, got:\n%s", got)
		}
		if strings.Contains(got, "ALBUMS:") || strings.Contains(got, "PLAYLISTS:") {
			t.Errorf("empty kinds should be omitted, got:\n%s", got)
		}
		if !strings.Contains(got, "1,234,567 followers") {
			t.Errorf("follower count should use thousands separators, got:\n%s", got)
		}
	})

	t.Run("deterministic across invocations", func(t *testing.T) {
		results := &spotify.SearchResult{
			Tracks: &spotify.FullTrackPage{Tracks: []spotify.FullTrack{fullTrack("t1", "Hit Song", "A", "B")}},
		}

		first := SearchResults("hit", allKinds, results)
		second := SearchResults("hit", allKinds, results)

		if first != second {
			t.Error("identical inputs should produce byte-identical output")
		}
	})
}

func TestArtist(t *testing.T) {
	artist := &spotify.FullArtist{
		SimpleArtist: spotify.SimpleArtist{Name: "Big Artist", URI: "spotify:artist:a1"},
		Followers:    spotify.Followers{Count: 1234567},
		Popularity:   87,
	}

	got := Artist(artist)

	if !strings.Contains(got, "Followers: 1,234,567.") {
		t.Errorf("expected separated follower count, got:\n%s", got)
	}
	if !strings.Contains(got, "Popularity: 87") {
		t.Errorf("missing popularity, got:\n%s", got)
	}
	if !strings.Contains(got, "URI: spotify:artist:a1") {
		t.Errorf("missing URI, got:\n%s", got)
	}
}

func TestArtistAlbums(t *testing.T) {
	page := &spotify.SimpleAlbumPage{
		Albums: []spotify.SimpleAlbum{
			{
				ID:        "al1",
				Name:      "Solo Album",
				AlbumType: "album",
				Artists:   []spotify.SimpleArtist{{Name: "Queried Artist"}},
			},
			{
				ID:        "al2",
				Name:      "Collab Album",
				AlbumType: "single",
				Artists: []spotify.SimpleArtist{
					{Name: "Queried Artist"},
					{Name: "Guest One"},
					{Name: "Guest Two"},
				},
			},
		},
	}
	page.Total = 10

	got := ArtistAlbums("Queried Artist", page, 0)

	if !strings.Contains(got, "Albums by Queried Artist (showing 2 of 10 total):") {
		t.Errorf("missing header, got:\n%s", got)
	}
	if !strings.Contains(got, "2. Collab Album (with Guest One, Guest Two)") {
		t.Errorf("collaborators should be annotated, got:\n%s", got)
	}
	if strings.Contains(got, "1. Solo Album (with") {
		t.Errorf("solo album should have no collaborator note, got:\n%s", got)
	}
	if !strings.Contains(got, "... and 8 more albums") {
		t.Errorf("missing pagination hint, got:\n%s", got)
	}
}

func TestArtistTopTracks(t *testing.T) {
	var tracks []spotify.FullTrack
	for i := 0; i < 25; i++ {
		tracks = append(tracks, fullTrack("t", "Top Song", "Artist"))
	}

	got := ArtistTopTracks(tracks)

	if !strings.Contains(got, "20. Track:") {
		t.Errorf("expected 20th entry, got:\n%s", got)
	}
	if strings.Contains(got, "21. Track:") {
		t.Errorf("should cap at 20 entries, got:\n%s", got)
	}
}

func TestUserProfile(t *testing.T) {
	user := &spotify.PrivateUser{
		User: spotify.User{
			DisplayName: "Test User",
			ID:          "user123",
			URI:         "spotify:user:user123",
		},
		Email:   "test@example.com",
		Country: "US",
	}

	got := UserProfile(user)

	for _, want := range []string{"Username: 'Test User'", "Email: test@example.com", "Country code: US", "User ID: 'user123'", "URI: 'spotify:user:user123'"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}
}

func TestTopArtists(t *testing.T) {
	artists := []spotify.FullArtist{{
		SimpleArtist: spotify.SimpleArtist{Name: "Artist One", URI: "spotify:artist:a1"},
		Followers:    spotify.Followers{Count: 5000},
		Genres:       []string{"g1", "g2", "g3", "g4", "g5"},
		Popularity:   70,
	}}

	got := TopArtists("last 4 weeks", artists)

	if !strings.Contains(got, "Your top 1 artists (last 4 weeks):") {
		t.Errorf("missing labeled header, got:\n%s", got)
	}
	if !strings.Contains(got, "Genres: g1, g2, g3\n") {
		t.Errorf("genres should truncate to three, got:\n%s", got)
	}
	if !strings.Contains(got, "Followers: 5,000") {
		t.Errorf("missing follower formatting, got:\n%s", got)
	}
}

func TestFollowedArtists(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := FollowedArtists(&spotify.FullArtistCursorPage{})
		if got != "You are not following any artists" {
			t.Errorf("expected explicit empty message, got:\n%s", got)
		}
	})

	t.Run("with next cursor", func(t *testing.T) {
		page := &spotify.FullArtistCursorPage{
			Artists: []spotify.FullArtist{{
				SimpleArtist: spotify.SimpleArtist{ID: "a1", Name: "Artist One", URI: "spotify:artist:a1"},
				Followers:    spotify.Followers{Count: 42},
			}},
		}
		page.Cursor = spotify.Cursor{After: "a1"}
		page.Total = 5

		got := FollowedArtists(page)

		if !strings.Contains(got, "showing 1 of 5") {
			t.Errorf("missing totals, got:\n%s", got)
		}
		if !strings.Contains(got, "pass after = 'a1'") {
			t.Errorf("missing next cursor hint, got:\n%s", got)
		}
	})
}

func TestAlbum(t *testing.T) {
	album := &spotify.FullAlbum{
		SimpleAlbum: spotify.SimpleAlbum{
			ID:          "al1",
			Name:        "Great Album",
			URI:         "spotify:album:al1",
			ReleaseDate: "2020-06-01",
			Artists:     []spotify.SimpleArtist{{Name: "Artist One"}},
		},
		Tracks: spotify.SimpleTrackPage{
			Tracks: []spotify.SimpleTrack{
				simpleTrack("t1", "Opener", "Artist One"),
				simpleTrack("t2", "Closer", "Artist One", "Guest"),
			},
		},
	}

	got := Album(album)

	if !strings.Contains(got, "Album Name: Great Album, Release Date: 2020-06-01") {
		t.Errorf("missing album header, got:\n%s", got)
	}
	if !strings.Contains(got, "1. Track: Opener") || !strings.Contains(got, "2. Track: Closer") {
		t.Errorf("tracks should be numbered in upstream order, got:\n%s", got)
	}
	if !strings.Contains(got, "Artists: Artist One, Guest") {
		t.Errorf("multi-artist join missing, got:\n%s", got)
	}
}
