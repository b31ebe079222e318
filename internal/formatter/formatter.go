// package formatter renders Spotify entities as deterministic text blocks.
//
// All functions are pure: they take decoded API payloads and return strings,
// never performing I/O. Display rules applied consistently: lists are
// 1-indexed in upstream order, artist and genre lists join with ", ",
// genres truncate to the first three, follower counts carry thousands
// separators, and every entity with both a name and an opaque ID/URI
// surfaces both with the ID/URI quoted so callers can extract it.
package formatter

import (
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	maxGenres       = 3
	maxQueueDisplay = 50
	maxTopTracks    = 20
)

var numberPrinter = message.NewPrinter(language.English)

// Count renders an integer with locale thousands separators ("1,234,567").
func Count(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// ArtistNames joins the names of the given artists with ", ".
func ArtistNames(artists []spotify.SimpleArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// Genres joins up to the first three genres, or reports their absence.
func Genres(genres []string) string {
	if len(genres) == 0 {
		return "No genres"
	}
	if len(genres) > maxGenres {
		genres = genres[:maxGenres]
	}
	return strings.Join(genres, ", ")
}

// TimeRangeLabel maps a listening-affinity time range to its human label.
// Unrecognized values are echoed back unchanged.
func TimeRangeLabel(timeRange string) string {
	switch timeRange {
	case "short_term":
		return "last 4 weeks"
	case "medium_term":
		return "last 6 months"
	case "long_term":
		return "all time"
	default:
		return timeRange
	}
}

// PlaylistList renders the current user's playlists with their totals.
func PlaylistList(page *spotify.SimplePlaylistPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found a total of %d playlists.\n\n", int(page.Total))
	for _, p := range page.Playlists {
		fmt.Fprintf(&b, "Playlist Name: %s, Total tracks in this playlist: %d tracks.\n", p.Name, int(p.Tracks.Total))
		fmt.Fprintf(&b, "ID of the playlist: `%s`\n---\n", p.ID)
	}
	return b.String()
}

// PlaylistMatches renders name-search matches, or an explicit no-match line.
func PlaylistMatches(name string, matches []spotify.SimplePlaylist) string {
	if len(matches) == 0 {
		return fmt.Sprintf("No playlist found matching name '%s'", name)
	}

	var b strings.Builder
	for _, p := range matches {
		fmt.Fprintf(&b, "Found playlist: %s with ID: `%s`\n", p.Name, p.ID)
	}
	return b.String()
}

// PlaylistTracks renders playlist metadata followed by its numbered tracks.
// Items without a track reference (local or unavailable tracks) are skipped
// without leaving gaps in the numbering.
func PlaylistTracks(playlist *spotify.FullPlaylist, items []spotify.PlaylistItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Playlist Name: %s\n", playlist.Name)
	fmt.Fprintf(&b, "Playlist Description: %s\n---\n", playlist.Description)
	b.WriteString("Playlist Tracks:\n---\n")

	n := 0
	for _, item := range items {
		track := item.Track.Track
		if track == nil {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. Track: %s, Artists: %s.\n", n, track.Name, ArtistNames(track.Artists))
	}
	return b.String()
}

// CurrentPlayback renders the active device and current item. Either fact
// may be absent independently of the other.
func CurrentPlayback(state *spotify.PlayerState) string {
	var b strings.Builder

	if state.Device.ID != "" && state.Device.Active {
		fmt.Fprintf(&b, "Current active device ID: '%s'\n", state.Device.ID)
	} else {
		b.WriteString("No active device\n")
	}

	if state.Item != nil {
		fmt.Fprintf(&b, "Current playback item: %s, Artists: %s.\n", state.Item.Name, ArtistNames(state.Item.Artists))
	} else {
		b.WriteString("No item in playback currently\n")
	}

	return b.String()
}

// Queue renders the now-playing track and up to 50 upcoming entries.
func Queue(queue *spotify.Queue) string {
	var b strings.Builder
	b.WriteString("Current queue:\n\n")

	if queue.CurrentlyPlaying.ID != "" {
		now := queue.CurrentlyPlaying
		fmt.Fprintf(&b, "Now playing: %s, Artists: %s, URI: '%s'.\n\n", now.Name, ArtistNames(now.Artists), now.URI)
	}

	if len(queue.Items) == 0 {
		b.WriteString("Queue is empty")
		return b.String()
	}

	b.WriteString("Up next:\n")
	items := queue.Items
	if len(items) > maxQueueDisplay {
		items = items[:maxQueueDisplay]
	}
	for i, track := range items {
		fmt.Fprintf(&b, "%d. Track: %s, Artists: %s, URI: '%s'.\n", i+1, track.Name, ArtistNames(track.Artists), track.URI)
	}
	return b.String()
}

// SearchResults renders per-kind result sections in the requested kind
// order. Kinds with zero matches are omitted entirely; if every requested
// kind is empty the whole report collapses to a single no-results line.
func SearchResults(query string, kinds []string, results *spotify.SearchResult) string {
	var b strings.Builder
	empty := true

	for _, kind := range kinds {
		switch kind {
		case "track":
			if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
				continue
			}
			empty = false
			b.WriteString("TRACKS:\n")
			for i, track := range results.Tracks.Tracks {
				fmt.Fprintf(&b, "%d. Track: %s, Artists: %s, URI: '%s'\n", i+1, track.Name, ArtistNames(track.Artists), track.URI)
			}
			b.WriteString("\n")
		case "artist":
			if results.Artists == nil || len(results.Artists.Artists) == 0 {
				continue
			}
			empty = false
			b.WriteString("ARTISTS:\n")
			for i, artist := range results.Artists.Artists {
				fmt.Fprintf(&b, "%d. Artist: %s (%s followers), URI: '%s'\n", i+1, artist.Name, Count(int(artist.Followers.Count)), artist.URI)
			}
			b.WriteString("\n")
		case "album":
			if results.Albums == nil || len(results.Albums.Albums) == 0 {
				continue
			}
			empty = false
			b.WriteString("ALBUMS:\n")
			for i, album := range results.Albums.Albums {
				fmt.Fprintf(&b, "%d. Album: %s, Artists: %s, URI: '%s'\n", i+1, album.Name, ArtistNames(album.Artists), album.URI)
			}
			b.WriteString("\n")
		case "playlist":
			if results.Playlists == nil || len(results.Playlists.Playlists) == 0 {
				continue
			}
			empty = false
			b.WriteString("PLAYLISTS:\n")
			for i, playlist := range results.Playlists.Playlists {
				fmt.Fprintf(&b, "%d. %s by %s, URI: '%s', ID: '%s'\n", i+1, playlist.Name, playlist.Owner.DisplayName, playlist.URI, playlist.ID)
			}
			b.WriteString("\n")
		}
	}

	if empty {
		return fmt.Sprintf("No results found for '%s'", query)
	}
	return fmt.Sprintf("Search results for '%s':\n\n%s", query, b.String())
}

// Album renders album metadata followed by its numbered track list.
func Album(album *spotify.FullAlbum) string {
	var b strings.Builder
	b.WriteString("Spotify album:\n")
	fmt.Fprintf(&b, "Album Name: %s, Release Date: %s\n", album.Name, album.ReleaseDate)
	fmt.Fprintf(&b, "Album URI: %s, Album ID: %s\n", album.URI, album.ID)
	fmt.Fprintf(&b, "Artists: %s\n\n", ArtistNames(album.Artists))

	b.WriteString("Tracks:\n")
	for i, track := range album.Tracks.Tracks {
		fmt.Fprintf(&b, "%d. Track: %s, Artists: %s, ID: '%s', URI: '%s'.\n", i+1, track.Name, ArtistNames(track.Artists), track.ID, track.URI)
	}
	return b.String()
}

// Artist renders a single artist's profile line.
func Artist(artist *spotify.FullArtist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Artist Name: %s, Followers: %s.\n", artist.Name, Count(int(artist.Followers.Count)))
	fmt.Fprintf(&b, "Popularity: %d\n", int(artist.Popularity))
	fmt.Fprintf(&b, "URI: %s", artist.URI)
	return b.String()
}

// ArtistAlbums renders an artist's albums with release metadata, annotating
// each entry with any contributing artists other than the queried one.
func ArtistAlbums(artistName string, page *spotify.SimpleAlbumPage, offset int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Albums by %s (showing %d of %d total):\n\n", artistName, len(page.Albums), int(page.Total))

	for i, album := range page.Albums {
		var others []string
		for _, a := range album.Artists {
			if a.Name != artistName {
				others = append(others, a.Name)
			}
		}

		fmt.Fprintf(&b, "%d. %s", i+1, album.Name)
		if len(others) > 0 {
			fmt.Fprintf(&b, " (with %s)", strings.Join(others, ", "))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "Type: %s | Release: %s | Tracks: %d\n", capitalize(album.AlbumType), album.ReleaseDate, int(album.TotalTracks))
		fmt.Fprintf(&b, "URI: '%s' | ID: '%s'\n\n", album.URI, album.ID)
	}

	if remaining := int(page.Total) - len(page.Albums) - offset; remaining > 0 {
		fmt.Fprintf(&b, "... and %d more albums (use the offset parameter to see more)", remaining)
	}
	return b.String()
}

// ArtistTopTracks renders up to 20 of an artist's top tracks.
func ArtistTopTracks(tracks []spotify.FullTrack) string {
	if len(tracks) > maxTopTracks {
		tracks = tracks[:maxTopTracks]
	}

	var b strings.Builder
	for i, track := range tracks {
		fmt.Fprintf(&b, "%d. Track: %s, Artists: %s, URI: '%s'.\n", i+1, track.Name, ArtistNames(track.Artists), track.URI)
	}
	return b.String()
}

// UserProfile renders the current user's profile.
func UserProfile(user *spotify.PrivateUser) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Username: '%s', Email: %s, Country code: %s\n", user.DisplayName, user.Email, user.Country)
	fmt.Fprintf(&b, "User ID: '%s', URI: '%s'\n", user.ID, user.URI)
	return b.String()
}

// TopArtists renders the user's top artists for the labeled time range.
func TopArtists(label string, artists []spotify.FullArtist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your top %d artists (%s):\n\n", len(artists), label)
	for i, artist := range artists {
		fmt.Fprintf(&b, "%d. %s\n", i+1, artist.Name)
		fmt.Fprintf(&b, "Popularity: %d/100 | Followers: %s\n", int(artist.Popularity), Count(int(artist.Followers.Count)))
		fmt.Fprintf(&b, "Genres: %s\n", Genres(artist.Genres))
		fmt.Fprintf(&b, "URI: `%s`\n---\n", artist.URI)
	}
	return b.String()
}

// TopTracks renders the user's top tracks for the labeled time range.
func TopTracks(label string, tracks []spotify.FullTrack) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your top %d tracks (%s):\n\n", len(tracks), label)
	for i, track := range tracks {
		fmt.Fprintf(&b, "%d. %s by %s\n", i+1, track.Name, ArtistNames(track.Artists))
		fmt.Fprintf(&b, "Album: %s, Popularity: %d/100\n", track.Album.Name, int(track.Popularity))
		fmt.Fprintf(&b, "URI: '%s'\n---\n", track.URI)
	}
	return b.String()
}

// FollowedArtists renders the cursor page of artists the user follows,
// surfacing the next cursor token when more results exist.
func FollowedArtists(page *spotify.FullArtistCursorPage) string {
	if len(page.Artists) == 0 {
		return "You are not following any artists"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The artists you follow (showing %d of %d):\n\n", len(page.Artists), int(page.Total))
	for i, artist := range page.Artists {
		fmt.Fprintf(&b, "%d. Artist: %s, Followers: %s, Genres: %s\n", i+1, artist.Name, Count(int(artist.Followers.Count)), Genres(artist.Genres))
		fmt.Fprintf(&b, "Artist URI: '%s', ID: '%s'\n---\n", artist.URI, artist.ID)
	}

	if page.Cursor.After != "" {
		fmt.Fprintf(&b, "To see more artists, pass after = '%s'\n", page.Cursor.After)
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
