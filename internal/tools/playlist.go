package tools

import (
	"context"
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/formatter"
	"github.com/desertthunder/spotmcp/internal/session"
)

type playlistGroup struct {
	session session.Source
}

func playlistTools(source session.Source) []Tool {
	g := &playlistGroup{session: source}

	return []Tool{
		{
			Name:        "get_user_playlists",
			Description: "Get the current user's Spotify playlists with their track counts and IDs.",
			Schema: objectSchema(map[string]any{
				"limit":      intProp("Number of playlists to retrieve (default: 20)"),
				"owned_only": boolProp("Only include playlists owned by the current user (default: false)"),
			}),
			Handler: g.userPlaylists,
		},
		{
			Name:        "get_playlist_id_by_name",
			Description: "Find playlist IDs by name using a case-insensitive substring match over the user's playlists. If the playlist is not found, increase the limit to widen the search window.",
			Schema: objectSchema(map[string]any{
				"name":  stringProp("Name of the playlist to search for"),
				"limit": intProp("Number of the user's playlists to match against (default: 50)"),
			}, "name"),
			Handler: g.playlistIDByName,
		},
		{
			Name:        "get_playlist_tracks",
			Description: "Get the tracks of a specific playlist along with its name and description.",
			Schema: objectSchema(map[string]any{
				"playlist_id": stringProp("Spotify playlist ID"),
				"limit":       intProp("Number of tracks to retrieve (default: 50)"),
			}, "playlist_id"),
			Handler: g.playlistTracks,
		},
		{
			Name:        "create_playlist",
			Description: "Create a new playlist for the current user and return its ID.",
			Schema: objectSchema(map[string]any{
				"name":        stringProp("Name of the playlist"),
				"description": stringProp("Playlist description (optional)"),
				"public":      boolProp("Whether the playlist should be public (default: true)"),
			}, "name"),
			Handler: g.createPlaylist,
		},
		{
			Name:        "add_tracks_to_playlist",
			Description: "Add tracks to a playlist by URI or ID. Returns the playlist's new snapshot ID.",
			Schema: objectSchema(map[string]any{
				"playlist_id": stringProp("Spotify playlist ID"),
				"uris":        stringArrayProp("Track URIs or IDs to add"),
			}, "playlist_id", "uris"),
			Handler: g.addTracks,
		},
		{
			Name:        "remove_tracks_from_playlist",
			Description: "Remove tracks from a playlist by URI or ID. Returns the playlist's new snapshot ID.",
			Schema: objectSchema(map[string]any{
				"playlist_id": stringProp("Spotify playlist ID"),
				"uris":        stringArrayProp("Track URIs or IDs to remove"),
				"snapshot_id": stringProp("Playlist snapshot ID to apply the removal against (optional)"),
			}, "playlist_id", "uris"),
			Handler: g.removeTracks,
		},
	}
}

func (g *playlistGroup) userPlaylists(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	limit := args.Int("limit", 20)

	page, err := client.CurrentUsersPlaylists(ctx, spotify.Limit(limit))
	if err != nil {
		return upstreamFailure("fetching playlists", err)
	}

	if args.Bool("owned_only", false) {
		user, err := client.CurrentUser(ctx)
		if err != nil {
			return upstreamFailure("fetching current user", err)
		}

		owned := page.Playlists[:0]
		for _, p := range page.Playlists {
			if p.Owner.ID == user.ID {
				owned = append(owned, p)
			}
		}
		page.Playlists = owned
		page.Total = spotify.Numeric(len(owned))
	}

	return ok(formatter.PlaylistList(page))
}

func (g *playlistGroup) playlistIDByName(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	name := args.String("name", "")
	limit := args.Int("limit", 50)

	page, err := client.CurrentUsersPlaylists(ctx, spotify.Limit(limit))
	if err != nil {
		return upstreamFailure("searching playlists", err)
	}

	var matches []spotify.SimplePlaylist
	for _, p := range page.Playlists {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			matches = append(matches, p)
		}
	}

	return ok(formatter.PlaylistMatches(name, matches))
}

func (g *playlistGroup) playlistTracks(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	playlistID := spotify.ID(args.String("playlist_id", ""))
	limit := args.Int("limit", 50)

	items, err := client.GetPlaylistItems(ctx, playlistID, spotify.Limit(limit))
	if err != nil {
		return upstreamFailure("retrieving playlist tracks", err)
	}

	playlist, err := client.GetPlaylist(ctx, playlistID)
	if err != nil {
		return upstreamFailure("fetching playlist", err)
	}

	return ok(formatter.PlaylistTracks(playlist, items.Items))
}

func (g *playlistGroup) createPlaylist(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	name := args.String("name", "")
	description := args.String("description", "")
	public := args.Bool("public", true)

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return upstreamFailure("creating playlist", err)
	}

	playlist, err := client.CreatePlaylistForUser(ctx, user.ID, name, description, public, false)
	if err != nil {
		return upstreamFailure("creating playlist", err)
	}

	return okf("Created playlist with name: %s, ID: `%s`", name, playlist.ID)
}

func (g *playlistGroup) addTracks(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	playlistID := spotify.ID(args.String("playlist_id", ""))
	uris := args.StringSlice("uris")

	ids := make([]spotify.ID, len(uris))
	for i, uri := range uris {
		ids[i] = trackID(uri)
	}

	snapshot, err := client.AddTracksToPlaylist(ctx, playlistID, ids...)
	if err != nil {
		return upstreamFailure("adding tracks to playlist", err)
	}

	return okf("Added %d tracks to playlist. New snapshot ID: '%s'", len(ids), snapshot)
}

func (g *playlistGroup) removeTracks(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	playlistID := spotify.ID(args.String("playlist_id", ""))
	uris := args.StringSlice("uris")
	snapshotID := args.String("snapshot_id", "")

	var snapshot string
	var err error
	if snapshotID == "" {
		ids := make([]spotify.ID, len(uris))
		for i, uri := range uris {
			ids[i] = trackID(uri)
		}
		snapshot, err = client.RemoveTracksFromPlaylist(ctx, playlistID, ids...)
	} else {
		tracks := make([]spotify.TrackToRemove, len(uris))
		for i, uri := range uris {
			tracks[i] = spotify.TrackToRemove{URI: trackURI(uri)}
		}
		snapshot, err = client.RemoveTracksFromPlaylistOpt(ctx, playlistID, tracks, snapshotID)
	}
	if err != nil {
		return upstreamFailure("removing tracks from playlist", err)
	}

	return okf("Removed %d tracks from playlist. New snapshot ID: '%s'", len(uris), snapshot)
}
