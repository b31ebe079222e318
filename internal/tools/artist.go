package tools

import (
	"context"
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/formatter"
	"github.com/desertthunder/spotmcp/internal/session"
)

type albumArtistGroup struct {
	session session.Source
}

func albumArtistTools(source session.Source) []Tool {
	g := &albumArtistGroup{session: source}

	return []Tool{
		{
			Name:        "get_album",
			Description: "Get album details by ID: name, release date, URI/ID, artists, and the numbered track list.",
			Schema: objectSchema(map[string]any{
				"album_id": stringProp("The album ID"),
				"market":   stringProp("An ISO 3166-1 alpha-2 country code (optional)"),
			}, "album_id"),
			Handler: g.album,
		},
		{
			Name:        "get_artist",
			Description: "Get a single artist's details by ID: name, follower count, popularity, and URI.",
			Schema: objectSchema(map[string]any{
				"artist_id": stringProp("The artist ID"),
			}, "artist_id"),
			Handler: g.artist,
		},
		{
			Name:        "get_artist_albums",
			Description: "Get an artist's albums, annotated with any other contributing artists.",
			Schema: objectSchema(map[string]any{
				"artist_id":      stringProp("The artist ID"),
				"include_groups": stringProp("Types of items to return: 'album', 'single', 'appears_on', 'compilation', or combinations like 'album,single' (default: 'album')"),
				"country":        stringProp("Limit the response to one country, ISO 3166-1 alpha-2 code (optional)"),
				"limit":          intProp("Number of albums to return (default: 20, max: 50)"),
				"offset":         intProp("Index of the first album to return (default: 0)"),
			}, "artist_id"),
			Handler: g.artistAlbums,
		},
		{
			Name:        "get_artist_top_tracks",
			Description: "Get an artist's top tracks.",
			Schema: objectSchema(map[string]any{
				"artist_id": stringProp("The artist ID"),
				"country":   stringProp("Limit the response to one country, ISO 3166-1 alpha-2 code (default: US)"),
			}, "artist_id"),
			Handler: g.artistTopTracks,
		},
	}
}

func (g *albumArtistGroup) album(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	albumID := spotify.ID(args.String("album_id", ""))
	market := args.String("market", "")

	var opts []spotify.RequestOption
	if market != "" {
		opts = append(opts, spotify.Market(market))
	}

	album, err := client.GetAlbum(ctx, albumID, opts...)
	if err != nil {
		return upstreamFailure("fetching album", err)
	}

	return ok(formatter.Album(album))
}

func (g *albumArtistGroup) artist(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	artist, err := client.GetArtist(ctx, spotify.ID(args.String("artist_id", "")))
	if err != nil {
		return upstreamFailure("getting artist", err)
	}

	return ok(formatter.Artist(artist))
}

func (g *albumArtistGroup) artistAlbums(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	artistID := spotify.ID(args.String("artist_id", ""))
	includeGroups := args.String("include_groups", "album")
	country := args.String("country", "")
	limit := args.Int("limit", 20)
	offset := args.Int("offset", 0)

	artist, err := client.GetArtist(ctx, artistID)
	if err != nil {
		return upstreamFailure("getting artist", err)
	}

	opts := []spotify.RequestOption{spotify.Limit(limit), spotify.Offset(offset)}
	if country != "" {
		opts = append(opts, spotify.Market(country))
	}

	albums, err := client.GetArtistAlbums(ctx, artistID, albumTypes(includeGroups), opts...)
	if err != nil {
		return upstreamFailure("getting artist albums", err)
	}

	if len(albums.Albums) == 0 {
		return okf("No albums found for artist '%s' with the specified criteria.", artist.Name)
	}

	return ok(formatter.ArtistAlbums(artist.Name, albums, offset))
}

func (g *albumArtistGroup) artistTopTracks(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	artistID := spotify.ID(args.String("artist_id", ""))
	country := args.String("country", "US")

	tracks, err := client.GetArtistsTopTracks(ctx, artistID, country)
	if err != nil {
		return upstreamFailure("getting artist's top tracks", err)
	}

	if len(tracks) == 0 {
		return ok("Artist does not have any tracks")
	}

	return ok(formatter.ArtistTopTracks(tracks))
}

// albumTypes maps the comma-combinable include_groups values to client
// album type constants. Unrecognized values are dropped; the upstream
// service remains the judge of an entirely empty filter.
func albumTypes(includeGroups string) []spotify.AlbumType {
	var types []spotify.AlbumType
	for _, group := range strings.Split(includeGroups, ",") {
		switch strings.TrimSpace(group) {
		case "album":
			types = append(types, spotify.AlbumTypeAlbum)
		case "single":
			types = append(types, spotify.AlbumTypeSingle)
		case "appears_on":
			types = append(types, spotify.AlbumTypeAppearsOn)
		case "compilation":
			types = append(types, spotify.AlbumTypeCompilation)
		}
	}
	return types
}
