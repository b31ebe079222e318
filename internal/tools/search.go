package tools

import (
	"context"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/formatter"
	"github.com/desertthunder/spotmcp/internal/session"
)

var allSearchKinds = []string{"track", "artist", "album", "playlist"}

type searchGroup struct {
	session session.Source
}

func searchTools(source session.Source) []Tool {
	g := &searchGroup{session: source}

	return []Tool{
		{
			Name:        "search_spotify",
			Description: "Search Spotify for tracks, artists, albums, playlists, or all of them at once.",
			Schema: objectSchema(map[string]any{
				"query":       stringProp("Search query"),
				"search_type": enumProp("What to search for (default: all)", "track", "artist", "album", "playlist", "all"),
				"limit":       intProp("Number of results per kind (default: 10)"),
			}, "query"),
			Handler: g.search,
		},
	}
}

func (g *searchGroup) search(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	query := args.String("query", "")
	searchType := args.String("search_type", "all")
	limit := args.Int("limit", 10)

	kinds := []string{searchType}
	if searchType == "all" {
		kinds = allSearchKinds
	}

	var t spotify.SearchType
	for _, kind := range kinds {
		switch kind {
		case "track":
			t |= spotify.SearchTypeTrack
		case "artist":
			t |= spotify.SearchTypeArtist
		case "album":
			t |= spotify.SearchTypeAlbum
		case "playlist":
			t |= spotify.SearchTypePlaylist
		}
	}

	results, err := client.Search(ctx, query, t, spotify.Limit(limit))
	if err != nil {
		return upstreamFailure("while searching", err)
	}

	return ok(formatter.SearchResults(query, kinds, results))
}
