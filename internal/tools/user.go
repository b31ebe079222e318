package tools

import (
	"context"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/formatter"
	"github.com/desertthunder/spotmcp/internal/session"
)

const timeRangeDoc = "Time frame for affinities: 'short_term' (~4 weeks), 'medium_term' (~6 months), 'long_term' (all time) (default: 'medium_term')"

type userGroup struct {
	session session.Source
}

func userTools(source session.Source) []Tool {
	g := &userGroup{session: source}

	return []Tool{
		{
			Name:        "get_current_user",
			Description: "Get the current user's profile: display name, email, country, ID, and URI.",
			Schema:      objectSchema(map[string]any{}),
			Handler:     g.currentUser,
		},
		{
			Name:        "get_top_artists",
			Description: "Get the current user's top artists for a given time period.",
			Schema: objectSchema(map[string]any{
				"limit":      intProp("Number of artists to return (default: 20)"),
				"offset":     intProp("Index of the first artist to return (default: 0)"),
				"time_range": enumProp(timeRangeDoc, "short_term", "medium_term", "long_term"),
			}),
			Handler: g.topArtists,
		},
		{
			Name:        "get_top_tracks",
			Description: "Get the current user's top tracks for a given time period.",
			Schema: objectSchema(map[string]any{
				"limit":      intProp("Number of tracks to return (default: 20)"),
				"offset":     intProp("Index of the first track to return (default: 0)"),
				"time_range": enumProp(timeRangeDoc, "short_term", "medium_term", "long_term"),
			}),
			Handler: g.topTracks,
		},
		{
			Name:        "get_followed_artists",
			Description: "Get the artists the current user follows, with cursor-based pagination.",
			Schema: objectSchema(map[string]any{
				"limit": intProp("Number of artists to return (default: 20, max: 50)"),
				"after": stringProp("The last artist ID retrieved from the previous page (optional)"),
			}),
			Handler: g.followedArtists,
		},
	}
}

func (g *userGroup) currentUser(ctx context.Context, _ Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return upstreamFailure("fetching current user data", err)
	}

	return ok(formatter.UserProfile(user))
}

func (g *userGroup) topArtists(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	timeRange := args.String("time_range", "medium_term")
	opts := []spotify.RequestOption{
		spotify.Limit(args.Int("limit", 20)),
		spotify.Offset(args.Int("offset", 0)),
		spotify.Timerange(spotify.Range(timeRange)),
	}

	page, err := client.CurrentUsersTopArtists(ctx, opts...)
	if err != nil {
		return upstreamFailure("getting top artists", err)
	}

	if len(page.Artists) == 0 {
		return okf("No top artists found for time range '%s'", timeRange)
	}

	return ok(formatter.TopArtists(formatter.TimeRangeLabel(timeRange), page.Artists))
}

func (g *userGroup) topTracks(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	timeRange := args.String("time_range", "medium_term")
	opts := []spotify.RequestOption{
		spotify.Limit(args.Int("limit", 20)),
		spotify.Offset(args.Int("offset", 0)),
		spotify.Timerange(spotify.Range(timeRange)),
	}

	page, err := client.CurrentUsersTopTracks(ctx, opts...)
	if err != nil {
		return upstreamFailure("getting top tracks", err)
	}

	if len(page.Tracks) == 0 {
		return okf("No top tracks found for time range '%s'", timeRange)
	}

	return ok(formatter.TopTracks(formatter.TimeRangeLabel(timeRange), page.Tracks))
}

func (g *userGroup) followedArtists(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	opts := []spotify.RequestOption{spotify.Limit(args.Int("limit", 20))}
	if after := args.String("after", ""); after != "" {
		opts = append(opts, spotify.After(after))
	}

	page, err := client.CurrentUsersFollowedArtists(ctx, opts...)
	if err != nil {
		return upstreamFailure("getting followed artists", err)
	}

	return ok(formatter.FollowedArtists(page))
}
