package tools

import (
	"context"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/formatter"
	"github.com/desertthunder/spotmcp/internal/session"
)

const deviceIDDoc = "Target device ID (optional). When omitted, the currently active device is used."

type playbackGroup struct {
	session session.Source
}

func playbackTools(source session.Source) []Tool {
	g := &playbackGroup{session: source}

	return []Tool{
		{
			Name:        "get_current_playback",
			Description: "Get the current user's active device ID and currently playing track.",
			Schema:      objectSchema(map[string]any{}),
			Handler:     g.currentPlayback,
		},
		{
			Name:        "pause_playback",
			Description: "Pause the user's currently playing item.",
			Schema: objectSchema(map[string]any{
				"device_id": stringProp(deviceIDDoc),
			}),
			Handler: g.pause,
		},
		{
			Name:        "next_track",
			Description: "Skip the user's playback to the next track.",
			Schema: objectSchema(map[string]any{
				"device_id": stringProp(deviceIDDoc),
			}),
			Handler: g.next,
		},
		{
			Name:        "previous_track",
			Description: "Move the user's playback to the previous track.",
			Schema: objectSchema(map[string]any{
				"device_id": stringProp(deviceIDDoc),
			}),
			Handler: g.previous,
		},
		{
			Name:        "get_queue",
			Description: "Get the current user's playback queue.",
			Schema:      objectSchema(map[string]any{}),
			Handler:     g.queue,
		},
		{
			Name:        "add_to_queue",
			Description: "Add a track to the user's playback queue.",
			Schema: objectSchema(map[string]any{
				"uri":       stringProp("Track URI or ID to queue"),
				"device_id": stringProp(deviceIDDoc),
			}, "uri"),
			Handler: g.addToQueue,
		},
		{
			Name:        "start_playback",
			Description: "Start or resume the user's playback. With no arguments the paused playback resumes; a context URI plays an album, artist, or playlist; an explicit URI list plays those tracks.",
			Schema: objectSchema(map[string]any{
				"device_id":   stringProp(deviceIDDoc),
				"context_uri": stringProp("Spotify URI of the context to play: album, artist, or playlist (optional)"),
				"uris":        stringArrayProp("Track URIs to play (optional)"),
			}),
			Handler: g.start,
		},
		{
			Name:        "resume_playback",
			Description: "Resume the user's paused playback.",
			Schema: objectSchema(map[string]any{
				"device_id": stringProp(deviceIDDoc),
			}),
			Handler: g.resume,
		},
	}
}

func (g *playbackGroup) currentPlayback(ctx context.Context, _ Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	state, err := client.PlayerState(ctx)
	if err != nil {
		return upstreamFailure("fetching current playback", err)
	}

	return ok(formatter.CurrentPlayback(state))
}

func (g *playbackGroup) pause(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	if err := client.PauseOpt(ctx, playOptions(args.String("device_id", ""))); err != nil {
		return upstreamFailure("pausing playback", err)
	}

	return ok("Paused the playback on device")
}

func (g *playbackGroup) next(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	if err := client.NextOpt(ctx, playOptions(args.String("device_id", ""))); err != nil {
		return upstreamFailure("skipping to next track", err)
	}

	return ok("Skipped to next track")
}

func (g *playbackGroup) previous(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	if err := client.PreviousOpt(ctx, playOptions(args.String("device_id", ""))); err != nil {
		return upstreamFailure("moving to previous track", err)
	}

	return ok("Moved to previous track")
}

func (g *playbackGroup) queue(ctx context.Context, _ Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	queue, err := client.GetQueue(ctx)
	if err != nil {
		return upstreamFailure("getting queue", err)
	}

	return ok(formatter.Queue(queue))
}

func (g *playbackGroup) addToQueue(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	uri := args.String("uri", "")
	opt := playOptions(args.String("device_id", ""))

	if err := client.QueueSongOpt(ctx, trackID(uri), opt); err != nil {
		return upstreamFailure("adding song to queue", err)
	}

	return ok("Song added to queue")
}

func (g *playbackGroup) start(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	contextURI := args.String("context_uri", "")
	uris := args.StringSlice("uris")

	opt := playOptions(args.String("device_id", ""))
	if contextURI != "" || len(uris) > 0 {
		if opt == nil {
			opt = &spotify.PlayOptions{}
		}
		// The two selection modes are mutually exclusive upstream.
		if contextURI != "" {
			uri := spotify.URI(contextURI)
			opt.PlaybackContext = &uri
		} else {
			for _, u := range uris {
				opt.URIs = append(opt.URIs, spotify.URI(trackURI(u)))
			}
		}
	}

	if err := client.PlayOpt(ctx, opt); err != nil {
		return upstreamFailure("starting playback", err)
	}

	switch {
	case contextURI != "":
		return okf("Started playback from context: %s", contextURI)
	case len(uris) > 0:
		return okf("Started playback with %d tracks", len(uris))
	default:
		return ok("Resumed playback")
	}
}

func (g *playbackGroup) resume(ctx context.Context, args Arguments) Result {
	client, available := g.session.Client()
	if !available {
		return authFailure()
	}

	if err := client.PlayOpt(ctx, playOptions(args.String("device_id", ""))); err != nil {
		return upstreamFailure("resuming playback", err)
	}

	return ok("Resumed playback")
}
