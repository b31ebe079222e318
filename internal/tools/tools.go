// package tools defines the tool catalog exposed over MCP: named operations
// with JSON-schema parameters and handlers that translate each call into
// Spotify Web API requests and formatted text responses.
//
// Handlers never return structured data and never propagate faults. Every
// outcome is a [Result] that the registry flattens to a single string at the
// dispatch boundary: session unavailability and upstream faults become error
// strings, empty result sets become explicit informational sentences.
package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/desertthunder/spotmcp/internal/session"
	"github.com/desertthunder/spotmcp/internal/shared"
)

// authErrorText is the fixed short-circuit message returned by every handler
// when the session provider reports no handle. It is the only failure class
// checked before any upstream call.
const authErrorText = "Error with user authentication"

// FailureKind discriminates handler outcomes so tests can assert on the
// error class separately from its textual rendering.
type FailureKind int

const (
	FailNone FailureKind = iota
	// FailAuth means the session provider had no handle.
	FailAuth
	// FailUpstream wraps any network, HTTP-status, or decoding fault from
	// a Spotify API call.
	FailUpstream
)

// Result is the discriminated outcome of a handler invocation.
type Result struct {
	Text    string
	Kind    FailureKind
	Context string
	Err     error
}

func ok(text string) Result {
	return Result{Text: text}
}

func okf(format string, args ...any) Result {
	return Result{Text: fmt.Sprintf(format, args...)}
}

func authFailure() Result {
	return Result{Kind: FailAuth}
}

func upstreamFailure(context string, err error) Result {
	return Result{Kind: FailUpstream, Context: context, Err: err}
}

// IsError reports whether the result represents a failure class.
func (r Result) IsError() bool {
	return r.Kind != FailNone
}

// Render flattens the result to the single string handed to the caller.
func (r Result) Render() string {
	switch r.Kind {
	case FailAuth:
		return authErrorText
	case FailUpstream:
		return fmt.Sprintf("Error %s: %v", r.Context, r.Err)
	default:
		return r.Text
	}
}

// Arguments carries the decoded JSON arguments of a tools/call request.
// Accessors apply documented defaults; values of the wrong type fall back
// to the default rather than erroring, leaving validity judgments to the
// upstream service.
type Arguments map[string]any

// String returns the named string argument or def.
func (a Arguments) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Int returns the named integer argument or def. JSON numbers decode as
// float64, so both forms are accepted.
func (a Arguments) Int(key string, def int) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Bool returns the named boolean argument or def.
func (a Arguments) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}

// StringSlice returns the named string-array argument, dropping non-string
// elements. A missing or malformed argument yields nil.
func (a Arguments) StringSlice(key string) []string {
	raw, ok := a[key].([]any)
	if !ok {
		return nil
	}

	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HandlerFunc is the uniform handler contract: named arguments in, Result
// out, no panics across the boundary.
type HandlerFunc func(ctx context.Context, args Arguments) Result

// Tool binds an operation name to its documentation, parameter schema, and
// handler.
type Tool struct {
	Name        string
	Description string
	Schema      map[string]any
	Handler     HandlerFunc
}

// Registry holds the fixed tool catalog and dispatches inbound calls.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry builds the full catalog against the given session source.
// Registration order is the catalog order reported by Tools.
func NewRegistry(source session.Source) *Registry {
	r := &Registry{index: make(map[string]int)}
	r.add(playlistTools(source)...)
	r.add(playbackTools(source)...)
	r.add(searchTools(source)...)
	r.add(albumArtistTools(source)...)
	r.add(userTools(source)...)
	return r
}

func (r *Registry) add(tools ...Tool) {
	for _, t := range tools {
		r.index[t.Name] = len(r.tools)
		r.tools = append(r.tools, t)
	}
}

// Tools returns the catalog in registration order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Call dispatches a tool invocation and flattens its Result. The boolean
// reports whether the text represents a failure. A non-nil error means the
// tool name is unknown, which is a dispatch fault rather than a tool result.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, bool, error) {
	i, found := r.index[name]
	if !found {
		return "", false, fmt.Errorf("%w: %s", shared.ErrUnknownTool, name)
	}

	result := r.tools[i].Handler(ctx, Arguments(args))
	return result.Render(), result.IsError(), nil
}

// trackID normalizes a track URI, URL path segment, or bare ID to the ID
// form the client library expects.
func trackID(uri string) spotify.ID {
	return spotify.ID(strings.TrimPrefix(uri, "spotify:track:"))
}

// trackURI normalizes a bare track ID to full URI form.
func trackURI(uri string) string {
	if strings.HasPrefix(uri, "spotify:") {
		return uri
	}
	return "spotify:track:" + uri
}

// playOptions builds PlayOptions targeting the given device, or nil for
// whatever device is currently active.
func playOptions(deviceID string) *spotify.PlayOptions {
	if deviceID == "" {
		return nil
	}
	id := spotify.ID(deviceID)
	return &spotify.PlayOptions{DeviceID: &id}
}

// JSON-schema builders for tool parameter declarations.

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func enumProp(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

func intProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolProp(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func stringArrayProp(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items":       map[string]any{"type": "string"},
	}
}
