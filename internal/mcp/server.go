package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotmcp/internal/shared"
	"github.com/desertthunder/spotmcp/internal/tools"
)

// maxLineBytes bounds a single inbound message. Tool arguments are
// small, so 4 MiB leaves generous headroom.
const maxLineBytes = 4 * 1024 * 1024

// Server dispatches MCP requests to the tool registry. Requests are
// read line by line; tool calls run concurrently and responses are
// serialized through a write lock.
type Server struct {
	registry *tools.Registry
	info     ServerInfo
	logger   *log.Logger

	writeMu sync.Mutex
}

func NewServer(registry *tools.Registry, info ServerInfo, logger *log.Logger) *Server {
	return &Server{registry: registry, info: info, logger: logger}
}

// Run serves newline-delimited JSON-RPC messages from in, writing
// responses to out, until in is exhausted or ctx is canceled. In-flight
// tool calls are waited for before returning.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var wg sync.WaitGroup
	defer wg.Wait()

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("discarding malformed message", "error", err)
			s.writeError(out, nil, codeParseError, "parse error")
			continue
		}

		s.dispatch(ctx, &wg, out, req)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}

	return nil
}

func (s *Server) dispatch(ctx context.Context, wg *sync.WaitGroup, out io.Writer, req Request) {
	switch req.Method {
	case "initialize":
		s.logger.Info("client connected", "protocol", ProtocolVersion)
		s.writeResult(out, req.ID, InitializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    Capabilities{Tools: ToolsCapability{ListChanged: false}},
			ServerInfo:      s.info,
		})
	case "notifications/initialized":
		// Acknowledgement only; notifications get no response.
	case "ping":
		s.writeResult(out, req.ID, struct{}{})
	case "tools/list":
		s.writeResult(out, req.ID, s.listTools())
	case "tools/call":
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleCall(ctx, out, req)
		}()
	default:
		if req.IsNotification() {
			s.logger.Debug("ignoring notification", "method", req.Method)
			return
		}
		s.writeError(out, req.ID, codeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) listTools() ListToolsResult {
	catalog := s.registry.Tools()
	descriptors := make([]ToolDescriptor, len(catalog))
	for i, tool := range catalog {
		descriptors[i] = ToolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Schema,
		}
	}
	return ListToolsResult{Tools: descriptors}
}

func (s *Server) handleCall(ctx context.Context, out io.Writer, req Request) {
	var params CallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(out, req.ID, codeInvalidParams, "invalid tools/call params")
		return
	}

	text, isError, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, shared.ErrUnknownTool) {
			s.writeError(out, req.ID, codeInvalidParams, err.Error())
			return
		}
		s.writeError(out, req.ID, codeInternalError, err.Error())
		return
	}

	if isError {
		s.logger.Warn("tool call failed", "tool", params.Name, "message", text)
	} else {
		s.logger.Debug("tool call completed", "tool", params.Name)
	}

	s.writeResult(out, req.ID, textResult(text, isError))
}

func (s *Server) writeResult(out io.Writer, id json.RawMessage, result any) {
	s.write(out, Response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(out io.Writer, id json.RawMessage, code int, message string) {
	s.write(out, Response{JSONRPC: "2.0", ID: id, Error: &ResponseError{Code: code, Message: message}})
}

func (s *Server) write(out io.Writer, resp Response) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := json.NewEncoder(out).Encode(resp); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}
