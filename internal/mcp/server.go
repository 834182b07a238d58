// Package mcp implements a Model Context Protocol server over newline-delimited
// JSON-RPC 2.0 on a byte stream, normally stdin/stdout.
//
// The transport loop owns framing, envelope parsing, and the protocol methods
// (initialize, tools/list, tools/call, shutdown). Tool semantics live behind
// the ToolBackend interface; the loop never inspects tool results beyond
// serializing them. Tool failures travel inside results as isError payloads,
// protocol errors use the JSON-RPC error member, and the two never mix.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/solvr-dev/solvr-mcp/internal/logger"
)

// ToolBackend supplies the tool manifest and executes calls. Execute must
// always return a result: failures are expressed through the result's
// IsError flag, never through a panic or a missing return.
type ToolBackend interface {
	Manifest() []Tool
	Execute(ctx context.Context, name string, args map[string]any) *CallToolResult
}

// protocolVersion is the MCP revision this server speaks.
const protocolVersion = "2024-11-05"

// Server runs the MCP transport loop for one client connection.
type Server struct {
	name        string
	version     string
	backend     ToolBackend
	in          io.Reader
	out         io.Writer
	callTimeout time.Duration

	framer LineFramer
	log    *logger.Logger
}

// NewServer creates a server that reads requests from in and writes responses
// to out. callTimeout bounds each individual tools/call.
func NewServer(name, version string, backend ToolBackend, in io.Reader, out io.Writer, callTimeout time.Duration) *Server {
	return &Server{
		name:        name,
		version:     version,
		backend:     backend,
		in:          in,
		out:         out,
		callTimeout: callTimeout,
		log:         logger.New("solvr:mcp"),
	}
}

// Run processes requests until the input stream closes, a shutdown request
// arrives, or ctx is cancelled. Each complete input line is handled to
// completion before the next is read.
func (s *Server) Run(ctx context.Context) error {
	s.log.Printf("serving %s %s", s.name, s.version)

	buf := make([]byte, 4096)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := s.in.Read(buf)
		if n > 0 {
			for _, line := range s.framer.Feed(buf[:n]) {
				if line == "" {
					continue
				}
				if done := s.handleLine(ctx, line); done {
					s.log.Print("shutdown requested, exiting")
					return nil
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				s.log.Print("input closed, exiting")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// handleLine dispatches one framed message. It reports true when the client
// requested shutdown. A panic in handling is contained here so one bad
// message cannot take down the loop.
func (s *Server) handleLine(ctx context.Context, line string) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Printf("panic handling message: %v", r)
		}
	}()

	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		s.log.Printf("parse error: %v", err)
		s.writeError(nil, ErrParse, "Parse error")
		return false
	}

	s.log.Printf("-> %s", req.Method)

	switch req.Method {
	case "initialize":
		s.writeResult(req.ID, map[string]any{
			"protocolVersion": protocolVersion,
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    s.name,
				"version": s.version,
			},
		})

	case "initialized", "notifications/initialized":
		// Clients normally send this as a notification. Acknowledge the
		// request form too, since some clients attach an id.
		if req.ID != nil {
			s.writeResult(req.ID, map[string]any{})
		}

	case "tools/list":
		s.writeResult(req.ID, map[string]any{
			"tools": s.backend.Manifest(),
		})

	case "tools/call":
		s.handleCall(ctx, &req)

	case "shutdown":
		s.writeResult(req.ID, nil)
		return true

	default:
		if req.ID == nil {
			s.log.Printf("dropping unknown notification %q", req.Method)
			return false
		}
		s.writeError(req.ID, ErrMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
	return false
}

// handleCall runs one tool invocation under the per-call deadline.
func (s *Server) handleCall(ctx context.Context, req *Request) {
	var params CallToolParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			s.writeError(req.ID, ErrInvalidParams, "Invalid params")
			return
		}
	}
	if params.Name == "" {
		s.writeError(req.ID, ErrInvalidParams, "Invalid params: missing tool name")
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	result := s.backend.Execute(callCtx, params.Name, params.Arguments)
	if callCtx.Err() == context.DeadlineExceeded {
		result = ErrorResult("Tool call timed out after %s", s.callTimeout)
	}
	s.writeResult(req.ID, result)
}

// writeResult sends a success response. Serialization failures fall back to
// an internal protocol error so the client always sees a reply.
func (s *Server) writeResult(id any, result any) {
	raw, err := json.Marshal(result)
	if err != nil {
		s.log.Printf("failed to marshal result: %v", err)
		s.writeError(id, ErrInternal, "Internal error")
		return
	}
	s.write(&Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  raw,
	})
}

// writeError sends a protocol-level error response.
func (s *Server) writeError(id any, code int, message string) {
	s.write(&Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &ResponseError{
			Code:    code,
			Message: message,
		},
	})
}

func (s *Server) write(resp *Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Printf("failed to marshal response: %v", err)
		return
	}
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		s.log.Printf("failed to write response: %v", err)
	}
}
