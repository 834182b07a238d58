// Package tools defines the Solvr tool surface exposed over MCP: the
// advertised manifest and the handlers that execute each call against the
// Solvr API.
//
// Each tool lives in a single registry entry carrying both its schema and
// its handler, so the manifest returned by tools/list and the dispatch table
// used by tools/call can never drift apart.
package tools

import (
	"context"

	"github.com/solvr-dev/solvr-mcp/internal/logger"
	"github.com/solvr-dev/solvr-mcp/internal/mcp"
	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

var logTools = logger.New("solvr:tools")

// Handler executes one tool call. Handlers never return an error: failures
// are folded into the result's IsError flag.
type Handler func(ctx context.Context, args map[string]any) *mcp.CallToolResult

// Definition binds a tool's advertised schema to its handler.
type Definition struct {
	Tool   mcp.Tool
	Handle Handler
}

// Registry holds the tool definitions in a fixed advertisement order.
type Registry struct {
	client *solvr.Client
	order  []string
	byName map[string]Definition
}

// NewRegistry builds the registry of all Solvr tools backed by client.
func NewRegistry(client *solvr.Client) *Registry {
	r := &Registry{
		client: client,
		byName: make(map[string]Definition),
	}
	r.register(r.searchDefinition())
	r.register(r.getDefinition())
	r.register(r.postDefinition())
	r.register(r.answerDefinition())
	r.register(r.claimDefinition())
	return r
}

func (r *Registry) register(def Definition) {
	r.order = append(r.order, def.Tool.Name)
	r.byName[def.Tool.Name] = def
}

// Manifest returns the tool definitions for tools/list, in registration order.
func (r *Registry) Manifest() []mcp.Tool {
	tools := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.byName[name].Tool)
	}
	return tools
}

// Execute runs the named tool. Unknown names and handler panics become
// error-flagged results, never failures of Execute itself.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	defer func() {
		if rec := recover(); rec != nil {
			logTools.Printf("panic in tool %s: %v", name, rec)
			result = mcp.ErrorResult("Error: tool %s failed: %v", name, rec)
		}
	}()

	def, ok := r.byName[name]
	if !ok {
		return mcp.ErrorResult("Unknown tool: %s", name)
	}

	if args == nil {
		args = make(map[string]any)
	}
	logTools.Printf("executing %s", name)
	return def.Handle(ctx, args)
}

// stringArg reads an optional string argument, returning "" when absent or
// of the wrong type.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// stringsArg reads an optional array-of-strings argument, dropping any
// non-string elements.
func stringsArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
