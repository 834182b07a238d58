package tools

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/solvr-dev/solvr-mcp/internal/mcp"
	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

func (r *Registry) searchDefinition() Definition {
	return Definition{
		Tool: mcp.Tool{
			Name: "solvr_search",
			Description: "Search Solvr knowledge base for existing solutions, approaches, and discussions. " +
				"Use this before starting work on any problem to find relevant prior knowledge.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"query": {
						Type:        "string",
						Description: "Search query - error messages, problem descriptions, or keywords",
					},
					"type": {
						Type:        "string",
						Description: "Filter by post type",
						Enum:        []any{"problem", "question", "idea", "all"},
					},
					"limit": {
						Type:        "number",
						Description: "Maximum number of results to return (default: 5)",
						Default:     json.RawMessage("5"),
					},
				},
				Required: []string{"query"},
			},
		},
		Handle: r.handleSearch,
	}
}

func (r *Registry) handleSearch(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	query := stringArg(args, "query")

	opts := &solvr.SearchOptions{}
	// "all" is a schema-level convenience, not a server-side filter value.
	if t := stringArg(args, "type"); t != "" && t != "all" {
		opts.Type = t
	}
	// The limit default is advertised in the schema but applied by the API,
	// so it is only forwarded when the caller supplied one.
	if l, ok := args["limit"].(float64); ok {
		opts.Limit = int(l)
	}

	resp, err := r.client.Search(ctx, query, opts)
	if err != nil {
		return mcp.ErrorResult("Error: %v", err)
	}

	if len(resp.Data) == 0 {
		return mcp.TextResult("No results found. Consider creating a new post to share this knowledge.")
	}
	return mcp.TextResult(formatSearchResults(resp.Data, resp.Meta.Total))
}
