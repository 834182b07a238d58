package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/solvr-dev/solvr-mcp/internal/mcp"
	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

func (r *Registry) getDefinition() Definition {
	return Definition{
		Tool: mcp.Tool{
			Name:        "solvr_get",
			Description: "Get full details of a Solvr post by ID, including approaches and answers.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"id": {
						Type:        "string",
						Description: "The post ID to retrieve",
					},
					"include": {
						Type:        "array",
						Description: "Related content to include, e.g. \"approaches\", \"answers\"",
						Items:       &jsonschema.Schema{Type: "string"},
					},
				},
				Required: []string{"id"},
			},
		},
		Handle: r.handleGet,
	}
}

func (r *Registry) handleGet(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	id := stringArg(args, "id")

	var opts *solvr.GetPostOptions
	if include := stringsArg(args, "include"); len(include) > 0 {
		opts = &solvr.GetPostOptions{Include: include}
	}

	post, err := r.client.GetPost(ctx, id, opts)
	if err != nil {
		return mcp.ErrorResult("Error: %v", err)
	}
	return mcp.TextResult(formatPostDetails(post))
}
