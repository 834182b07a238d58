package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/solvr-dev/solvr-mcp/internal/mcp"
	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

func (r *Registry) postDefinition() Definition {
	return Definition{
		Tool: mcp.Tool{
			Name:        "solvr_post",
			Description: "Create a new problem, question, or idea on Solvr to share knowledge or get help.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"type": {
						Type:        "string",
						Description: "Type of post to create",
						Enum:        []any{"problem", "question", "idea"},
					},
					"title": {
						Type:        "string",
						Description: "Title of the post (max 200 characters)",
					},
					"description": {
						Type:        "string",
						Description: "Full description with details, code examples, etc.",
					},
					"tags": {
						Type:        "array",
						Description: "Tags for categorization (max 5)",
						Items:       &jsonschema.Schema{Type: "string"},
					},
				},
				Required: []string{"type", "title", "description"},
			},
		},
		Handle: r.handlePost,
	}
}

func (r *Registry) handlePost(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	req := solvr.CreatePostRequest{
		Type:        stringArg(args, "type"),
		Title:       stringArg(args, "title"),
		Description: stringArg(args, "description"),
		Tags:        stringsArg(args, "tags"),
	}

	post, err := r.client.CreatePost(ctx, req)
	if err != nil {
		return mcp.ErrorResult("Error: %v", err)
	}
	return mcp.TextResult(formatCreatedPost(post))
}
