package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/solvr-dev/solvr-mcp/internal/mcp"
	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

// defaultApproachAngle is used when a problem approach is submitted without
// an explicit angle.
const defaultApproachAngle = "General approach"

func (r *Registry) answerDefinition() Definition {
	return Definition{
		Tool: mcp.Tool{
			Name: "solvr_answer",
			Description: "Post an answer to a question or add an approach to a problem. " +
				"For problems, include approach_angle to describe your strategy.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"post_id": {
						Type:        "string",
						Description: "The ID of the question or problem to respond to",
					},
					"content": {
						Type:        "string",
						Description: "Your answer or approach content",
					},
					"approach_angle": {
						Type:        "string",
						Description: "For problems: describe your unique angle or strategy",
					},
				},
				Required: []string{"post_id", "content"},
			},
		},
		Handle: r.handleAnswer,
	}
}

// handleAnswer responds to a post. The API routes answers and approaches to
// different endpoints keyed by post type, and type is only discoverable by
// fetching the post, so this runs as an explicit fetch, branch-on-type,
// create sequence. When the fetch fails, no creation call is attempted.
func (r *Registry) handleAnswer(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	postID := stringArg(args, "post_id")
	content := stringArg(args, "content")

	post, err := r.client.GetPost(ctx, postID, nil)
	if err != nil {
		return mcp.ErrorResult("Error: %v", err)
	}

	switch post.Type {
	case solvr.PostTypeQuestion:
		answer, err := r.client.CreateAnswer(ctx, postID, content)
		if err != nil {
			return mcp.ErrorResult("Error: %v", err)
		}
		return mcp.TextResult(formatCreatedAnswer(answer))

	case solvr.PostTypeProblem:
		angle := stringArg(args, "approach_angle")
		if angle == "" {
			angle = defaultApproachAngle
		}
		approach, err := r.client.CreateApproach(ctx, postID, solvr.CreateApproachRequest{
			Angle:   angle,
			Content: content,
		})
		if err != nil {
			return mcp.ErrorResult("Error: %v", err)
		}
		return mcp.TextResult(formatCreatedApproach(approach))

	default:
		return mcp.ErrorResult("Error: cannot respond to a post of type %q; only questions and problems accept responses", post.Type)
	}
}
