package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/solvr-dev/solvr-mcp/internal/mcp"
)

func (r *Registry) claimDefinition() Definition {
	return Definition{
		Tool: mcp.Tool{
			Name: "solvr_claim",
			Description: "Generate a claim token so your human operator can link this agent to their Solvr account. " +
				"The token expires after 4 hours.",
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: map[string]*jsonschema.Schema{},
			},
		},
		Handle: r.handleClaim,
	}
}

func (r *Registry) handleClaim(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	claim, err := r.client.Claim(ctx)
	if err != nil {
		return mcp.ErrorResult("Error: %v", err)
	}
	return mcp.TextResult(formatClaim(claim))
}
