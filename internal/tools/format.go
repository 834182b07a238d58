package tools

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

// viewURLBase is the public web frontend, used to build post links in tool
// output.
const viewURLBase = "https://solvr.dev/posts/"

// answerPreviewLimit caps answer content in the post-details report.
const answerPreviewLimit = 100

func formatSearchResults(results []solvr.SearchResult, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d results:\n\n", total)
	for _, r := range results {
		b.WriteString("---\n")
		fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(r.Type), r.Title)
		fmt.Fprintf(&b, "ID: %s\n", r.ID)
		if r.Score > 0 {
			fmt.Fprintf(&b, "Relevance: %d%%\n", int(math.Round(r.Score*100)))
		}
		if r.Snippet != "" {
			fmt.Fprintf(&b, "Preview: %s\n", r.Snippet)
		}
		if r.Status != "" {
			fmt.Fprintf(&b, "Status: %s\n", r.Status)
		}
		if len(r.Tags) > 0 {
			fmt.Fprintf(&b, "Tags: %s\n", strings.Join(r.Tags, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatPostDetails(post *solvr.Post) string {
	status := post.Status
	if status == "" {
		status = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(post.Type), post.Title)
	fmt.Fprintf(&b, "ID: %s\n", post.ID)
	fmt.Fprintf(&b, "Status: %s\n", status)
	b.WriteString("\n## Description\n")
	b.WriteString(post.Description)
	b.WriteString("\n")
	if len(post.Tags) > 0 {
		fmt.Fprintf(&b, "\nTags: %s\n", strings.Join(post.Tags, ", "))
	}

	if len(post.Approaches) > 0 {
		fmt.Fprintf(&b, "\n## Approaches (%d)\n", len(post.Approaches))
		for _, a := range post.Approaches {
			fmt.Fprintf(&b, "- [%s] %s\n", a.Status, a.Angle)
		}
	}

	if len(post.Answers) > 0 {
		fmt.Fprintf(&b, "\n## Answers (%d)\n", len(post.Answers))
		for _, a := range post.Answers {
			fmt.Fprintf(&b, "- %s\n", truncate(a.Content, answerPreviewLimit))
		}
	}

	return b.String()
}

func formatCreatedPost(post *solvr.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Created %s: %q\n", post.Type, post.Title)
	fmt.Fprintf(&b, "ID: %s\n", post.ID)
	fmt.Fprintf(&b, "View: %s%s\n", viewURLBase, post.ID)
	return b.String()
}

func formatCreatedAnswer(answer *solvr.Answer) string {
	return fmt.Sprintf("Answer posted.\nID: %s\n", answer.ID)
}

func formatCreatedApproach(approach *solvr.Approach) string {
	return fmt.Sprintf("Approach added with angle %q.\nID: %s\n", approach.Angle, approach.ID)
}

func formatClaim(claim *solvr.ClaimResponse) string {
	instructions := claim.Instructions
	if instructions == "" {
		instructions = "Visit the claim URL and paste the token in the 'CLAIM AN AGENT' section to link this agent to your account."
	}

	var b strings.Builder
	b.WriteString("=== CLAIM YOUR AGENT ===\n\n")
	fmt.Fprintf(&b, "Claim URL: %s\n", claim.ClaimURL)
	fmt.Fprintf(&b, "Token:     %s\n", claim.Token)
	fmt.Fprintf(&b, "Expires:   %s (%s)\n", claim.ExpiresAt, formatExpiry(claim.ExpiresAt))
	b.WriteString("\nInstructions for your human operator:\n")
	b.WriteString(instructions)
	b.WriteString("\n")
	return b.String()
}

// formatExpiry renders an RFC 3339 expiry as a relative duration. Unparseable
// values pass through untouched so the raw timestamp is never lost.
func formatExpiry(expiresAt string) string {
	t, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return expiresAt
	}

	d := time.Until(t)
	if d < 0 {
		return "expired"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	switch {
	case hours > 24:
		return fmt.Sprintf("in %d day(s)", hours/24)
	case hours > 0:
		return fmt.Sprintf("in %dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("in %dm", minutes)
	}
}

// truncate caps s at limit runes, appending an ellipsis marker when content
// was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
