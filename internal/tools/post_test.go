package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

func TestPost_CreatesAndConfirms(t *testing.T) {
	var gotReq solvr.CreatePostRequest
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/posts" {
			t.Errorf("%s %s, want POST /v1/posts", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]solvr.Post{"data": {
			ID: "idea_42", Type: gotReq.Type, Title: gotReq.Title,
		}})
	}))

	result := reg.Execute(context.Background(), "solvr_post", map[string]any{
		"type":        "idea",
		"title":       "Speculative prefetch for cold caches",
		"description": "Prefetch likely-next keys during idle periods.",
		"tags":        []any{"caching", "performance"},
	})

	if result.IsError {
		t.Fatalf("post failed: %s", result.Text())
	}
	if gotReq.Type != "idea" || len(gotReq.Tags) != 2 {
		t.Errorf("request body = %+v", gotReq)
	}

	text := result.Text()
	for _, want := range []string{"idea_42", "Speculative prefetch for cold caches", "https://solvr.dev/posts/idea_42"} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}

func TestPost_RejectionIsErrorFlagged(t *testing.T) {
	reg := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{
			"code": "VALIDATION_ERROR", "message": "title exceeds 200 characters",
		}})
	}))

	result := reg.Execute(context.Background(), "solvr_post", map[string]any{
		"type":        "question",
		"title":       strings.Repeat("long ", 50),
		"description": "d",
	})

	if !result.IsError {
		t.Error("rejected creation should yield an error-flagged result")
	}
	if !strings.Contains(result.Text(), "VALIDATION_ERROR") {
		t.Errorf("text = %q, should carry the rejection", result.Text())
	}
}
