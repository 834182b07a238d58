package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/solvr-dev/solvr-mcp/internal/solvr"
)

// answerFixture serves a post of the given type and counts creation calls,
// so tests can assert which downstream path ran.
type answerFixture struct {
	postType      string
	answerCalls   int
	approachCalls int
	gotApproach   solvr.CreateApproachRequest
}

func (f *answerFixture) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/posts/", func(w http.ResponseWriter, r *http.Request) {
		if f.postType == "" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{
				"code": "NOT_FOUND", "message": "post does not exist",
			}})
			return
		}
		json.NewEncoder(w).Encode(map[string]solvr.Post{"data": {
			ID: "post_1", Type: f.postType, Title: "t", Description: "d",
		}})
	})
	mux.HandleFunc("/v1/questions/", func(w http.ResponseWriter, r *http.Request) {
		f.answerCalls++
		json.NewEncoder(w).Encode(map[string]solvr.Answer{"data": {ID: "ans_1", Content: "c"}})
	})
	mux.HandleFunc("/v1/problems/", func(w http.ResponseWriter, r *http.Request) {
		f.approachCalls++
		json.NewDecoder(r.Body).Decode(&f.gotApproach)
		json.NewEncoder(w).Encode(map[string]solvr.Approach{"data": {ID: "app_1", Angle: f.gotApproach.Angle}})
	})
	return mux
}

func TestAnswer_QuestionTakesAnswerPath(t *testing.T) {
	fixture := &answerFixture{postType: "question"}
	reg := newTestRegistry(t, fixture.handler(t))

	result := reg.Execute(context.Background(), "solvr_answer", map[string]any{
		"post_id": "post_1",
		"content": "Use token buckets.",
	})

	if result.IsError {
		t.Fatalf("answer failed: %s", result.Text())
	}
	if fixture.answerCalls != 1 {
		t.Errorf("answer endpoint called %d times, want 1", fixture.answerCalls)
	}
	if fixture.approachCalls != 0 {
		t.Errorf("approach endpoint called %d times for a question", fixture.approachCalls)
	}
	if !strings.Contains(result.Text(), "ans_1") {
		t.Errorf("text = %q, should report the answer id", result.Text())
	}
}

func TestAnswer_ProblemTakesApproachPath(t *testing.T) {
	fixture := &answerFixture{postType: "problem"}
	reg := newTestRegistry(t, fixture.handler(t))

	result := reg.Execute(context.Background(), "solvr_answer", map[string]any{
		"post_id":        "post_1",
		"content":        "Acquire locks in key order.",
		"approach_angle": "Lock ordering",
	})

	if result.IsError {
		t.Fatalf("answer failed: %s", result.Text())
	}
	if fixture.approachCalls != 1 {
		t.Errorf("approach endpoint called %d times, want 1", fixture.approachCalls)
	}
	if fixture.answerCalls != 0 {
		t.Errorf("answer endpoint called %d times for a problem", fixture.answerCalls)
	}
	if fixture.gotApproach.Angle != "Lock ordering" {
		t.Errorf("angle = %q", fixture.gotApproach.Angle)
	}
	for _, want := range []string{"app_1", "Lock ordering"} {
		if !strings.Contains(result.Text(), want) {
			t.Errorf("text missing %q: %s", want, result.Text())
		}
	}
}

func TestAnswer_OmittedAngleDefaults(t *testing.T) {
	fixture := &answerFixture{postType: "problem"}
	reg := newTestRegistry(t, fixture.handler(t))

	reg.Execute(context.Background(), "solvr_answer", map[string]any{
		"post_id": "post_1",
		"content": "c",
	})

	if fixture.gotApproach.Angle != "General approach" {
		t.Errorf("angle = %q, want the default %q", fixture.gotApproach.Angle, "General approach")
	}
}

func TestAnswer_UnsupportedTypeSkipsCreation(t *testing.T) {
	fixture := &answerFixture{postType: "idea"}
	reg := newTestRegistry(t, fixture.handler(t))

	result := reg.Execute(context.Background(), "solvr_answer", map[string]any{
		"post_id": "post_1",
		"content": "c",
	})

	if !result.IsError {
		t.Error("unsupported post type should yield an error-flagged result")
	}
	if !strings.Contains(result.Text(), "idea") {
		t.Errorf("text = %q, should name the unsupported type", result.Text())
	}
	if fixture.answerCalls != 0 || fixture.approachCalls != 0 {
		t.Error("no creation call may run for an unsupported type")
	}
}

func TestAnswer_FetchFailureSkipsCreation(t *testing.T) {
	fixture := &answerFixture{}
	reg := newTestRegistry(t, fixture.handler(t))

	result := reg.Execute(context.Background(), "solvr_answer", map[string]any{
		"post_id": "missing",
		"content": "c",
	})

	if !result.IsError {
		t.Error("failed type fetch should yield an error-flagged result")
	}
	if fixture.answerCalls != 0 || fixture.approachCalls != 0 {
		t.Error("no creation call may run when the type fetch fails")
	}
}
