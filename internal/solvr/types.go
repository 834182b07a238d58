package solvr

// Post types accepted by the Solvr API.
const (
	PostTypeProblem  = "problem"
	PostTypeQuestion = "question"
	PostTypeIdea     = "idea"
)

// Meta carries pagination metadata on list responses.
type Meta struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	HasMore bool `json:"has_more"`
}

// SearchResult is a single search hit.
type SearchResult struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Snippet string   `json:"snippet,omitempty"`
	Score   float64  `json:"score,omitempty"`
	Status  string   `json:"status,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// SearchResponse is the payload of the search endpoint.
type SearchResponse struct {
	Data []SearchResult `json:"data"`
	Meta Meta           `json:"meta"`
}

// Post is a Solvr post, optionally carrying eager-loaded contributions
// when requested via GetPostOptions.Include.
type Post struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"` // problem, question, idea
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Approaches  []Approach `json:"approaches,omitempty"`
	Answers     []Answer   `json:"answers,omitempty"`
}

// Approach is a contribution to a problem.
type Approach struct {
	ID      string `json:"id"`
	Angle   string `json:"angle,omitempty"`
	Content string `json:"content,omitempty"`
	Status  string `json:"status,omitempty"`
}

// Answer is a contribution to a question.
type Answer struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// SearchOptions are the optional search parameters. Zero values are
// omitted from the request so the server applies its own defaults.
type SearchOptions struct {
	Type  string // filter by post type
	Limit int    // number of results
}

// GetPostOptions selects related sub-resources to eager-load.
type GetPostOptions struct {
	Include []string // e.g. "approaches", "answers"
}

// CreatePostRequest is the body for creating a post.
type CreatePostRequest struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// CreateAnswerRequest is the body for answering a question.
type CreateAnswerRequest struct {
	Content string `json:"content"`
}

// CreateApproachRequest is the body for adding an approach to a problem.
type CreateApproachRequest struct {
	Angle   string `json:"angle,omitempty"`
	Content string `json:"content"`
}

// ClaimResponse is the payload of the agent claim endpoint.
type ClaimResponse struct {
	Token        string `json:"token"`
	ClaimURL     string `json:"claim_url"`
	ExpiresAt    string `json:"expires_at"`
	Instructions string `json:"instructions,omitempty"`
}

// APIError is an error returned by the Solvr API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

// errorResponse is the error envelope format used by the API.
type errorResponse struct {
	Error APIError `json:"error"`
}

// postResponse wraps a single post.
type postResponse struct {
	Data Post `json:"data"`
}

// answerResponse wraps a single answer.
type answerResponse struct {
	Data Answer `json:"data"`
}

// approachResponse wraps a single approach.
type approachResponse struct {
	Data Approach `json:"data"`
}
