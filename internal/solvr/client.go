// Package solvr is a thin client for the Solvr knowledge-base REST API.
//
// The client covers exactly the operations the MCP tools need: search,
// fetch-by-id, create-post, create-answer, create-approach, and agent
// claim-token generation. Failures are surfaced once, immediately, as an
// *APIError or a wrapped transport error; there is no retry logic, because
// every caller turns the failure into a tool result the moment it happens.
package solvr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solvr-dev/solvr-mcp/internal/logger"
)

var logClient = logger.New("solvr:client")

// Client is a Solvr API client. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Solvr API client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: "https://api.solvr.dev",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the knowledge base.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if opts != nil {
		if opts.Type != "" {
			params.Set("type", opts.Type)
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
	}

	var resp SearchResponse
	if err := c.do(ctx, http.MethodGet, "/v1/search?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetPost retrieves a post by ID, optionally eager-loading related
// contributions named in opts.Include.
func (c *Client) GetPost(ctx context.Context, id string, opts *GetPostOptions) (*Post, error) {
	path := "/v1/posts/" + url.PathEscape(id)
	if opts != nil && len(opts.Include) > 0 {
		params := url.Values{}
		params.Set("include", strings.Join(opts.Include, ","))
		path += "?" + params.Encode()
	}

	var resp postResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreatePost creates a new post.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var resp postResponse
	if err := c.do(ctx, http.MethodPost, "/v1/posts", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateAnswer answers a question.
func (c *Client) CreateAnswer(ctx context.Context, questionID, content string) (*Answer, error) {
	path := "/v1/questions/" + url.PathEscape(questionID) + "/answers"

	var resp answerResponse
	if err := c.do(ctx, http.MethodPost, path, CreateAnswerRequest{Content: content}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateApproach adds an approach to a problem.
func (c *Client) CreateApproach(ctx context.Context, problemID string, req CreateApproachRequest) (*Approach, error) {
	path := "/v1/problems/" + url.PathEscape(problemID) + "/approaches"

	var resp approachResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Claim generates a claim token the agent's human operator can use to link
// this agent to their Solvr account.
func (c *Client) Claim(ctx context.Context) (*ClaimResponse, error) {
	var resp ClaimResponse
	if err := c.do(ctx, http.MethodPost, "/v1/agents/me/claim", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs a single HTTP request. Error responses are decoded from the
// API's {error:{code,message}} envelope, with an HTTP_<status> fallback
// when the body is not in that shape.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "solvr-mcp/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())

	logClient.Printf("%s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		logClient.Printf("%s %s -> %d", method, path, resp.StatusCode)
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return &errResp.Error
		}
		return &APIError{
			Code:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message: strings.TrimSpace(string(respBody)),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
