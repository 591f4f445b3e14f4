// Package classify assigns clinical topics to manuscript titles using the
// Gemini API.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the generation model used for categorization.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTimeout bounds a single categorization request.
	DefaultTimeout = 60 * time.Second

	// defaultRequestsPerMinute is the client-side rate limit. One batched
	// call per upload keeps us far below it; the limiter exists so retries
	// and scripted runs cannot hammer the API.
	defaultRequestsPerMinute = 10
)

// Classifier is the capability the session layer depends on. Implemented
// by Client; tests substitute their own.
type Classifier interface {
	Categorize(ctx context.Context, topics, titles []string) (map[string]string, error)
}

// Client calls the Gemini generateContent API.
type Client struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithModel sets the generation model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

// NewClient creates a Gemini classification client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/defaultRequestsPerMinute), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Categorize sends one batched request assigning each title exactly one
// topic from the given set. The result maps title to topic; when the model
// returns the same title twice the last assignment wins. Titles the model
// omitted are simply absent from the map. The caller owns fallback policy.
func (c *Client) Categorize(ctx context.Context, topics, titles []string) (map[string]string, error) {
	if len(titles) == 0 {
		return map[string]string{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(topics, titles)}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, formatErrorBody(resp.Body))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return ParseAssignments(result.Candidates[0].Content.Parts[0].Text)
}

// formatErrorBody reads and formats the response body for error messages.
func formatErrorBody(body io.Reader) string {
	respBody, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("(failed to read response body: %v)", err)
	}
	return string(respBody)
}

// generateRequest is the body for the generateContent API.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

// generateResponse is the subset of the generateContent reply we consume.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}
