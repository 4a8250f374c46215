package matchsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"matchscout/internal/domain"
)

// DefaultSnippetLength is how much of an error body is surfaced to the user
const DefaultSnippetLength = 100

// Client handles communication with the matching service
type Client struct {
	httpClient    *http.Client
	baseURL       string
	searchPath    string
	userAgent     string
	snippetLength int
}

// Config holds configuration for the matching service client
type Config struct {
	BaseURL       string
	SearchPath    string
	UserAgent     string
	Timeout       time.Duration
	SnippetLength int
}

// NewClient creates a new matching service client
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}

	if cfg.SearchPath == "" {
		cfg.SearchPath = "/api/v1/search"
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "matchscout/1.0"
	}

	if cfg.SnippetLength <= 0 {
		cfg.SnippetLength = DefaultSnippetLength
	}

	return &Client{
		httpClient:    httpClient,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		searchPath:    cfg.SearchPath,
		userAgent:     cfg.UserAgent,
		snippetLength: cfg.SnippetLength,
	}
}

// searchRequest is the wire shape of an outbound query
type searchRequest struct {
	Query string `json:"query"`
}

// Search submits a query and returns the ranked matches in service order.
// A 2xx response without a matches field yields an empty slice.
func (c *Client) Search(ctx context.Context, query string) ([]domain.MatchRecord, error) {
	fullURL := c.baseURL + c.searchPath

	body, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := c.readSnippet(resp.Body)
		log.Printf("[ERROR] Matching service returned status %d for %s", resp.StatusCode, fullURL)
		return nil, &ServiceError{StatusCode: resp.StatusCode, Snippet: snippet}
	}

	var result domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Bad JSON from a 2xx response reads as a service fault to the user
		return nil, &ServiceError{StatusCode: resp.StatusCode, Snippet: "malformed response: " + err.Error()}
	}

	if result.Matches == nil {
		return []domain.MatchRecord{}, nil
	}

	return result.Matches, nil
}

// readSnippet reads at most snippetLength characters of an error body.
// The read limit is in bytes, so it allows for multibyte runes; the cut
// itself happens on rune boundaries.
func (c *Client) readSnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, int64(c.snippetLength)*4+1))
	if err != nil {
		return ""
	}
	s := strings.TrimSpace(string(data))
	runes := []rune(s)
	if len(runes) > c.snippetLength {
		s = string(runes[:c.snippetLength]) + "..."
	}
	return s
}
