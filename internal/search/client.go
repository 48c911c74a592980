// Package search looks up bibliographic metadata on the Crossref API.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/kthompson/bibkit/internal/record"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us comfortably inside Crossref's polite-pool
	// guidance of 50 requests per second.
	RateLimit = 5.0

	// DefaultSearchLimit is the number of works returned per search.
	DefaultSearchLimit = 10
)

// Client is a rate-limited HTTP client for the Crossref REST API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithMailto identifies the caller to Crossref's polite pool.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Crossref API client. The BIBKIT_MAILTO
// environment variable, when set, enrolls requests in the polite pool.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if mailto := os.Getenv("BIBKIT_MAILTO"); mailto != "" {
		c.mailto = mailto
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search queries Crossref works by free-text relevance and converts
// the results to source records, ordered by descending relevance.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]record.SourceRecord, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("rows", fmt.Sprintf("%d", limit))

	body, err := c.get(ctx, "/works", params)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Message struct {
			Items []crossrefWork `json:"items"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing search results: %v", ErrInvalidResponse, err)
	}

	records := make([]record.SourceRecord, len(resp.Message.Items))
	for i, work := range resp.Message.Items {
		records[i] = work.toRecord()
	}

	logrus.WithFields(logrus.Fields{
		"query":   query,
		"results": len(records),
	}).Debug("crossref search complete")

	return records, nil
}

// LookupDOI fetches the work registered under the given DOI.
func (c *Client) LookupDOI(ctx context.Context, doi string) (*record.SourceRecord, error) {
	body, err := c.get(ctx, "/works/"+url.PathEscape(doi), nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Message crossrefWork `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: parsing work: %v", ErrInvalidResponse, err)
	}

	rec := resp.Message.toRecord()
	rec.Confidence = 1.0
	return &rec, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}

	u := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	return readBody(resp)
}

func userAgent() string {
	return "bibkit/1.0 (https://github.com/kthompson/bibkit)"
}
