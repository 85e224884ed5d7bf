package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the interface for fetching recipe pages.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPage(ctx context.Context, query Query) (Page, error)
	FetchAll(ctx context.Context, query Query) (Page, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to a DummyJSON-style recipe HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "https://dummyjson.com"
	defaultUserAgent = "ladle/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL uses
// the public DummyJSON endpoint.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Query configures a listing or search request.
type Query struct {
	Limit  int    // page size; zero requests the provider's full set
	Skip   int    // zero-based offset
	Search string // non-empty routes to the search endpoint
	SortBy string // provider sort field, empty for provider order
	Order  string // "asc" or "desc"
}

// FetchPage performs exactly one request for a page of recipes. A non-empty
// search targets the search endpoint; otherwise the listing endpoint is used.
// There is no retry and no caching; re-invocation policy belongs to the caller.
func (c *Client) FetchPage(ctx context.Context, query Query) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(query.Limit))
	values.Set("skip", strconv.Itoa(query.Skip))
	if sortBy := strings.TrimSpace(query.SortBy); sortBy != "" {
		values.Set("sortBy", sortBy)
		order := strings.TrimSpace(query.Order)
		if order == "" {
			order = "asc"
		}
		values.Set("order", order)
	}

	path := "/recipes"
	if search := strings.TrimSpace(query.Search); search != "" {
		// Free-text search lives on a dedicated provider path.
		path = "/recipes/search"
		values.Set("q", search)
	}

	rel := &url.URL{Path: path, RawQuery: values.Encode()}
	var payload ListResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return Page{}, err
	}
	return validatePage(payload)
}

// FetchAll retrieves the provider's entire result set for the query in a
// single request. Used by the client-paginated browsing variant.
func (c *Client) FetchAll(ctx context.Context, query Query) (Page, error) {
	query.Limit = 0
	query.Skip = 0
	return c.FetchPage(ctx, query)
}

// validatePage drops records missing required fields rather than trusting
// the payload shape implicitly. A payload with records but none valid is an
// error; an empty result set is not.
func validatePage(payload ListResponse) (Page, error) {
	valid := make([]Recipe, 0, len(payload.Recipes))
	dropped := 0
	for _, r := range payload.Recipes {
		if err := r.Validate(); err != nil {
			dropped++
			continue
		}
		valid = append(valid, r)
	}
	if len(payload.Recipes) > 0 && len(valid) == 0 {
		return Page{}, fmt.Errorf("response contained %d records, none valid", dropped)
	}
	return Page{Recipes: valid, Total: payload.Total}, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
