package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines the calls the catalog loader makes against the API.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchRoster(ctx context.Context, offset, limit int) ([]RosterEntry, error)
	FetchPokemon(ctx context.Context, ref string) (Pokemon, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrNotFound is matched by StatusError values carrying a 404.
var ErrNotFound = errors.New("not found")

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client talks to the PokeAPI REST service.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	defaultUserAgent = "dexter/0.1"
	// DefaultTimeout bounds each request when the caller passes zero.
	DefaultTimeout = 10 * time.Second
)

// NewClient builds a Client rooted at baseURL. Each request is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchRoster retrieves limit roster entries starting at offset.
func (c *Client) FetchRoster(ctx context.Context, offset, limit int) ([]RosterEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("invalid roster window offset=%d limit=%d", offset, limit)
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))
	rel := &url.URL{Path: "pokemon", RawQuery: values.Encode()}
	var payload RosterResponse
	if err := c.do(ctx, c.baseURL.ResolveReference(rel), &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FetchPokemon retrieves a single detail record. ref is either an absolute
// detail URL taken from a roster entry, or a name or numeric id.
func (c *Client) FetchPokemon(ctx context.Context, ref string) (Pokemon, error) {
	if c == nil {
		return Pokemon{}, fmt.Errorf("client is nil")
	}
	target, err := c.detailURL(ref)
	if err != nil {
		return Pokemon{}, err
	}
	var payload Pokemon
	if err := c.do(ctx, target, &payload); err != nil {
		return Pokemon{}, err
	}
	return payload, nil
}

func (c *Client) detailURL(ref string) (*url.URL, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return nil, fmt.Errorf("pokemon reference is empty")
	}
	if strings.Contains(trimmed, "://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse detail url %q: %w", ref, err)
		}
		return u, nil
	}
	rel := &url.URL{Path: "pokemon/" + url.PathEscape(strings.ToLower(trimmed))}
	return c.baseURL.ResolveReference(rel), nil
}

func (c *Client) do(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
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
		return &StatusError{URL: reqURL.String(), Code: resp.StatusCode}
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

// parseBaseURL normalizes the API root so relative references resolve under it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
