package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sydneyplanner/internal/venue"
)

const (
	defaultBaseURL = "https://api.foursquare.com/v3"
	defaultTimeout = 10 * time.Second

	// SydneyLL is the default search origin.
	SydneyLL = "-33.8688,151.2093"

	defaultSearchLimit = 20
	maxSearchLimit     = 50

	detailFields = "fsq_id,name,categories,geocodes,location,rating,tel,website,description,hours,photos,tips"
	searchFields = "fsq_id,name,categories,distance,geocodes,location,rating,photos"
)

var (
	// ErrUpstream indicates a Foursquare API failure.
	ErrUpstream = errors.New("foursquare upstream request failed")

	// ErrNoCredential indicates the provider API key is not configured.
	ErrNoCredential = errors.New("foursquare api key is not configured")
)

// UpstreamError carries HTTP context for a failed provider call. It unwraps
// to ErrUpstream so handlers can map it to a 502.
type UpstreamError struct {
	StatusCode int
	URL        string
	Cause      error
}

func (e *UpstreamError) Error() string {
	msg := ErrUpstream.Error()
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s: status=%d url=%s", msg, e.StatusCode, e.URL)
	} else if e.URL != "" {
		msg = fmt.Sprintf("%s: url=%s", msg, e.URL)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// HTTPClient is implemented by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Foursquare v3 API and returns canonical venues.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	apiKey     string
	cache      *Cache
}

// Option applies Client options.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithBaseURL replaces the default API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithCache enables cache-aside reads for search and details.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient builds a provider client. An empty apiKey is allowed; calls then
// fail with ErrNoCredential, which the handler layer maps to a 503.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchParams narrows a provider search. Zero values fall back to the
// Sydney defaults.
type SearchParams struct {
	Query  string
	LL     string
	Radius int
	Limit  int
}

// Search queries the provider and normalizes every result. Results are
// cached when a cache is configured.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]venue.Venue, error) {
	if c.apiKey == "" {
		return nil, ErrNoCredential
	}

	ll := params.LL
	if ll == "" {
		ll = SydneyLL
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	q := url.Values{}
	q.Set("ll", ll)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", searchFields)
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.Radius > 0 {
		q.Set("radius", strconv.Itoa(params.Radius))
	}

	cacheKey := "places:search:" + q.Encode()
	var cached []venue.Venue
	if c.cache.get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	var resp searchResponse
	if err := c.getJSON(ctx, "/places/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	venues := make([]venue.Venue, 0, len(resp.Results))
	for i := range resp.Results {
		v, err := Normalize(&resp.Results[i], "")
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}

	c.cache.set(ctx, cacheKey, venues)
	return venues, nil
}

// Details fetches a single place and normalizes it.
func (c *Client) Details(ctx context.Context, fsqID string) (venue.Venue, error) {
	if c.apiKey == "" {
		return venue.Venue{}, ErrNoCredential
	}

	cacheKey := "places:details:" + fsqID
	var cached venue.Venue
	if c.cache.get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	var raw Place
	path := fmt.Sprintf("/places/%s?fields=%s", url.PathEscape(fsqID), url.QueryEscape(detailFields))
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return venue.Venue{}, err
	}

	v, err := Normalize(&raw, "")
	if err != nil {
		return venue.Venue{}, err
	}

	c.cache.set(ctx, cacheKey, v)
	return v, nil
}

// Photos fetches all photo URLs for a place at the medium variant.
func (c *Client) Photos(ctx context.Context, fsqID string) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrNoCredential
	}

	var raw []PlacePhoto
	if err := c.getJSON(ctx, fmt.Sprintf("/places/%s/photos", url.PathEscape(fsqID)), &raw); err != nil {
		return nil, err
	}

	urls := make([]string, len(raw))
	for i, p := range raw {
		urls[i] = PhotoURL(p)
	}
	return urls, nil
}

// Tips fetches user tips for a place.
func (c *Client) Tips(ctx context.Context, fsqID string) ([]PlaceTip, error) {
	if c.apiKey == "" {
		return nil, ErrNoCredential
	}

	var raw []PlaceTip
	if err := c.getJSON(ctx, fmt.Sprintf("/places/%s/tips", url.PathEscape(fsqID)), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	reqURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &UpstreamError{URL: reqURL, Cause: err}
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{URL: reqURL, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &UpstreamError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{URL: reqURL, Cause: err}
	}
	return nil
}
