// Package nameres provides a name-resolution service client for
// resolving free-text disease names to ontology identifiers.
package nameres

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
	"github.com/giraffe-kg/giraffe-cli/internal/jsonmine"
)

// Ensure Client implements the interface.
var _ driven.NameResolver = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://name-resolution-sri.renci.org/lookup"
	DefaultTimeout = 10 * time.Second
)

// curieField is the candidate identifier field mined from the response.
const curieField = "curie"

// userAgent identifies the CLI to the public services it queries.
const userAgent = "giraffe-cli/0.1.0"

// Config holds configuration for the name-resolution client.
type Config struct {
	// BaseURL is the lookup endpoint (default: the public SRI service).
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration
}

// Client queries the name-resolution service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new name-resolution client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Lookup issues a single GET request and mines the response for every
// candidate carrying a curie field. The response shape has varied
// between service versions (a mapping keyed by identifier in some, an
// ordered list of records in others), so candidates are mined
// recursively rather than decoded against a fixed schema.
func (c *Client) Lookup(
	ctx context.Context, query string, opts domain.LookupOptions,
) ([]domain.OntologyMatch, error) {
	params := url.Values{}
	params.Set("string", query)
	params.Set("autocomplete", strconv.FormatBool(opts.Autocomplete))
	params.Set("highlighting", strconv.FormatBool(opts.Highlighting))
	params.Set("offset", strconv.Itoa(opts.Offset))
	params.Set("limit", strconv.Itoa(opts.Limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: name resolution: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: name resolution returned status %d: %s",
			domain.ErrUpstream, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: name resolution: %v", domain.ErrNetwork, err)
	}

	return mineMatches(body)
}

// mineMatches extracts candidate matches from a raw response body.
func mineMatches(body []byte) ([]domain.OntologyMatch, error) {
	objects, err := jsonmine.MineBytes(body, curieField)
	if err != nil {
		return nil, fmt.Errorf("%w: name resolution: %v", domain.ErrMalformedResponse, err)
	}

	matches := make([]domain.OntologyMatch, 0, len(objects))
	for _, obj := range objects {
		curie := jsonmine.Str(obj, curieField)
		if curie == "" {
			continue
		}
		matches = append(matches, domain.OntologyMatch{
			CURIE:    domain.CURIE(curie),
			Label:    jsonmine.Str(obj, "label"),
			Score:    jsonmine.Float(obj, "score"),
			Types:    jsonmine.Strings(obj, "types"),
			Synonyms: jsonmine.Strings(obj, "synonyms"),
		})
	}
	return matches, nil
}
