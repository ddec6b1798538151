// Package automat provides a client for the knowledge-graph query
// service, used to find sequence variants associated with a disease.
package automat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
	"github.com/giraffe-kg/giraffe-cli/internal/jsonmine"
)

// Ensure Client implements the interface.
var _ driven.GraphQuerier = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://automat.renci.org/gwas-catalog/cypher"
	DefaultTimeout = 30 * time.Second
)

// identifiersField marks variant nodes in the mined response.
const identifiersField = "equivalent_identifiers"

// Config holds configuration for the graph-query client.
type Config struct {
	// BaseURL is the cypher endpoint (default: the public GWAS catalog).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client queries the graph service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// cypherRequest is the graph service request format.
type cypherRequest struct {
	Query string `json:"query"`
}

// NewClient creates a new graph-query client.
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

// VariantsForDisease posts a graph-pattern query for the disease node
// and mines the response for sequence-variant records. The nesting of
// the response is undocumented and has changed between service
// versions, so variant nodes are collected recursively wherever they
// appear rather than decoded row by row.
func (c *Client) VariantsForDisease(
	ctx context.Context, id domain.CURIE,
) ([]domain.VariantRecord, error) {
	query := fmt.Sprintf(
		"MATCH (disease{id:%q})--(sequence_variant:`biolink:SequenceVariant`) RETURN sequence_variant",
		string(id))

	jsonBody, err := json.Marshal(cypherRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: graph query: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: graph query returned status %d: %s",
			domain.ErrUpstream, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: graph query: %v", domain.ErrNetwork, err)
	}

	return mineVariants(body)
}

// mineVariants extracts variant records from a raw response body.
func mineVariants(body []byte) ([]domain.VariantRecord, error) {
	objects, err := jsonmine.MineBytes(body, identifiersField)
	if err != nil {
		return nil, fmt.Errorf("%w: graph query: %v", domain.ErrMalformedResponse, err)
	}

	variants := make([]domain.VariantRecord, 0, len(objects))
	for _, obj := range objects {
		id := jsonmine.Str(obj, "id")
		if id == "" {
			continue
		}
		variants = append(variants, domain.VariantRecord{
			ID:                    domain.CURIE(id),
			Name:                  jsonmine.Str(obj, "name"),
			EquivalentIdentifiers: jsonmine.Strings(obj, identifiersField),
		})
	}
	return variants, nil
}
