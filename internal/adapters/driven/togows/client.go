// Package togows provides a sequence-retrieval client that fetches
// reference sequence for a genomic region as FASTA.
package togows

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.SequenceFetcher = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://togows.org"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the sequence-retrieval client.
type Config struct {
	// BaseURL is the service root (default: the public TogoWS instance).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client fetches reference sequence over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new sequence-retrieval client.
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
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// Fetch issues a path-style GET for the region and parses the FASTA
// response. The sequence length is not validated against the region.
func (c *Client) Fetch(
	ctx context.Context, region domain.GenomicRegion,
) (*domain.SequenceRecord, error) {
	if region.Assembly == "" || region.Chromosome == "" {
		return nil, fmt.Errorf("%w: incomplete genomic region %+v", domain.ErrInvalidInput, region)
	}

	url := fmt.Sprintf("%s/api/ucsc/%s/chr%s:%d-%d.fasta",
		c.baseURL, strings.ToLower(region.Assembly), region.Chromosome, region.Start, region.End)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: sequence retrieval: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: sequence retrieval returned status %d: %s",
			domain.ErrUpstream, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: sequence retrieval: %v", domain.ErrNetwork, err)
	}

	header, sequence, err := parseFASTA(body)
	if err != nil {
		return nil, err
	}

	return &domain.SequenceRecord{
		Region:   region,
		Header:   header,
		Sequence: sequence,
	}, nil
}

// parseFASTA splits a single-entry FASTA document into its header
// (without the leading ">") and its unwrapped sequence.
func parseFASTA(body []byte) (header, sequence string, err error) {
	lines := strings.Split(string(body), "\n")

	var seq strings.Builder
	seenHeader := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seenHeader {
				// Only the first entry is expected; stop at a second header.
				break
			}
			header = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			seenHeader = true
			continue
		}
		if !seenHeader {
			return "", "", fmt.Errorf("%w: response is not FASTA", domain.ErrMalformedResponse)
		}
		seq.WriteString(line)
	}

	if !seenHeader {
		return "", "", fmt.Errorf("%w: empty FASTA response", domain.ErrMalformedResponse)
	}
	return header, seq.String(), nil
}
