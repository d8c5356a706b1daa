// Package httpsource provides an HTTP-backed catalog source.
package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

const (
	requestTimeout = 15 * time.Second

	// maxBodySize caps the catalog document; scanner outputs are small, so
	// anything beyond this is a misconfigured URL.
	maxBodySize = 64 << 20
)

// Source loads the scanner catalog from an HTTP endpoint.
type Source struct {
	url    string
	client *http.Client
}

// NewSource creates an HTTP source for the catalog at url.
func NewSource(url string) *Source {
	return &Source{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Load fetches and parses the catalog document.
func (s *Source) Load(ctx context.Context) (*domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", domain.ErrCatalogUnavailable, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrCatalogUnavailable, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrCatalogUnavailable, err)
	}

	return domain.ParseCatalog(data)
}

// Describe returns the catalog URL.
func (s *Source) Describe() string {
	return s.url
}
