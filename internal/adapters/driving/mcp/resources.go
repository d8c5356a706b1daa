package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for docdex resources.
	uriScheme = "docdex://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the whole catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "catalog",
		Description: "The full document catalog: client name and all records",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// Static resource for the catalog facets.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "facets",
		Name:        "facets",
		Description: "Distinct filter values available in the catalog",
		MIMEType:    "application/json",
	}, s.handleFacetsResource)

	// Template for a single record by path.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "records/{path}",
		Name:        "record",
		Description: "A single catalog record by its path",
		MIMEType:    "application/json",
	}, s.handleRecordResource)
}

// handleCatalogResource returns the full catalog as JSON.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	payload := struct {
		Client  string `json:"client"`
		Records any    `json:"records"`
	}{
		Client:  s.ports.Catalog.Client(),
		Records: s.ports.Catalog.Records(),
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFacetsResource returns the catalog facets as JSON.
func (s *Server) handleFacetsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Catalog.Facets(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling facets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecordResource returns a single record by path.
func (s *Server) handleRecordResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := extractRecordPath(req.Params.URI)
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Catalog.Find(path)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRecordPath extracts the record path from a URI like docdex://records/{path}.
func extractRecordPath(uri string) string {
	const prefix = uriScheme + "records/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
