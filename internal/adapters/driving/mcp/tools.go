package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/ports/driving"
)

// QueryInput is the input schema for the query_catalog tool.
type QueryInput struct {
	Extension   string   `json:"extension,omitempty" jsonschema:"filter by file extension"`
	Tag         string   `json:"tag,omitempty" jsonschema:"filter by tag"`
	ContentType string   `json:"content_type,omitempty" jsonschema:"filter by content type"`
	ProcessStep string   `json:"process_step,omitempty" jsonschema:"filter by process step"`
	Language    string   `json:"language,omitempty" jsonschema:"filter by language"`
	HasImages   string   `json:"has_images,omitempty" jsonschema:"filter by image presence: yes or no"`
	Modules     []string `json:"modules,omitempty" jsonschema:"require all listed modules"`
	Search      string   `json:"search,omitempty" jsonschema:"case-insensitive substring search"`
	SortKey     string   `json:"sort_key,omitempty" jsonschema:"sort key (default filename)"`
	Descending  bool     `json:"descending,omitempty" jsonschema:"sort in descending order"`
	Limit       int      `json:"limit,omitempty" jsonschema:"maximum number of results (default 25)"`
}

// QueryOutput is the output schema for the query_catalog tool.
type QueryOutput struct {
	Records []domain.Record `json:"records"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
}

// FacetsInput is the input schema for the list_facets tool.
type FacetsInput struct{}

// FacetsOutput is the output schema for the list_facets tool.
type FacetsOutput struct {
	Client string        `json:"client"`
	Facets domain.Facets `json:"facets"`
}

// GetRecordInput is the input schema for the get_record tool.
type GetRecordInput struct {
	Key string `json:"key" jsonschema:"record path, or filename when unambiguous"`
}

// GetRecordOutput is the output schema for the get_record tool.
// Projection is included when a projection service is wired.
type GetRecordOutput struct {
	Record     domain.Record       `json:"record"`
	Projection *driving.Projection `json:"projection,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_catalog",
		Description: "Filter, search, and sort the document catalog records",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_facets",
		Description: "List the distinct filter values available in the catalog",
	}, s.handleFacets)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_record",
		Description: "Get a single catalog record by path or filename",
	}, s.handleGetRecord)
}

// handleQuery handles the query_catalog tool invocation.
func (s *Server) handleQuery(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	sel := domain.Selection{
		Extension:   input.Extension,
		Tag:         input.Tag,
		ContentType: input.ContentType,
		ProcessStep: input.ProcessStep,
		Language:    input.Language,
		Modules:     input.Modules,
		Search:      input.Search,
	}

	switch input.HasImages {
	case "":
		sel.HasImages = domain.HasImagesAny
	case "yes":
		sel.HasImages = domain.HasImagesYes
	case "no":
		sel.HasImages = domain.HasImagesNo
	default:
		return nil, QueryOutput{}, fmt.Errorf(
			"%w: has_images must be yes or no, got %q", domain.ErrInvalidInput, input.HasImages)
	}

	spec := domain.DefaultSort()
	if input.SortKey != "" {
		spec = domain.SortSpec{Key: input.SortKey, Descending: input.Descending}
	} else {
		spec.Descending = input.Descending
	}

	records := s.ports.Catalog.Records()
	results := s.ports.Query.Run(records, sel, spec)

	total := len(results)
	limit := input.Limit
	if limit <= 0 {
		limit = 25
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return nil, QueryOutput{
		Records: results,
		Count:   len(results),
		Total:   total,
	}, nil
}

// handleFacets handles the list_facets tool invocation.
func (s *Server) handleFacets(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ FacetsInput,
) (*mcp.CallToolResult, FacetsOutput, error) {
	return nil, FacetsOutput{
		Client: s.ports.Catalog.Client(),
		Facets: s.ports.Catalog.Facets(),
	}, nil
}

// handleGetRecord handles the get_record tool invocation.
func (s *Server) handleGetRecord(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetRecordInput,
) (*mcp.CallToolResult, GetRecordOutput, error) {
	rec, err := s.ports.Catalog.Find(input.Key)
	if err != nil {
		return nil, GetRecordOutput{}, err
	}
	out := GetRecordOutput{Record: rec}
	if s.ports.Projection != nil {
		out.Projection = s.ports.Projection.Project(rec)
	}
	return nil, out, nil
}
