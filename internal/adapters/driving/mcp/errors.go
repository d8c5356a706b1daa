// Package mcp provides an MCP (Model Context Protocol) server adapter for docdex.
// It enables AI assistants like Claude to query the document catalog.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
