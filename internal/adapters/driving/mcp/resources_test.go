package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleCatalogResource(t *testing.T) {
	server, err := NewServer(mcpTestPorts())
	require.NoError(t, err)

	result, err := server.handleCatalogResource(context.Background(),
		readRequest("docdex://catalog"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var payload struct {
		Client  string           `json:"client"`
		Records []map[string]any `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &payload))
	assert.Equal(t, "acme", payload.Client)
	assert.Len(t, payload.Records, 2)
}

func TestServer_handleFacetsResource(t *testing.T) {
	server, err := NewServer(mcpTestPorts())
	require.NoError(t, err)

	result, err := server.handleFacetsResource(context.Background(),
		readRequest("docdex://facets"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Contains(t, result.Contents[0].Text, "pdf")
}

func TestServer_handleRecordResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns record by path", func(t *testing.T) {
		server, err := NewServer(mcpTestPorts())
		require.NoError(t, err)

		result, err := server.handleRecordResource(ctx,
			readRequest("docdex://records/finance/invoice.pdf"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "invoice.pdf")
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		server, err := NewServer(mcpTestPorts())
		require.NoError(t, err)

		_, err = server.handleRecordResource(ctx,
			readRequest("docdex://records/nope.txt"))
		assert.Error(t, err)
	})

	t.Run("foreign uri is not found", func(t *testing.T) {
		server, err := NewServer(mcpTestPorts())
		require.NoError(t, err)

		_, err = server.handleRecordResource(ctx,
			readRequest("other://records/x"))
		assert.Error(t, err)
	})
}

func TestExtractRecordPath(t *testing.T) {
	assert.Equal(t, "a/b.pdf", extractRecordPath("docdex://records/a/b.pdf"))
	assert.Equal(t, "", extractRecordPath("docdex://catalog"))
	assert.Equal(t, "", extractRecordPath("bogus"))
}
