package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
)

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSource_Load(t *testing.T) {
	path := writeCatalog(t, t.TempDir(),
		`{"cliente":"acme","files":[{"filename":"a.pdf"}]}`)
	source := NewSource(path)

	catalog, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "acme", catalog.Client)
	require.Len(t, catalog.Records, 1)
	assert.Equal(t, "a.pdf", catalog.Records[0].String(domain.FieldFilename))
}

func TestSource_Load_FileMissing(t *testing.T) {
	source := NewSource(filepath.Join(t.TempDir(), "nope.json"))

	_, err := source.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestSource_Load_MalformedJSON(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), `{broken`)
	source := NewSource(path)

	_, err := source.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedCatalog)
}

func TestSource_Load_CancelledContext(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), `{"cliente":"acme"}`)
	source := NewSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_Describe(t *testing.T) {
	source := NewSource("/data/catalog.json")
	assert.Equal(t, "/data/catalog.json", source.Describe())
}

// TestSource_Watch_ReportsChange tests that a rewrite of the catalog file
// produces a single change notification after the quiet period
func TestSource_Watch_ReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `{"cliente":"acme","files":[]}`)
	source := NewSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	require.NoError(t, source.Watch(ctx, func() {
		changed <- struct{}{}
	}))

	// A burst of writes should coalesce into one notification.
	for i := 0; i < 3; i++ {
		writeCatalog(t, dir, `{"cliente":"acme","files":[{"filename":"new.pdf"}]}`)
		time.Sleep(50 * time.Millisecond)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification received")
	}

	select {
	case <-changed:
		t.Fatal("burst of writes produced more than one notification")
	case <-time.After(quietPeriod * 2):
	}
}

// TestSource_Watch_IgnoresOtherFiles tests that sibling files do not trigger
func TestSource_Watch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `{"cliente":"acme","files":[]}`)
	source := NewSource(path)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 8)
	require.NoError(t, source.Watch(ctx, func() {
		changed <- struct{}{}
	}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0600))

	select {
	case <-changed:
		t.Fatal("unrelated file triggered a notification")
	case <-time.After(quietPeriod * 2):
	}
}

func TestSource_Watch_MissingDirectory(t *testing.T) {
	source := NewSource(filepath.Join(t.TempDir(), "missing", "catalog.json"))

	err := source.Watch(context.Background(), func() {})
	assert.Error(t, err)
}
