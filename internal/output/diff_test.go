package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestDiff_NoChanges(t *testing.T) {
	doc := []byte(`{"name": "a", "version": "1.0.0"}`)
	out, err := ManifestDiff(doc, doc, false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestManifestDiff_Changes(t *testing.T) {
	before := []byte(`{"name": "desktop-billing-form", "dependencies": {"react": "^18.0.0"}}`)
	after := []byte(`{"name": "@growth-blocks/desktop-billing-form", "released": true}`)

	out, err := ManifestDiff(before, after, false)
	require.NoError(t, err)
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "@growth-blocks/desktop-billing-form")
	assert.Contains(t, out, "dependencies")
}

func TestManifestDiff_InvalidJSON(t *testing.T) {
	_, err := ManifestDiff([]byte(`{"name":`), []byte(`{}`), false)
	assert.Error(t, err)
}
