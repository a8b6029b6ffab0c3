package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSample_FallsBackToEmbedded(t *testing.T) {
	content, fromFile := LoadSample("")
	assert.False(t, fromFile)
	assert.Equal(t, SampleCSV(), content)

	content, fromFile = LoadSample(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	assert.False(t, fromFile)
	assert.Equal(t, SampleCSV(), content)
}

func TestLoadSample_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("Item,Stretch\nShoulder,0-500\n"), 0o644))

	content, fromFile := LoadSample(path)
	assert.True(t, fromFile)
	assert.Contains(t, content, "Shoulder")
}

func TestEmbeddedSample_ParsesEndToEnd(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(SampleCSV()))
	require.NoError(t, err)

	assert.Len(t, ds.Records, 6)
	assert.Equal(t, 1500, ds.RouteExtent)
}
