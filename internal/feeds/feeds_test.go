package feeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	data := `feeds:
  - source: Reuters
    category: Business
    url: https://feeds.reuters.com/reuters/businessNews
  - source: BBC Business
    category: Business
    url: http://feeds.bbci.co.uk/news/business/rss.xml
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	sources, err := Load(path)

	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, "Reuters", sources[0].Name)
	assert.Equal(t, "Business", sources[0].Category)
	assert.Equal(t, "http://feeds.bbci.co.uk/news/business/rss.xml", sources[1].URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feeds: []\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	sources := Defaults()
	require.NotEmpty(t, sources)
	for _, s := range sources {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.URL)
		assert.Equal(t, "Business", s.Category)
	}
}
