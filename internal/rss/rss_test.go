package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailybrief/internal/feeds"
)

func rssXML(items int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Test Feed</title>`)
	for i := 0; i < items; i++ {
		fmt.Fprintf(&b, `<item><title>Story %d</title><link>https://example.com/%d</link></item>`, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func serveFeed(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_TruncatesToLimit(t *testing.T) {
	srv := serveFeed(t, rssXML(8))

	f := NewFetcher()
	entries, err := f.Fetch(context.Background(), feeds.Source{Name: "t", URL: srv.URL}, 5)

	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "Story 0", entries[0].Title)
	assert.Equal(t, "https://example.com/4", entries[4].Link)
}

func TestFetch_ShortFeedIsNotPadded(t *testing.T) {
	srv := serveFeed(t, rssXML(2))

	f := NewFetcher()
	entries, err := f.Fetch(context.Background(), feeds.Source{Name: "t", URL: srv.URL}, 5)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFetch_UnparseableFeedIsError(t *testing.T) {
	srv := serveFeed(t, "this is not a feed")

	f := NewFetcher()
	_, err := f.Fetch(context.Background(), feeds.Source{Name: "t", URL: srv.URL}, 5)

	assert.Error(t, err)
}
