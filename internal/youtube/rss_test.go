package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
 <title>Topnotch Online TV</title>
 <entry>
  <id>yt:video:vid001</id>
  <yt:videoId>vid001</yt:videoId>
  <title> KCSE Chemistry Revision </title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=vid001"/>
  <published>2025-01-10T08:00:00+00:00</published>
  <media:group>
   <media:title>KCSE Chemistry Revision</media:title>
   <media:description>Mole concept explained.</media:description>
  </media:group>
 </entry>
 <entry>
  <title>Linked only</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=vid002&amp;t=3"/>
  <published>2025-01-09T08:00:00+00:00</published>
 </entry>
 <entry>
  <title>No id at all</title>
 </entry>
</feed>`

func TestParseFeed(t *testing.T) {
	// when
	videos, err := parseFeed(strings.NewReader(sampleFeed))

	// then
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, Video{
		ID:          "vid001",
		Title:       "KCSE Chemistry Revision",
		Description: "Mole concept explained....",
		PublishedAt: "2025-01-10T08:00:00+00:00",
		Thumbnail:   "https://img.youtube.com/vi/vid001/maxresdefault.jpg",
	}, videos[0])
	assert.Equal(t, "vid002", videos[1].ID)
	assert.Empty(t, videos[1].Description)
}

func TestParseFeed_Malformed(t *testing.T) {
	_, err := parseFeed(strings.NewReader("<feed><entry>"))
	assert.Error(t, err)
}

func TestRSSSource_Fetch(t *testing.T) {
	testCases := []struct {
		name          string
		handler       http.HandlerFunc
		expectedCount int
		expectErr     bool
	}{
		{
			name: "channel id feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(sampleFeed))
			},
			expectedCount: 2,
		},
		{
			name: "falls back to user feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("user") == "" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				_, _ = w.Write([]byte(sampleFeed))
			},
			expectedCount: 2,
		},
		{
			name: "both feeds fail",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var (
				mu     sync.Mutex
				agents []string
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				mu.Lock()
				agents = append(agents, r.UserAgent())
				mu.Unlock()
				assert.True(t, r.URL.Query().Get("channel_id") == "TopnotchonlineTV" || r.URL.Query().Get("user") == "TopnotchonlineTV")
				tc.handler(w, r)
			}))
			defer srv.Close()
			source := NewRSSSource(srv.Client(), srv.URL+"/feeds/videos.xml", "@TopnotchonlineTV")

			// when
			videos, err := source.Fetch(context.Background())

			// then
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, videos, tc.expectedCount)
			mu.Lock()
			defer mu.Unlock()
			assert.Contains(t, agents, userAgent)
		})
	}
}
