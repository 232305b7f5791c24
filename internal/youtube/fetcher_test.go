package youtube

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topnotch/storefront/internal/catalog"
	"github.com/topnotch/storefront/pkg/config"
)

type fakeSource struct {
	name   string
	videos []Video
	err    error
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(context.Context) ([]Video, error) {
	f.calls++
	return f.videos, f.err
}

func testConfig() config.YouTubeConfig {
	return config.YouTubeConfig{
		Timeout: time.Second,
		Breaker: config.BreakerConfig{ConsecutiveFailures: 2, Timeout: time.Minute},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fallback = []Video{{ID: "static-1", Title: "Static"}}

func TestFetcher_Fetch(t *testing.T) {
	live := []Video{{ID: "live-1", Title: "Live"}}
	testCases := []struct {
		name           string
		sources        func() []Source
		expectedSource string
		expectedIDs    []string
		expectNote     bool
	}{
		{
			name: "first source wins",
			sources: func() []Source {
				return []Source{&fakeSource{name: "api", videos: live}, &fakeSource{name: "rss", err: errors.New("unused")}}
			},
			expectedSource: "api",
			expectedIDs:    []string{"live-1"},
		},
		{
			name: "falls through to second source",
			sources: func() []Source {
				return []Source{&fakeSource{name: "api", err: errors.New("quota")}, &fakeSource{name: "rss", videos: live}}
			},
			expectedSource: "rss",
			expectedIDs:    []string{"live-1"},
		},
		{
			name: "empty result falls through",
			sources: func() []Source {
				return []Source{&fakeSource{name: "rss"}}
			},
			expectedSource: SourceStatic,
			expectedIDs:    []string{"static-1"},
			expectNote:     true,
		},
		{
			name:           "no sources",
			sources:        func() []Source { return nil },
			expectedSource: SourceStatic,
			expectedIDs:    []string{"static-1"},
			expectNote:     true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			f := NewFetcher(testConfig(), fallback, discardLogger(), tc.sources()...)

			// when
			res := f.Fetch(context.Background())

			// then
			assert.Equal(t, tc.expectedSource, res.Source)
			var ids []string
			for _, v := range res.Videos {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
			if tc.expectNote {
				assert.Equal(t, "Using static video list. Set YOUTUBE_API_KEY to fetch live videos.", res.Note)
			} else {
				assert.Empty(t, res.Note)
			}
		})
	}
}

func TestFetcher_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	// given
	failing := &fakeSource{name: "rss", err: errors.New("timeout")}
	f := NewFetcher(testConfig(), fallback, discardLogger(), failing)

	// when
	for range 5 {
		res := f.Fetch(context.Background())
		require.Equal(t, SourceStatic, res.Source)
	}

	// then
	assert.Equal(t, 2, failing.calls)
}

func TestFetcher_FallbackIsCopied(t *testing.T) {
	f := NewFetcher(testConfig(), fallback, discardLogger())

	res := f.Fetch(context.Background())
	res.Videos[0].Title = "changed"

	assert.Equal(t, "Static", f.Fetch(context.Background()).Videos[0].Title)
}

func TestStaticVideos(t *testing.T) {
	videos := StaticVideos([]catalog.Video{{ID: "abc", Title: "T", Description: "D"}})

	require.Len(t, videos, 1)
	assert.Equal(t, "https://img.youtube.com/vi/abc/maxresdefault.jpg", videos[0].Thumbnail)
	assert.Equal(t, "D", videos[0].Description)
}

func TestTruncateDescription(t *testing.T) {
	assert.Empty(t, truncateDescription("   "))
	assert.Equal(t, "short...", truncateDescription("short"))

	long := strings.Repeat("a", 200)
	assert.Equal(t, strings.Repeat("a", 150)+"...", truncateDescription(long))

	swahili := strings.Repeat("ŋ", 151)
	assert.Equal(t, strings.Repeat("ŋ", 150)+"...", truncateDescription(swahili))
}
