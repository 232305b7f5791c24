package youtube

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxFeedBytes = 2 << 20
)

// RSSSource reads the public Atom feed, trying the channel_id form first and the legacy user form second.
type RSSSource struct {
	client  *http.Client
	baseURL string
	handle  string
}

func NewRSSSource(client *http.Client, baseURL, handle string) *RSSSource {
	return &RSSSource{client: client, baseURL: baseURL, handle: strings.TrimPrefix(handle, "@")}
}

func (s *RSSSource) Name() string { return "rss" }

func (s *RSSSource) Fetch(ctx context.Context) ([]Video, error) {
	var errs []error
	for _, param := range []string{"channel_id", "user"} {
		videos, err := s.fetchFeed(ctx, param)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(videos) > 0 {
			return videos, nil
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nil, ErrNoVideos
}

func (s *RSSSource) fetchFeed(ctx context.Context, param string) ([]Video, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed url: %w", err)
	}
	q := u.Query()
	q.Set(param, s.handle)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s returned status %d", param, resp.StatusCode)
	}
	return parseFeed(io.LimitReader(resp.Body, maxFeedBytes))
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	VideoID   string     `xml:"http://www.youtube.com/xml/schemas/2015 videoId"`
	Title     string     `xml:"title"`
	Published string     `xml:"published"`
	Summary   string     `xml:"summary"`
	Links     []atomLink `xml:"link"`
	Group     mediaGroup `xml:"http://search.yahoo.com/mrss/ group"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
}

type mediaGroup struct {
	Description string `xml:"http://search.yahoo.com/mrss/ description"`
}

// parseFeed extracts videos from a YouTube Atom feed. Entries without a video id are skipped.
func parseFeed(r io.Reader) ([]Video, error) {
	var feed atomFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	videos := make([]Video, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		id := strings.TrimSpace(e.VideoID)
		if id == "" {
			id = videoIDFromLinks(e.Links)
		}
		if id == "" {
			continue
		}
		title := strings.TrimSpace(e.Title)
		if title == "" {
			title = "Untitled"
		}
		description := e.Group.Description
		if description == "" {
			description = e.Summary
		}
		videos = append(videos, Video{
			ID:          id,
			Title:       title,
			Description: truncateDescription(description),
			PublishedAt: strings.TrimSpace(e.Published),
			Thumbnail:   ThumbnailURL(id),
		})
	}
	return videos, nil
}

func videoIDFromLinks(links []atomLink) string {
	for _, l := range links {
		u, err := url.Parse(l.Href)
		if err != nil {
			continue
		}
		if v := u.Query().Get("v"); v != "" {
			return v
		}
	}
	return ""
}
