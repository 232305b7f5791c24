// Package youtube lists the channel's latest videos from the YouTube Data API, the public
// RSS feed, or a static fallback list, in that order.
package youtube

import (
	"errors"
	"strings"

	"github.com/topnotch/storefront/internal/catalog"
)

var (
	ErrChannelNotFound  = errors.New("channel not found")
	ErrPlaylistNotFound = errors.New("uploads playlist not found")
	ErrNoVideos         = errors.New("no videos returned")
)

const descriptionLimit = 150

type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// ThumbnailURL is the highest resolution still image YouTube serves for a video.
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}

// StaticVideos converts the curated catalog list into fallback videos.
func StaticVideos(videos []catalog.Video) []Video {
	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		out = append(out, Video{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   ThumbnailURL(v.ID),
		})
	}
	return out
}

func truncateDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return strings.TrimSpace(string(runes)) + "..."
}
