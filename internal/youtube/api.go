package youtube

import (
	"context"
	"fmt"

	"github.com/topnotch/storefront/pkg/config"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// APISource reads the channel uploads playlist through the YouTube Data API v3.
type APISource struct {
	svc        *yt.Service
	handle     string
	maxResults int64
}

func NewAPISource(ctx context.Context, cfg config.YouTubeConfig, opts ...option.ClientOption) (*APISource, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	svc, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}
	return &APISource{svc: svc, handle: cfg.ChannelHandle, maxResults: cfg.MaxResults}, nil
}

func (s *APISource) Name() string { return "api" }

func (s *APISource) Fetch(ctx context.Context) ([]Video, error) {
	search, err := s.svc.Search.List([]string{"snippet"}).
		Q(s.handle).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search channel: %w", err)
	}
	if len(search.Items) == 0 || search.Items[0].Id == nil || search.Items[0].Id.ChannelId == "" {
		return nil, ErrChannelNotFound
	}
	channelID := search.Items[0].Id.ChannelId

	channels, err := s.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel details: %w", err)
	}
	if len(channels.Items) == 0 || channels.Items[0].ContentDetails == nil ||
		channels.Items[0].ContentDetails.RelatedPlaylists == nil ||
		channels.Items[0].ContentDetails.RelatedPlaylists.Uploads == "" {
		return nil, ErrPlaylistNotFound
	}
	uploads := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads

	items, err := s.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(uploads).
		MaxResults(s.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	videos := make([]Video, 0, len(items.Items))
	for _, item := range items.Items {
		sn := item.Snippet
		if sn == nil || sn.ResourceId == nil || sn.ResourceId.VideoId == "" {
			continue
		}
		videos = append(videos, Video{
			ID:          sn.ResourceId.VideoId,
			Title:       sn.Title,
			Description: truncateDescription(sn.Description),
			PublishedAt: sn.PublishedAt,
			Thumbnail:   bestThumbnail(sn.Thumbnails),
		})
	}
	if len(videos) == 0 {
		return nil, ErrNoVideos
	}
	return videos, nil
}

func bestThumbnail(t *yt.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	if t.Maxres != nil && t.Maxres.Url != "" {
		return t.Maxres.Url
	}
	if t.High != nil {
		return t.High.Url
	}
	return ""
}
