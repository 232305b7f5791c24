package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/topnotch/storefront/internal/catalog"
	"github.com/topnotch/storefront/internal/youtube"
	"github.com/topnotch/storefront/pkg/web"
)

func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	web.RespondList(w, h.loggerWithReqID(r), h.catalog.Books())
}

// GetBook looks a book up by slug.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	slug := chi.URLParam(r, "id")
	book, err := h.catalog.Book(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			mLogger.DebugContext(r.Context(), "Book not found", "slug", slug)
			web.RespondError(w, mLogger, http.StatusNotFound, "Book not found")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving book", "slug", slug, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch book")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, book)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	web.RespondList(w, h.loggerWithReqID(r), h.catalog.Posts())
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	slug := chi.URLParam(r, "slug")
	post, err := h.catalog.Post(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrBlogPostNotFound) {
			mLogger.DebugContext(r.Context(), "Blog post not found", "slug", slug)
			web.RespondError(w, mLogger, http.StatusNotFound, "Blog post not found")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving blog post", "slug", slug, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, post)
}

func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	web.RespondList(w, h.loggerWithReqID(r), h.catalog.Videos())
}

type channelVideosResponse struct {
	Success bool            `json:"success"`
	Data    []youtube.Video `json:"data"`
	Count   int             `json:"count"`
	Source  string          `json:"source"`
	Note    string          `json:"note,omitempty"`
}

// ListChannelVideos returns the latest channel videos, falling back to the curated list.
func (h *Handler) ListChannelVideos(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	res := h.videos.Fetch(r.Context())
	videos := res.Videos
	if videos == nil {
		videos = []youtube.Video{}
	}
	mLogger.DebugContext(r.Context(), "Channel videos fetched", "source", res.Source, "count", len(videos))
	web.RespondJSON(w, mLogger, http.StatusOK, channelVideosResponse{
		Success: true,
		Data:    videos,
		Count:   len(videos),
		Source:  res.Source,
		Note:    res.Note,
	})
}
