package rest

import (
	"net/http"
	"strings"

	"github.com/topnotch/storefront/internal/routes"
	"github.com/topnotch/storefront/pkg/web"
)

// Health reports process health; a degraded process answers 503.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	report := h.health.Check()
	status := http.StatusOK
	if !report.Healthy() {
		mLogger.WarnContext(r.Context(), "Health degraded", "heap_percent", report.MemoryUsage.Percent)
		status = http.StatusServiceUnavailable
	}
	web.NoCache(w)
	web.RespondJSON(w, mLogger, status, report)
}

type routeView struct {
	Path         string   `json:"path"`
	Methods      []string `json:"methods"`
	Version      string   `json:"version"`
	Description  string   `json:"description,omitempty"`
	RequiresAuth bool     `json:"requiresAuth"`
}

// ListRoutes returns the API route registry for discovery.
func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	all := routes.All()
	views := make([]routeView, 0, len(all))
	for _, rt := range all {
		views = append(views, routeView{
			Path:         rt.APIPath(),
			Methods:      rt.Methods,
			Version:      rt.Version,
			Description:  rt.Description,
			RequiresAuth: rt.RequiresAuth,
		})
	}
	web.RespondList(w, h.loggerWithReqID(r), views)
}

type routeErrorResponse struct {
	Success        bool     `json:"success"`
	Error          string   `json:"error"`
	Path           string   `json:"path"`
	AllowedMethods []string `json:"allowedMethods,omitempty"`
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.loggerWithReqID(r), http.StatusNotFound, routeErrorResponse{
		Error: "Route not found",
		Path:  r.URL.Path,
	})
}

// MethodNotAllowed answers 405 with the methods the registry allows for the path.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	var allowed []string
	if rt, ok := routes.FindRequestPath(r.URL.Path); ok {
		allowed = rt.Methods
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	web.RespondJSON(w, h.loggerWithReqID(r), http.StatusMethodNotAllowed, routeErrorResponse{
		Error:          "Method not allowed",
		Path:           r.URL.Path,
		AllowedMethods: allowed,
	})
}
