package rest

import (
	"errors"
	"net/http"

	"github.com/topnotch/storefront/internal/admin"
	"github.com/topnotch/storefront/pkg/web"
)

func (h *Handler) AdminBooks(w http.ResponseWriter, r *http.Request) {
	web.RespondList(w, h.loggerWithReqID(r), h.admin.Books())
}

// AdminOrders lists orders, optionally filtered by the status query parameter.
func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	orders, err := h.admin.Orders(r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, admin.ErrInvalidStatus) {
			web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid order status")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving admin orders", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	web.RespondList(w, mLogger, orders)
}

func (h *Handler) AdminPosts(w http.ResponseWriter, r *http.Request) {
	web.RespondList(w, h.loggerWithReqID(r), h.admin.Posts())
}

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	web.RespondData(w, h.loggerWithReqID(r), http.StatusOK, h.admin.Dashboard())
}
