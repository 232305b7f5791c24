package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/topnotch/storefront/internal/payment"
	"github.com/topnotch/storefront/pkg/web"
)

// InitiateMpesa starts an STK push for an order.
func (h *Handler) InitiateMpesa(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req payment.MpesaRequest
	if !web.DecodeJSON(w, r, mLogger, &req) {
		return
	}
	p, err := h.payments.InitiateMpesa(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingFields):
			web.RespondError(w, mLogger, http.StatusBadRequest, "Phone number, amount, and order ID are required")
		case errors.Is(err, payment.ErrInvalidPhone):
			web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid phone number format. Use +254XXXXXXXXX or 0XXXXXXXXX")
		default:
			mLogger.ErrorContext(r.Context(), "Error initiating M-Pesa payment", "error", err)
			web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to initiate M-Pesa payment")
		}
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, web.Envelope{
		Success: true,
		Data:    p,
		Message: "M-Pesa payment request initiated. Please check your phone.",
	})
}

func (h *Handler) MpesaStatus(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	q := r.URL.Query()
	status, err := h.payments.MpesaStatus(r.Context(), q.Get("paymentId"), q.Get("orderId"))
	if err != nil {
		if errors.Is(err, payment.ErrMissingReference) {
			web.RespondError(w, mLogger, http.StatusBadRequest, "Payment ID or Order ID is required")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error checking payment status", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to check payment status")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, status)
}

func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	p, err := h.payments.Get(r.Context(), id)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving payment", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch payment")
		return
	}
	web.RespondData(w, mLogger, http.StatusOK, p)
}
