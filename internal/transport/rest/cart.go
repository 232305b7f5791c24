package rest

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/topnotch/storefront/internal/cart"
	"github.com/topnotch/storefront/internal/catalog"
	"github.com/topnotch/storefront/pkg/web"
)

type cartLineView struct {
	Product  cart.ProductSnapshot `json:"product"`
	Quantity int                  `json:"quantity"`
	Subtotal int64                `json:"subtotal"`
}

type cartView struct {
	Items          []cartLineView `json:"items"`
	TotalPrice     int64          `json:"totalPrice"`
	TotalItems     int            `json:"totalItems"`
	FormattedTotal string         `json:"formattedTotal"`
}

func newCartView(c cart.Cart) cartView {
	lines := c.Lines()
	items := make([]cartLineView, 0, len(lines))
	for _, l := range lines {
		items = append(items, cartLineView{Product: l.Product, Quantity: l.Quantity, Subtotal: l.Subtotal()})
	}
	return cartView{
		Items:          items,
		TotalPrice:     c.TotalPrice(),
		TotalItems:     c.TotalItemCount(),
		FormattedTotal: cart.FormatPrice(c.TotalPrice()),
	}
}

type addItemRequest struct {
	Slug string `json:"slug" validate:"required"`
}

type setQuantityRequest struct {
	// max mirrors cart.MaxQuantity
	Quantity *int `json:"quantity" validate:"required,max=999"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := cart.FromContext(r.Context())
	web.RespondData(w, h.loggerWithReqID(r), http.StatusOK, newCartView(store.Snapshot()))
}

// AddCartItem adds one unit of a catalog book to the cart.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req addItemRequest
	if !web.DecodeJSON(w, r, mLogger, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		web.RespondValidationError(w, mLogger, err)
		return
	}
	book, err := h.catalog.Book(req.Slug)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			mLogger.DebugContext(r.Context(), "Attempt to add unknown book", "slug", req.Slug)
			web.RespondError(w, mLogger, http.StatusNotFound, "Book not found")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving book", "slug", req.Slug, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add item")
		return
	}
	store := cart.FromContext(r.Context())
	store.Add(book.Snapshot())
	mLogger.DebugContext(r.Context(), "Item added to cart", "slug", req.Slug, "items", store.TotalItemCount())
	web.RespondData(w, mLogger, http.StatusOK, newCartView(store.Snapshot()))
}

// SetCartItemQuantity replaces a line quantity; zero or less removes the line.
func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	slug := chi.URLParam(r, "slug")
	var req setQuantityRequest
	if !web.DecodeJSON(w, r, mLogger, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		web.RespondValidationError(w, mLogger, err)
		return
	}
	store := cart.FromContext(r.Context())
	store.SetQuantity(slug, *req.Quantity)
	web.RespondData(w, mLogger, http.StatusOK, newCartView(store.Snapshot()))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	store := cart.FromContext(r.Context())
	store.Remove(chi.URLParam(r, "slug"))
	web.RespondData(w, h.loggerWithReqID(r), http.StatusOK, newCartView(store.Snapshot()))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := cart.FromContext(r.Context())
	store.Clear()
	web.RespondData(w, h.loggerWithReqID(r), http.StatusOK, newCartView(store.Snapshot()))
}
