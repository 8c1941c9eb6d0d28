package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pyperpy/pyper-backend/api/responses"
	"github.com/pyperpy/pyper-backend/api/validators"
	"github.com/pyperpy/pyper-backend/internal/cart"
	"github.com/pyperpy/pyper-backend/pkg/logger"
)

// cartItemRequest is one storefront cart line. The price is the unit price the
// shopper saw; the order total is recomputed server side from these lines.
type cartItemRequest struct {
	ID       uuid.UUID       `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    string          `json:"image"`
	Category string          `json:"category"`
}

type whatsAppCheckoutRequest struct {
	Name  string            `json:"name" validate:"required"`
	Phone string            `json:"phone" validate:"required"`
	Items []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type directCheckoutRequest struct {
	Name    string            `json:"name" validate:"required"`
	Phone   string            `json:"phone" validate:"required"`
	Address string            `json:"address" validate:"required"`
	City    string            `json:"city" validate:"required"`
	Items   []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type cartQuoteRequest struct {
	Items []cartItemRequest `json:"items" validate:"dive"`
}

func buildCart(items []cartItemRequest) *cart.Cart {
	c := &cart.Cart{}
	for _, item := range items {
		c.Add(cart.Line{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Category:  item.Category,
		})
	}
	return c
}

// CartQuote recomputes the cart server side: duplicate lines merged,
// quantities clamped, total from the unit price snapshots.
func CartQuote(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		c := buildCart(payload.Items)
		lines := c.Lines()
		if lines == nil {
			lines = []cart.Line{}
		}
		responses.WriteSuccess(w, map[string]any{
			"lines": lines,
			"total": c.Total(),
		})
	}
}

// CheckoutWhatsApp records the pedido and returns the wa.me handoff link.
func CheckoutWhatsApp(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload whatsAppCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.WhatsAppCheckout(r.Context(), buildCart(payload.Items), cart.CustomerInput{
			Name:  payload.Name,
			Phone: payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// CheckoutDirect records a direct sale with the delivery details. Refused by
// the service while the site runs in WhatsApp-only mode.
func CheckoutDirect(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload directCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.DirectCheckout(r.Context(), buildCart(payload.Items), cart.DirectCheckoutInput{
			Name:    payload.Name,
			Phone:   payload.Phone,
			Address: payload.Address,
			City:    payload.City,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
