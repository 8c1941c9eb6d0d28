package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pyperpy/pyper-backend/internal/cart"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/enums"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
)

type stubCartService struct {
	whatsAppResult *cart.WhatsAppCheckoutResult
	directOrder    *models.Order
	err            error

	gotLines    []cart.Line
	gotCustomer cart.CustomerInput
	gotDirect   cart.DirectCheckoutInput
}

func (s *stubCartService) WhatsAppCheckout(ctx context.Context, c *cart.Cart, input cart.CustomerInput) (*cart.WhatsAppCheckoutResult, error) {
	s.gotLines = c.Lines()
	s.gotCustomer = input
	return s.whatsAppResult, s.err
}

func (s *stubCartService) DirectCheckout(ctx context.Context, c *cart.Cart, input cart.DirectCheckoutInput) (*models.Order, error) {
	s.gotLines = c.Lines()
	s.gotDirect = input
	return s.directOrder, s.err
}

func TestCheckoutWhatsAppSuccess(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	svc := &stubCartService{
		whatsAppResult: &cart.WhatsAppCheckoutResult{
			Order: &models.Order{ID: uuid.New(), Status: enums.OrderStatusPending},
			Link:  "https://wa.me/595971234567?text=hola",
		},
	}
	handler := CheckoutWhatsApp(svc, nil)

	body := `{"name":"Maria","phone":"0971234567","items":[{"id":"` + productID.String() + `","name":"Cuaderno","price":"15000","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/checkout/whatsapp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotCustomer.Name != "Maria" || svc.gotCustomer.Phone != "0971234567" {
		t.Fatalf("unexpected customer input: %+v", svc.gotCustomer)
	}
	if len(svc.gotLines) != 1 {
		t.Fatalf("expected 1 cart line got %d", len(svc.gotLines))
	}
	line := svc.gotLines[0]
	if line.ProductID != productID || line.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if !line.Price.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("unexpected price: %s", line.Price)
	}

	var payload struct {
		Data struct {
			Link string `json:"link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if !strings.HasPrefix(payload.Data.Link, "https://wa.me/") {
		t.Fatalf("expected wa.me link got %s", payload.Data.Link)
	}
}

func TestCheckoutWhatsAppMergesDuplicateLines(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	svc := &stubCartService{
		whatsAppResult: &cart.WhatsAppCheckoutResult{Order: &models.Order{ID: uuid.New()}, Link: "https://wa.me/595"},
	}
	handler := CheckoutWhatsApp(svc, nil)

	body := `{"name":"Ana","phone":"0981111111","items":[` +
		`{"id":"` + productID.String() + `","name":"Lapiz","price":"2000","quantity":1},` +
		`{"id":"` + productID.String() + `","name":"Lapiz","price":"2000","quantity":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/checkout/whatsapp", strings.NewReader(body))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if len(svc.gotLines) != 1 {
		t.Fatalf("expected merged line got %d", len(svc.gotLines))
	}
	if svc.gotLines[0].Quantity != 4 {
		t.Fatalf("expected quantity 4 got %d", svc.gotLines[0].Quantity)
	}
}

func TestCheckoutWhatsAppRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := &stubCartService{}
	handler := CheckoutWhatsApp(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/checkout/whatsapp",
		strings.NewReader(`{"name":"Maria","phone":"0971234567","items":[]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutDirectPassesDeliveryDetails(t *testing.T) {
	t.Parallel()

	svc := &stubCartService{directOrder: &models.Order{ID: uuid.New(), Status: enums.OrderStatusPending}}
	handler := CheckoutDirect(svc, nil)

	body := `{"name":"Jose","phone":"0975555555","address":"Avda. Mcal. Lopez 123","city":"Asuncion",` +
		`"items":[{"id":"` + uuid.NewString() + `","name":"Mochila","price":"120000","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/checkout/direct", strings.NewReader(body))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotDirect.Address != "Avda. Mcal. Lopez 123" || svc.gotDirect.City != "Asuncion" {
		t.Fatalf("unexpected delivery details: %+v", svc.gotDirect)
	}
}

func TestCheckoutDirectDisabledSurfacesConflict(t *testing.T) {
	t.Parallel()

	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "direct checkout is disabled")}
	handler := CheckoutDirect(svc, nil)

	body := `{"name":"Jose","phone":"0975555555","address":"Calle 1","city":"Luque",` +
		`"items":[{"id":"` + uuid.NewString() + `","name":"Regla","price":"5000","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/checkout/direct", strings.NewReader(body))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}
