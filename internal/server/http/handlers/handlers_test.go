package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vellamart/storefront/internal/adapter/backend"
	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/pricing"
	"github.com/vellamart/storefront/internal/server/http/dto"
	"github.com/vellamart/storefront/internal/server/http/middleware"
	testhelpers "github.com/vellamart/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, target string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		c.Set(middleware.BearerTokenContextKey, "token")
		c.Set(middleware.ShopperKeyContextKey, "shopper")
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentTokenAndShopperKey(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentToken(c); got != "" {
		t.Fatalf("expected empty token when not set, got %q", got)
	}
	if got := CurrentShopperKey(c); got != "" {
		t.Fatalf("expected empty shopper key when not set, got %q", got)
	}

	c.Set(middleware.BearerTokenContextKey, "token")
	c.Set(middleware.ShopperKeyContextKey, "shopper")
	if got := CurrentToken(c); got != "token" {
		t.Fatalf("expected token, got %q", got)
	}
	if got := CurrentShopperKey(c); got != "shopper" {
		t.Fatalf("expected shopper, got %q", got)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	handler := NewCatalogHandler(&testhelpers.FacadeStub{
		ProductsFn: func(context.Context) ([]model.Product, error) {
			return []model.Product{{ID: "p1", Name: "Kettle", Price: decimal.NewFromFloat(1999.5), Stock: 3}}, nil
		},
	})
	resp := performRequest(t, http.MethodGet, "/products", "/products", handler.List, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var products []dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 1 || products[0].Price != "1999.50" {
		t.Fatalf("expected two-decimal price, got %+v", products)
	}
}

func TestCartHandlerAddValidation(t *testing.T) {
	handler := NewCartHandler(&testhelpers.FacadeStub{})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", handler.Add, []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing product_id, got %d", resp.Code)
	}
}

func TestCartHandlerAdd(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		AddToCartFn: func(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
			if shopperKey != "shopper" || productID != "p1" {
				t.Fatalf("unexpected arguments: %q %q", shopperKey, productID)
			}
			return []model.CartLineItem{{ProductID: "p1", Name: "Kettle", Price: decimal.NewFromInt(1000), Quantity: 1}}, nil
		},
	}
	body, _ := json.Marshal(dto.AddCartItemRequest{ProductID: "p1"})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).Add, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var items []dto.CartItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 1 || items[0].Price != "1000.00" {
		t.Fatalf("unexpected cart payload: %+v", items)
	}
}

func TestCartHandlerAddUnknownProduct(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		AddToCartFn: func(context.Context, string, string) ([]model.CartLineItem, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	body, _ := json.Marshal(dto.AddCartItemRequest{ProductID: "ghost"})
	resp := performRequest(t, http.MethodPost, "/cart/items", "/cart/items", NewCartHandler(facade).Add, body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestCartHandlerQuoteRounding(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		QuoteFn: func(context.Context, string) (pricing.Quote, error) {
			return pricing.Quote{
				Subtotal: decimal.RequireFromString("99.99"),
				Shipping: decimal.NewFromInt(150),
				Tax:      decimal.RequireFromString("11.9988"),
				Total:    decimal.RequireFromString("261.9888"),
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/cart/quote", "/cart/quote", NewCartHandler(facade).Quote, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var quote dto.QuoteResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &quote); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if quote.Subtotal != "99.99" || quote.Tax != "12.00" || quote.Total != "261.99" {
		t.Fatalf("expected display rounding to two decimals, got %+v", quote)
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		CheckoutFn: func(ctx context.Context, token, shopperKey string, productIDs []string, address model.ShippingAddress, paymentMethod string) (*model.Order, error) {
			if token != "token" || shopperKey != "shopper" {
				t.Fatalf("unexpected identity: %q %q", token, shopperKey)
			}
			if address.FullName != "Ada Lovelace" || paymentMethod != "card" {
				t.Fatalf("unexpected payload: %+v %q", address, paymentMethod)
			}
			return &model.Order{ID: "o1", Status: model.OrderStatusPlaced, Total: decimal.RequireFromString("2390")}, nil
		},
	}
	body, _ := json.Marshal(dto.CheckoutRequest{
		Address:       dto.ShippingAddress{FullName: "Ada Lovelace", Street: "1 Analytical Way", City: "London"},
		PaymentMethod: "card",
	})
	resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewOrderHandler(facade).Checkout, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.ID != "o1" || order.Total != "2390.00" {
		t.Fatalf("unexpected order payload: %+v", order)
	}
}

func TestOrderHandlerCheckoutFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty cart", domainErrors.ErrEmptyCart, http.StatusUnprocessableEntity},
		{"missing address", domainErrors.ErrMissingAddress, http.StatusUnprocessableEntity},
		{"maintenance", domainErrors.ErrMaintenanceActive, http.StatusServiceUnavailable},
		{"backend unauthorized", backend.ErrUnauthorized, http.StatusUnauthorized},
		{"backend rejection", &backend.Error{StatusCode: http.StatusConflict, Message: "out of stock"}, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			facade := &testhelpers.FacadeStub{
				CheckoutFn: func(context.Context, string, string, []string, model.ShippingAddress, string) (*model.Order, error) {
					return nil, tc.err
				},
			}
			body, _ := json.Marshal(dto.CheckoutRequest{PaymentMethod: "card"})
			resp := performRequest(t, http.MethodPost, "/checkout", "/checkout", NewOrderHandler(facade).Checkout, body)
			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerCancelConflict(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		CancelOrderFn: func(ctx context.Context, token, shopperKey, orderID string, admin bool) error {
			if admin {
				t.Fatal("customer cancel must not claim admin rights")
			}
			return domainErrors.ErrNotCancellable
		},
	}
	resp := performRequest(t, http.MethodPut, "/orders/:orderID/cancel", "/orders/o1/cancel", NewOrderHandler(facade).Cancel, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	var got model.OrderStatus
	facade := &testhelpers.FacadeStub{
		TransitionOrderFn: func(ctx context.Context, token, shopperKey, orderID string, status model.OrderStatus) error {
			got = status
			return nil
		},
	}
	body, _ := json.Marshal(dto.OrderStatusRequest{Status: "Shipped"})
	resp := performRequest(t, http.MethodPut, "/orders/:orderID/status", "/orders/o1/status", NewOrderHandler(facade).UpdateStatus, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got != model.OrderStatusShipped {
		t.Fatalf("expected Shipped, got %s", got)
	}

	facade = &testhelpers.FacadeStub{
		TransitionOrderFn: func(context.Context, string, string, string, model.OrderStatus) error {
			return domainErrors.ErrInvalidStatus
		},
	}
	body, _ = json.Marshal(dto.OrderStatusRequest{Status: "Teleported"})
	resp = performRequest(t, http.MethodPut, "/orders/:orderID/status", "/orders/o1/status", NewOrderHandler(facade).UpdateStatus, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unknown status, got %d", resp.Code)
	}
}

func TestTransactionHandlerRefundIneligible(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		RefundFn: func(context.Context, string, string) (*model.Transaction, error) {
			return nil, domainErrors.EligibilityError{Reason: domainErrors.OrderStatusReason("Processing")}
		},
	}
	resp := performRequest(t, http.MethodPut, "/transactions/:transactionID/refund", "/transactions/t1/refund", NewTransactionHandler(facade).Refund, nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	var result dto.Result
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Message != domainErrors.OrderStatusReason("Processing") {
		t.Fatalf("expected eligibility reason in message, got %q", result.Message)
	}
}

func TestTransactionHandlerRevenue(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		RevenueFn: func(context.Context, string) (*model.RevenueSummary, error) {
			return &model.RevenueSummary{
				GrossRevenue: decimal.RequireFromString("12345.678"),
				Refunded:     decimal.NewFromInt(500),
				PaidCount:    7,
				RefundCount:  1,
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/revenue", "/revenue", NewTransactionHandler(facade).Revenue, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var revenue dto.RevenueResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &revenue); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if revenue.GrossRevenue != "12345.68" || revenue.Refunded != "500.00" || revenue.PaidCount != 7 {
		t.Fatalf("unexpected revenue payload: %+v", revenue)
	}
}

func TestAdminHandlerCreateSession(t *testing.T) {
	handler := NewAdminHandler(&testhelpers.FacadeStub{
		AdminSessionFn: func(key string) (string, error) {
			if key != "secret-key" {
				return "", domainErrors.ErrInvalidAdminKey
			}
			return "session-token", nil
		},
	})

	body, _ := json.Marshal(dto.AdminSessionRequest{Key: "secret-key"})
	resp := performRequest(t, http.MethodPost, "/admin/session", "/admin/session", handler.CreateSession, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var session dto.AdminSessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &session); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if session.Token != "session-token" {
		t.Fatalf("unexpected token %q", session.Token)
	}

	body, _ = json.Marshal(dto.AdminSessionRequest{Key: "wrong"})
	resp = performRequest(t, http.MethodPost, "/admin/session", "/admin/session", handler.CreateSession, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong key, got %d", resp.Code)
	}
}
