package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vellamart/storefront/internal/domain/model"
)

// ErrUnauthorized indicates the backend rejected the bearer token.
var ErrUnauthorized = errors.New("backend rejected credentials")

// Error carries a backend rejection with its HTTP status and message.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// OrderRequestItem is a purchased line submitted at checkout.
type OrderRequestItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
}

// OrderRequest is the POST /orders payload. The total is frozen client-side
// and verified by the backend.
type OrderRequest struct {
	Items          []OrderRequestItem
	Address        model.ShippingAddress
	Total          decimal.Decimal
	PaymentMethod  string
	IdempotencyKey string
}

// Client exposes the commerce backend operations the storefront consumes.
type Client interface {
	FetchSettings(ctx context.Context) (model.StoreSettings, error)
	SaveSettings(ctx context.Context, token string, settings model.StoreSettings) error
	FetchProducts(ctx context.Context) ([]model.Product, error)
	CreateOrder(ctx context.Context, token string, req OrderRequest) (*model.Order, error)
	FetchOrders(ctx context.Context, token string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status model.OrderStatus) error
	CancelOrder(ctx context.Context, token, orderID string) error
	FetchTransactions(ctx context.Context, token string) ([]model.Transaction, error)
	RefundTransaction(ctx context.Context, token, transactionID string) (*model.Transaction, error)
}

// HTTPClient implements Client via the backend's JSON API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates HTTP backend client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// FetchSettings reads the store configuration singleton.
func (c *HTTPClient) FetchSettings(ctx context.Context) (model.StoreSettings, error) {
	raw, err := c.do(ctx, http.MethodGet, "/settings", "", "", nil)
	if err != nil {
		return model.StoreSettings{}, err
	}
	return normalizeSettings(raw)
}

// SaveSettings writes the store configuration singleton.
func (c *HTTPClient) SaveSettings(ctx context.Context, token string, settings model.StoreSettings) error {
	_, err := c.do(ctx, http.MethodPost, "/settings", token, "", settings)
	return err
}

// FetchProducts reads the catalog.
func (c *HTTPClient) FetchProducts(ctx context.Context) ([]model.Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/products", "", "", nil)
	if err != nil {
		return nil, err
	}
	return normalizeProducts(raw)
}

// CreateOrder submits a checkout. The idempotency key lets the backend
// deduplicate a retried submission.
func (c *HTTPClient) CreateOrder(ctx context.Context, token string, req OrderRequest) (*model.Order, error) {
	items := make([]map[string]any, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, map[string]any{
			"product_id": it.ProductID,
			"name":       it.Name,
			"quantity":   it.Quantity,
			"price":      it.UnitPrice.InexactFloat64(),
		})
	}
	body := map[string]any{
		"items":            items,
		"shipping_address": req.Address,
		"total":            req.Total.Round(2).InexactFloat64(),
		"payment_method":   req.PaymentMethod,
	}
	raw, err := c.do(ctx, http.MethodPost, "/orders", token, req.IdempotencyKey, body)
	if err != nil {
		return nil, err
	}
	return normalizeOrder(raw)
}

// FetchOrders reads the caller's full order set. This is the authoritative
// resync source after a failed optimistic transition.
func (c *HTTPClient) FetchOrders(ctx context.Context, token string) ([]model.Order, error) {
	raw, err := c.do(ctx, http.MethodGet, "/orders", token, "", nil)
	if err != nil {
		return nil, err
	}
	return normalizeOrders(raw)
}

// UpdateOrderStatus requests a status transition.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, token, orderID string, status model.OrderStatus) error {
	p := path.Join("/orders", orderID, "status")
	_, err := c.do(ctx, http.MethodPut, p, token, "", map[string]any{"status": string(status)})
	return err
}

// CancelOrder invokes the dedicated cancellation route. Stock restoration on
// cancellation happens server-side.
func (c *HTTPClient) CancelOrder(ctx context.Context, token, orderID string) error {
	p := path.Join("/orders", orderID, "cancel")
	_, err := c.do(ctx, http.MethodPut, p, token, "", nil)
	return err
}

// FetchTransactions reads payment transactions.
func (c *HTTPClient) FetchTransactions(ctx context.Context, token string) ([]model.Transaction, error) {
	raw, err := c.do(ctx, http.MethodGet, "/transactions", token, "", nil)
	if err != nil {
		return nil, err
	}
	return normalizeTransactions(raw)
}

// RefundTransaction requests a refund; the response reflects the new status.
func (c *HTTPClient) RefundTransaction(ctx context.Context, token, transactionID string) (*model.Transaction, error) {
	p := path.Join("/transactions", transactionID, "refund")
	raw, err := c.do(ctx, http.MethodPut, p, token, "", nil)
	if err != nil {
		return nil, err
	}
	return normalizeTransaction(raw)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint, token, idempotencyKey string, body any) (json.RawMessage, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return payload, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		message := extractMessage(payload)
		c.logger.Error("backend request failed",
			slog.String("method", method),
			slog.String("path", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message),
		)
		return nil, &Error{StatusCode: resp.StatusCode, Message: message}
	}
}

func extractMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	msg := string(payload)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
