package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vellamart/storefront/internal/domain/model"
)

// The backend's JSON is not consistently shaped: field names arrive in both
// snake_case and camelCase, order lines arrive under "items" or "details".
// Everything inbound is canonicalized here, so nothing past this file ever
// branches on a field-name variant.

func normalizeSettings(raw json.RawMessage) (model.StoreSettings, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return model.StoreSettings{}, fmt.Errorf("settings payload: %w", err)
	}
	return model.StoreSettings{
		ShippingFee:           pickFloat(obj, "shipping_fee", "shippingFee"),
		FreeShippingThreshold: pickFloat(obj, "free_shipping_threshold", "freeShippingThreshold"),
		TaxRate:               pickFloat(obj, "tax_rate", "taxRate"),
		MaintenanceMode:       pickBool(obj, "maintenance_mode", "maintenanceMode"),
		RegistrationAllowed:   pickBool(obj, "registration_allowed", "registrationAllowed"),
		ReviewsEnabled:        pickBool(obj, "reviews_enabled", "reviewsEnabled"),
		Categories:            model.UniqueCategories(pickStringSlice(obj, "categories")),
	}, nil
}

func normalizeProducts(raw json.RawMessage) ([]model.Product, error) {
	list, err := decodeList(raw, "products")
	if err != nil {
		return nil, fmt.Errorf("products payload: %w", err)
	}
	products := make([]model.Product, 0, len(list))
	for _, obj := range list {
		products = append(products, model.Product{
			ID:          pickString(obj, "id", "_id", "product_id", "productId"),
			Name:        pickString(obj, "name"),
			Category:    pickString(obj, "category"),
			SubCategory: pickString(obj, "sub_category", "subCategory"),
			Price:       pickDecimal(obj, "price", "unit_price", "unitPrice"),
			Stock:       pickInt(obj, "stock", "quantity"),
			Image:       pickString(obj, "image", "image_url", "imageUrl"),
		})
	}
	return products, nil
}

func normalizeOrders(raw json.RawMessage) ([]model.Order, error) {
	list, err := decodeList(raw, "orders")
	if err != nil {
		return nil, fmt.Errorf("orders payload: %w", err)
	}
	orders := make([]model.Order, 0, len(list))
	for _, obj := range list {
		order, err := orderFromObject(obj)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func normalizeOrder(raw json.RawMessage) (*model.Order, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("order payload: %w", err)
	}
	// some backend routes wrap the created record
	if nested, ok := obj["order"].(map[string]any); ok {
		obj = nested
	}
	return orderFromObject(obj)
}

func orderFromObject(obj map[string]any) (*model.Order, error) {
	status := model.OrderStatus(pickString(obj, "status"))
	if status == "" {
		status = model.OrderStatusPlaced
	}

	rawItems, ok := obj["items"].([]any)
	if !ok {
		rawItems, _ = obj["details"].([]any)
	}
	items := make([]model.OrderItem, 0, len(rawItems))
	for _, entry := range rawItems {
		line, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, model.OrderItem{
			ProductID: pickString(line, "product_id", "productId"),
			Name:      pickString(line, "name", "product_name", "productName"),
			Quantity:  pickInt(line, "quantity", "qty"),
			UnitPrice: pickDecimal(line, "price", "unit_price", "unitPrice"),
		})
	}

	address := model.ShippingAddress{}
	if rawAddr, ok := pickObject(obj, "shipping_address", "shippingAddress", "address"); ok {
		address = model.ShippingAddress{
			FullName:   pickString(rawAddr, "full_name", "fullName", "customer_name", "customerName", "name"),
			Street:     pickString(rawAddr, "street", "line1", "address_line"),
			City:       pickString(rawAddr, "city"),
			PostalCode: pickString(rawAddr, "postal_code", "postalCode", "zip"),
			Country:    pickString(rawAddr, "country"),
			Phone:      pickString(rawAddr, "phone"),
		}
	}

	return &model.Order{
		ID:            pickString(obj, "id", "_id", "order_id", "orderId"),
		Number:        pickString(obj, "number", "order_number", "orderNumber"),
		Items:         items,
		Address:       address,
		PaymentMethod: pickString(obj, "payment_method", "paymentMethod"),
		Status:        status,
		Total:         pickDecimal(obj, "total", "total_amount", "totalAmount"),
		CreatedAt:     pickTime(obj, "created_at", "createdAt"),
		UpdatedAt:     pickTime(obj, "updated_at", "updatedAt"),
	}, nil
}

func normalizeTransactions(raw json.RawMessage) ([]model.Transaction, error) {
	list, err := decodeList(raw, "transactions")
	if err != nil {
		return nil, fmt.Errorf("transactions payload: %w", err)
	}
	transactions := make([]model.Transaction, 0, len(list))
	for _, obj := range list {
		transactions = append(transactions, transactionFromObject(obj))
	}
	return transactions, nil
}

func normalizeTransaction(raw json.RawMessage) (*model.Transaction, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("transaction payload: %w", err)
	}
	if nested, ok := obj["transaction"].(map[string]any); ok {
		obj = nested
	}
	tx := transactionFromObject(obj)
	return &tx, nil
}

func transactionFromObject(obj map[string]any) model.Transaction {
	status := model.TransactionStatus(pickString(obj, "status"))
	if status == "" {
		status = model.TransactionStatusPaid
	}
	return model.Transaction{
		ID:            pickString(obj, "id", "_id", "transaction_id", "transactionId"),
		OrderID:       pickString(obj, "order_id", "orderId", "order"),
		Amount:        pickDecimal(obj, "amount", "total"),
		PaymentMethod: pickString(obj, "payment_method", "paymentMethod"),
		Status:        status,
		CreatedAt:     pickTime(obj, "created_at", "createdAt"),
	}
}

func decodeObject(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeList accepts either a bare JSON array or an object wrapping the
// array under the given key.
func decodeList(raw json.RawMessage, wrapperKey string) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	var entries []any
	switch v := value.(type) {
	case []any:
		entries = v
	case map[string]any:
		wrapped, ok := v[wrapperKey].([]any)
		if !ok {
			return nil, fmt.Errorf("expected array or %q wrapper", wrapperKey)
		}
		entries = wrapped
	default:
		return nil, fmt.Errorf("unexpected payload shape %T", value)
	}

	list := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		if obj, ok := entry.(map[string]any); ok {
			list = append(list, obj)
		}
	}
	return list, nil
}

func pickString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func pickDecimal(obj map[string]any, keys ...string) decimal.Decimal {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case json.Number:
			if d, err := decimal.NewFromString(v.String()); err == nil {
				return d
			}
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}

func pickFloat(obj map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f
			}
		case string:
			var f float64
			if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
				return f
			}
		}
	}
	return 0
}

func pickInt(obj map[string]any, keys ...string) int {
	for _, key := range keys {
		if v, ok := obj[key].(json.Number); ok {
			if n, err := v.Int64(); err == nil {
				return int(n)
			}
			if f, err := v.Float64(); err == nil {
				return int(f)
			}
		}
	}
	return 0
}

func pickBool(obj map[string]any, keys ...string) bool {
	for _, key := range keys {
		if v, ok := obj[key].(bool); ok {
			return v
		}
	}
	return false
}

func pickObject(obj map[string]any, keys ...string) (map[string]any, bool) {
	for _, key := range keys {
		if v, ok := obj[key].(map[string]any); ok {
			return v, true
		}
	}
	return nil, false
}

func pickStringSlice(obj map[string]any, keys ...string) []string {
	for _, key := range keys {
		if raw, ok := obj[key].([]any); ok {
			out := make([]string, 0, len(raw))
			for _, entry := range raw {
				if s, ok := entry.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}

func pickTime(obj map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		if v, ok := obj[key].(string); ok {
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
