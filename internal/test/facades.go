package test

import (
	"context"

	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/pricing"
)

// FacadeStub implements the handler facade with overridable functions.
type FacadeStub struct {
	ProductsFn         func(context.Context) ([]model.Product, error)
	SettingsFn         func(context.Context) (model.StoreSettings, error)
	UpdateSettingsFn   func(context.Context, string, model.StoreSettings) error
	CartFn             func(context.Context, string) ([]model.CartLineItem, error)
	AddToCartFn        func(context.Context, string, string) ([]model.CartLineItem, error)
	DecreaseCartItemFn func(context.Context, string, string) ([]model.CartLineItem, error)
	RemoveCartItemFn   func(context.Context, string, string) ([]model.CartLineItem, error)
	QuoteFn            func(context.Context, string) (pricing.Quote, error)
	CheckoutFn         func(context.Context, string, string, []string, model.ShippingAddress, string) (*model.Order, error)
	OrdersFn           func(context.Context, string, string) ([]model.Order, error)
	CancelOrderFn      func(context.Context, string, string, string, bool) error
	TransitionOrderFn  func(context.Context, string, string, string, model.OrderStatus) error
	TransactionsFn     func(context.Context, string) ([]model.Transaction, error)
	RefundFn           func(context.Context, string, string) (*model.Transaction, error)
	RevenueFn          func(context.Context, string) (*model.RevenueSummary, error)
	AdminSessionFn     func(string) (string, error)
}

func (s *FacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return nil, nil
}

func (s *FacadeStub) Settings(ctx context.Context) (model.StoreSettings, error) {
	if s.SettingsFn != nil {
		return s.SettingsFn(ctx)
	}
	return model.StoreSettings{ShippingFee: 150, FreeShippingThreshold: 5000, TaxRate: 12}, nil
}

func (s *FacadeStub) UpdateSettings(ctx context.Context, token string, settings model.StoreSettings) error {
	if s.UpdateSettingsFn != nil {
		return s.UpdateSettingsFn(ctx, token, settings)
	}
	return nil
}

func (s *FacadeStub) Cart(ctx context.Context, shopperKey string) ([]model.CartLineItem, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, shopperKey)
	}
	return nil, nil
}

func (s *FacadeStub) AddToCart(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, shopperKey, productID)
	}
	return nil, nil
}

func (s *FacadeStub) DecreaseCartItem(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	if s.DecreaseCartItemFn != nil {
		return s.DecreaseCartItemFn(ctx, shopperKey, productID)
	}
	return nil, nil
}

func (s *FacadeStub) RemoveCartItem(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	if s.RemoveCartItemFn != nil {
		return s.RemoveCartItemFn(ctx, shopperKey, productID)
	}
	return nil, nil
}

func (s *FacadeStub) Quote(ctx context.Context, shopperKey string) (pricing.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, shopperKey)
	}
	return pricing.Quote{}, nil
}

func (s *FacadeStub) Checkout(ctx context.Context, token, shopperKey string, productIDs []string, address model.ShippingAddress, paymentMethod string) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, token, shopperKey, productIDs, address, paymentMethod)
	}
	return &model.Order{ID: "order-1", Status: model.OrderStatusPlaced}, nil
}

func (s *FacadeStub) Orders(ctx context.Context, token, shopperKey string) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, token, shopperKey)
	}
	return nil, nil
}

func (s *FacadeStub) CancelOrder(ctx context.Context, token, shopperKey, orderID string, admin bool) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, token, shopperKey, orderID, admin)
	}
	return nil
}

func (s *FacadeStub) TransitionOrder(ctx context.Context, token, shopperKey, orderID string, status model.OrderStatus) error {
	if s.TransitionOrderFn != nil {
		return s.TransitionOrderFn(ctx, token, shopperKey, orderID, status)
	}
	return nil
}

func (s *FacadeStub) Transactions(ctx context.Context, token string) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, token)
	}
	return nil, nil
}

func (s *FacadeStub) RefundTransaction(ctx context.Context, token, transactionID string) (*model.Transaction, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, token, transactionID)
	}
	return &model.Transaction{ID: transactionID, Status: model.TransactionStatusRefunded}, nil
}

func (s *FacadeStub) Revenue(ctx context.Context, token string) (*model.RevenueSummary, error) {
	if s.RevenueFn != nil {
		return s.RevenueFn(ctx, token)
	}
	return &model.RevenueSummary{}, nil
}

func (s *FacadeStub) AdminSession(key string) (string, error) {
	if s.AdminSessionFn != nil {
		return s.AdminSessionFn(key)
	}
	return "admin-token", nil
}
