package test

import (
	"context"

	"github.com/vellamart/storefront/internal/adapter/backend"
	"github.com/vellamart/storefront/internal/domain/model"
)

// BackendClientStub allows tests to customize backend behaviour per call.
type BackendClientStub struct {
	FetchSettingsFn     func(context.Context) (model.StoreSettings, error)
	SaveSettingsFn      func(context.Context, string, model.StoreSettings) error
	FetchProductsFn     func(context.Context) ([]model.Product, error)
	CreateOrderFn       func(context.Context, string, backend.OrderRequest) (*model.Order, error)
	FetchOrdersFn       func(context.Context, string) ([]model.Order, error)
	UpdateOrderStatusFn func(context.Context, string, string, model.OrderStatus) error
	CancelOrderFn       func(context.Context, string, string) error
	FetchTransactionsFn func(context.Context, string) ([]model.Transaction, error)
	RefundTransactionFn func(context.Context, string, string) (*model.Transaction, error)
}

func (s *BackendClientStub) FetchSettings(ctx context.Context) (model.StoreSettings, error) {
	if s.FetchSettingsFn != nil {
		return s.FetchSettingsFn(ctx)
	}
	return model.StoreSettings{ShippingFee: 150, FreeShippingThreshold: 5000, TaxRate: 12}, nil
}

func (s *BackendClientStub) SaveSettings(ctx context.Context, token string, settings model.StoreSettings) error {
	if s.SaveSettingsFn != nil {
		return s.SaveSettingsFn(ctx, token, settings)
	}
	return nil
}

func (s *BackendClientStub) FetchProducts(ctx context.Context) ([]model.Product, error) {
	if s.FetchProductsFn != nil {
		return s.FetchProductsFn(ctx)
	}
	return nil, nil
}

func (s *BackendClientStub) CreateOrder(ctx context.Context, token string, req backend.OrderRequest) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, token, req)
	}
	return &model.Order{ID: "order-1", Status: model.OrderStatusPlaced, Total: req.Total}, nil
}

func (s *BackendClientStub) FetchOrders(ctx context.Context, token string) ([]model.Order, error) {
	if s.FetchOrdersFn != nil {
		return s.FetchOrdersFn(ctx, token)
	}
	return nil, nil
}

func (s *BackendClientStub) UpdateOrderStatus(ctx context.Context, token, orderID string, status model.OrderStatus) error {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, token, orderID, status)
	}
	return nil
}

func (s *BackendClientStub) CancelOrder(ctx context.Context, token, orderID string) error {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, token, orderID)
	}
	return nil
}

func (s *BackendClientStub) FetchTransactions(ctx context.Context, token string) ([]model.Transaction, error) {
	if s.FetchTransactionsFn != nil {
		return s.FetchTransactionsFn(ctx, token)
	}
	return nil, nil
}

func (s *BackendClientStub) RefundTransaction(ctx context.Context, token, transactionID string) (*model.Transaction, error) {
	if s.RefundTransactionFn != nil {
		return s.RefundTransactionFn(ctx, token, transactionID)
	}
	return &model.Transaction{ID: transactionID, Status: model.TransactionStatusRefunded}, nil
}
