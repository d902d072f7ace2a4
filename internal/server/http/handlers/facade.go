package handlers

import (
	"context"

	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/pricing"
)

// CatalogFacade exposes catalog reads required by handlers.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// SettingsFacade provides store settings reads and admin updates.
type SettingsFacade interface {
	Settings(ctx context.Context) (model.StoreSettings, error)
	UpdateSettings(ctx context.Context, token string, settings model.StoreSettings) error
}

// CartFacade encapsulates per-shopper cart operations.
type CartFacade interface {
	Cart(ctx context.Context, shopperKey string) ([]model.CartLineItem, error)
	AddToCart(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error)
	DecreaseCartItem(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error)
	RemoveCartItem(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error)
	Quote(ctx context.Context, shopperKey string) (pricing.Quote, error)
}

// OrderFacade encapsulates checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, token, shopperKey string, productIDs []string, address model.ShippingAddress, paymentMethod string) (*model.Order, error)
	Orders(ctx context.Context, token, shopperKey string) ([]model.Order, error)
	CancelOrder(ctx context.Context, token, shopperKey, orderID string, admin bool) error
	TransitionOrder(ctx context.Context, token, shopperKey, orderID string, status model.OrderStatus) error
}

// TransactionFacade provides payment records and refund operations.
type TransactionFacade interface {
	Transactions(ctx context.Context, token string) ([]model.Transaction, error)
	RefundTransaction(ctx context.Context, token, transactionID string) (*model.Transaction, error)
	Revenue(ctx context.Context, token string) (*model.RevenueSummary, error)
}

// AdminSessionFacade issues admin session tokens from the admin key.
type AdminSessionFacade interface {
	AdminSession(key string) (string, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CatalogFacade
	SettingsFacade
	CartFacade
	OrderFacade
	TransactionFacade
	AdminSessionFacade
}
