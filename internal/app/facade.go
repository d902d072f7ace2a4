package app

import (
	"context"

	"github.com/vellamart/storefront/internal/domain/model"
	pkgAuth "github.com/vellamart/storefront/internal/pkg/auth"
	"github.com/vellamart/storefront/internal/pricing"
	"github.com/vellamart/storefront/internal/usecase"

	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
)

// StorefrontFacade aggregates the use cases behind the HTTP surface and the
// background sync worker.
type StorefrontFacade struct {
	catalog      *usecase.CatalogUseCase
	settings     *usecase.SettingsUseCase
	carts        *usecase.CartUseCase
	orders       *usecase.OrderUseCase
	transactions *usecase.TransactionUseCase
	guard        *pkgAuth.AdminGuard
	sessions     *pkgAuth.SessionStrategy
}

// NewStorefrontFacade constructs the application facade.
func NewStorefrontFacade(
	catalog *usecase.CatalogUseCase,
	settings *usecase.SettingsUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	transactions *usecase.TransactionUseCase,
	guard *pkgAuth.AdminGuard,
	sessions *pkgAuth.SessionStrategy,
) *StorefrontFacade {
	return &StorefrontFacade{
		catalog:      catalog,
		settings:     settings,
		carts:        carts,
		orders:       orders,
		transactions: transactions,
		guard:        guard,
		sessions:     sessions,
	}
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *StorefrontFacade) Settings(ctx context.Context) (model.StoreSettings, error) {
	return f.settings.Current(ctx)
}

func (f *StorefrontFacade) UpdateSettings(ctx context.Context, token string, settings model.StoreSettings) error {
	return f.settings.Update(ctx, token, settings)
}

func (f *StorefrontFacade) Cart(ctx context.Context, shopperKey string) ([]model.CartLineItem, error) {
	return f.carts.Items(ctx, shopperKey)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	product, err := f.catalog.Product(ctx, productID)
	if err != nil {
		return nil, err
	}
	return f.carts.Add(ctx, shopperKey, *product)
}

func (f *StorefrontFacade) DecreaseCartItem(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	return f.carts.Decrease(ctx, shopperKey, productID)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	return f.carts.Remove(ctx, shopperKey, productID)
}

func (f *StorefrontFacade) Quote(ctx context.Context, shopperKey string) (pricing.Quote, error) {
	items, err := f.carts.Items(ctx, shopperKey)
	if err != nil {
		return pricing.Quote{}, err
	}
	settings, err := f.settings.Current(ctx)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Compute(pricing.FromCart(items), settings), nil
}

func (f *StorefrontFacade) Checkout(ctx context.Context, token, shopperKey string, productIDs []string, address model.ShippingAddress, paymentMethod string) (*model.Order, error) {
	settings, err := f.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	if settings.MaintenanceMode {
		return nil, domainErrors.ErrMaintenanceActive
	}
	return f.orders.Checkout(ctx, token, shopperKey, productIDs, address, paymentMethod)
}

func (f *StorefrontFacade) Orders(ctx context.Context, token, shopperKey string) ([]model.Order, error) {
	return f.orders.Orders(ctx, token, shopperKey)
}

func (f *StorefrontFacade) CancelOrder(ctx context.Context, token, shopperKey, orderID string, admin bool) error {
	return f.orders.Cancel(ctx, token, shopperKey, orderID, admin)
}

func (f *StorefrontFacade) TransitionOrder(ctx context.Context, token, shopperKey, orderID string, status model.OrderStatus) error {
	return f.orders.Transition(ctx, token, shopperKey, orderID, status, true)
}

func (f *StorefrontFacade) Transactions(ctx context.Context, token string) ([]model.Transaction, error) {
	return f.transactions.List(ctx, token)
}

func (f *StorefrontFacade) RefundTransaction(ctx context.Context, token, transactionID string) (*model.Transaction, error) {
	return f.transactions.Refund(ctx, token, transactionID)
}

func (f *StorefrontFacade) Revenue(ctx context.Context, token string) (*model.RevenueSummary, error) {
	return f.transactions.Revenue(ctx, token)
}

func (f *StorefrontFacade) AdminSession(key string) (string, error) {
	if err := f.guard.VerifyKey(key); err != nil {
		return "", err
	}
	return f.sessions.IssueAdminToken()
}

func (f *StorefrontFacade) RefreshCatalog(ctx context.Context) error {
	return f.catalog.Refresh(ctx)
}

func (f *StorefrontFacade) RefreshSettings(ctx context.Context) error {
	return f.settings.Refresh(ctx)
}
