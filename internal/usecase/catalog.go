package usecase

import (
	"context"
	"sync"

	"github.com/vellamart/storefront/internal/adapter/backend"
	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/stock"
)

// CatalogUseCase mirrors the backend catalog for product views and cart
// snapshots. Refreshing it also reseeds the stock ledger.
type CatalogUseCase struct {
	client backend.Client
	ledger *stock.Ledger

	mu       sync.RWMutex
	products []model.Product
	byID     map[string]model.Product
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(client backend.Client, ledger *stock.Ledger) *CatalogUseCase {
	return &CatalogUseCase{client: client, ledger: ledger, byID: make(map[string]model.Product)}
}

// Refresh re-fetches the catalog and reseeds stock availability.
func (u *CatalogUseCase) Refresh(ctx context.Context) error {
	products, err := u.client.FetchProducts(ctx)
	if err != nil {
		return err
	}

	byID := make(map[string]model.Product, len(products))
	quantities := make(map[string]int, len(products))
	for _, p := range products {
		byID[p.ID] = p
		quantities[p.ID] = p.Stock
	}

	u.mu.Lock()
	u.products = products
	u.byID = byID
	u.mu.Unlock()

	u.ledger.Replace(quantities)
	return nil
}

// Products returns the cached catalog with live availability from the ledger.
func (u *CatalogUseCase) Products(ctx context.Context) ([]model.Product, error) {
	u.mu.RLock()
	loaded := len(u.byID) > 0
	u.mu.RUnlock()

	if !loaded {
		if err := u.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make([]model.Product, len(u.products))
	copy(out, u.products)
	for i := range out {
		out[i].Stock = u.ledger.Available(out[i].ID)
	}
	return out, nil
}

// Product returns a single cached product by identifier.
func (u *CatalogUseCase) Product(ctx context.Context, productID string) (*model.Product, error) {
	u.mu.RLock()
	p, ok := u.byID[productID]
	u.mu.RUnlock()

	if !ok {
		if err := u.Refresh(ctx); err != nil {
			return nil, err
		}
		u.mu.RLock()
		p, ok = u.byID[productID]
		u.mu.RUnlock()
		if !ok {
			return nil, domainErrors.ErrNotFound
		}
	}

	p.Stock = u.ledger.Available(p.ID)
	return &p, nil
}
