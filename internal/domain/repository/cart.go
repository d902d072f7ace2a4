package repository

import (
	"context"

	"github.com/vellamart/storefront/internal/domain/model"
)

// CartRepository persists the shopper's cart as a whole. The cart is local
// storefront state keyed by shopper; writes replace the stored line set
// (last write wins).
type CartRepository interface {
	Load(ctx context.Context, shopperKey string) ([]model.CartLineItem, error)
	Save(ctx context.Context, shopperKey string, items []model.CartLineItem) error
	Delete(ctx context.Context, shopperKey string) error
}
