package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/domain/repository"
)

// CartUseCase manages the shopper's locally persisted cart. The cart never
// touches the backend until checkout; every mutation rewrites the stored
// line set, so concurrent mutation follows last write wins.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Items returns the current cart lines.
func (u *CartUseCase) Items(ctx context.Context, shopperKey string) ([]model.CartLineItem, error) {
	items, err := u.carts.Load(ctx, shopperKey)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}

// Add puts one unit of the product into the cart. An existing line is
// incremented; a new line snapshots the product's current price, name and
// image. Stock limits are a presentation concern, not enforced here.
func (u *CartUseCase) Add(ctx context.Context, shopperKey string, product model.Product) ([]model.CartLineItem, error) {
	items, err := u.Items(ctx, shopperKey)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartLineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		})
	}

	if err := u.carts.Save(ctx, shopperKey, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Decrease lowers a line's quantity by one. A line that would reach zero is
// removed entirely; zero-quantity lines never persist.
func (u *CartUseCase) Decrease(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	items, err := u.Items(ctx, shopperKey)
	if err != nil {
		return nil, err
	}

	next := items[:0]
	for _, it := range items {
		if it.ProductID == productID {
			it.Quantity--
			if it.Quantity <= 0 {
				continue
			}
		}
		next = append(next, it)
	}

	if err := u.carts.Save(ctx, shopperKey, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Remove drops a line unconditionally.
func (u *CartUseCase) Remove(ctx context.Context, shopperKey, productID string) ([]model.CartLineItem, error) {
	return u.RemoveMany(ctx, shopperKey, []string{productID})
}

// RemoveMany drops the given lines unconditionally; used after a successful
// checkout to clear the purchased lines. A cart with no lines left is
// deleted rather than stored empty.
func (u *CartUseCase) RemoveMany(ctx context.Context, shopperKey string, productIDs []string) ([]model.CartLineItem, error) {
	items, err := u.Items(ctx, shopperKey)
	if err != nil {
		return nil, err
	}

	drop := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		drop[id] = struct{}{}
	}

	next := items[:0]
	for _, it := range items {
		if _, gone := drop[it.ProductID]; gone {
			continue
		}
		next = append(next, it)
	}

	if len(next) == 0 {
		if err := u.carts.Delete(ctx, shopperKey); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := u.carts.Save(ctx, shopperKey, next); err != nil {
		return nil, err
	}
	return next, nil
}
