package test

import (
	"context"

	"github.com/vellamart/storefront/internal/domain/model"
)

// CartRepositoryStub stores carts in-memory for tests.
type CartRepositoryStub struct {
	Carts     map[string][]model.CartLineItem
	LoadErr   error
	SaveErr   error
	DeleteErr error
}

// NewCartRepositoryStub constructs stub repository with initialized map.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Carts: make(map[string][]model.CartLineItem)}
}

// Load returns the stored cart; a missing cart is an empty cart.
func (s *CartRepositoryStub) Load(ctx context.Context, shopperKey string) ([]model.CartLineItem, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	items := s.Carts[shopperKey]
	out := make([]model.CartLineItem, len(items))
	copy(out, items)
	return out, nil
}

// Save replaces the stored cart.
func (s *CartRepositoryStub) Save(ctx context.Context, shopperKey string, items []model.CartLineItem) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Carts == nil {
		s.Carts = make(map[string][]model.CartLineItem)
	}
	stored := make([]model.CartLineItem, len(items))
	copy(stored, items)
	s.Carts[shopperKey] = stored
	return nil
}

// Delete removes the stored cart.
func (s *CartRepositoryStub) Delete(ctx context.Context, shopperKey string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	delete(s.Carts, shopperKey)
	return nil
}
