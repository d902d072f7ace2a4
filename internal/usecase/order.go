package usecase

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vellamart/storefront/internal/adapter/backend"
	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/pricing"
	"github.com/vellamart/storefront/internal/reconcile"
	"github.com/vellamart/storefront/internal/stock"
)

// OrderUseCase owns the order status lifecycle on the storefront side. The
// backend executes side effects; this layer requests transitions, reflects
// them optimistically and re-fetches the authoritative order set whenever a
// request is rejected.
type OrderUseCase struct {
	client   backend.Client
	carts    *CartUseCase
	settings *SettingsUseCase
	ledger   *stock.Ledger
	policy   *reconcile.Policy
	logger   *slog.Logger

	mu    sync.RWMutex
	cache map[string]map[string]model.Order
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(client backend.Client, carts *CartUseCase, settings *SettingsUseCase, ledger *stock.Ledger, policy *reconcile.Policy, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		client:   client,
		carts:    carts,
		settings: settings,
		ledger:   ledger,
		policy:   policy,
		logger:   logger,
		cache:    make(map[string]map[string]model.Order),
	}
}

// Checkout places an order from the selected cart lines. An empty productIDs
// selection means the whole cart. Nothing local mutates until the backend
// confirms: only then the stock ledger is decremented and the purchased
// lines removed, and the decrement is unconditional once confirmation
// arrives.
func (u *OrderUseCase) Checkout(ctx context.Context, token, shopperKey string, productIDs []string, address model.ShippingAddress, paymentMethod string) (*model.Order, error) {
	items, err := u.carts.Items(ctx, shopperKey)
	if err != nil {
		return nil, err
	}

	selected := items
	if len(productIDs) > 0 {
		wanted := make(map[string]struct{}, len(productIDs))
		for _, id := range productIDs {
			wanted[id] = struct{}{}
		}
		selected = selected[:0:0]
		for _, it := range items {
			if _, ok := wanted[it.ProductID]; ok {
				selected = append(selected, it)
			}
		}
	}

	if len(selected) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	if address.FullName == "" || address.Street == "" || address.City == "" {
		return nil, domainErrors.ErrMissingAddress
	}

	settings, err := u.settings.Current(ctx)
	if err != nil {
		return nil, err
	}
	quote := pricing.Compute(pricing.FromCart(selected), settings)

	req := backend.OrderRequest{
		Items:          make([]backend.OrderRequestItem, 0, len(selected)),
		Address:        address,
		Total:          quote.Total,
		PaymentMethod:  paymentMethod,
		IdempotencyKey: uuid.NewString(),
	}
	purchased := make([]string, 0, len(selected))
	quantities := make(map[string]int, len(selected))
	for _, it := range selected {
		req.Items = append(req.Items, backend.OrderRequestItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
		})
		purchased = append(purchased, it.ProductID)
		quantities[it.ProductID] = it.Quantity
	}

	order, err := u.client.CreateOrder(ctx, token, req)
	if err != nil {
		return nil, err
	}

	// confirmed: availability and the local snapshot settle first; cart
	// cleanup must never undo a placed order
	u.ledger.DecrementAll(quantities)
	u.remember(shopperKey, *order)

	if _, err := u.carts.RemoveMany(ctx, shopperKey, purchased); err != nil {
		u.logger.Error("purchased lines left in cart after checkout",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
	return order, nil
}

// Orders returns the caller's orders, refreshed from the backend. The fetch
// also resets the local snapshot used by optimistic transitions.
func (u *OrderUseCase) Orders(ctx context.Context, token, shopperKey string) ([]model.Order, error) {
	if err := u.Resync(ctx, token, shopperKey); err != nil {
		return nil, err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	orders := make([]model.Order, 0, len(u.cache[shopperKey]))
	for _, o := range u.cache[shopperKey] {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

// Get returns one order from the local snapshot, resyncing when it is absent.
func (u *OrderUseCase) Get(ctx context.Context, token, shopperKey, orderID string) (*model.Order, error) {
	u.mu.RLock()
	order, ok := u.cache[shopperKey][orderID]
	u.mu.RUnlock()
	if ok {
		return &order, nil
	}

	if err := u.Resync(ctx, token, shopperKey); err != nil {
		return nil, err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	order, ok = u.cache[shopperKey][orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &order, nil
}

// Transition requests a status change. The new status shows locally before
// the backend answers; rejection triggers a full authoritative re-fetch so
// no speculative state survives. Re-requesting the current status is a
// no-op and never reaches the network.
func (u *OrderUseCase) Transition(ctx context.Context, token, shopperKey, orderID string, status model.OrderStatus, admin bool) error {
	if !model.KnownOrderStatus(status) {
		return domainErrors.ErrInvalidStatus
	}

	order, err := u.Get(ctx, token, shopperKey, orderID)
	if err != nil {
		return err
	}

	if order.Status == status {
		return nil
	}
	if !admin && !model.CanTransition(order.Status, status) {
		return domainErrors.ErrStatusNotAllowed
	}

	return u.policy.Do(ctx, "order transition",
		func() { u.setStatus(shopperKey, orderID, status) },
		func(ctx context.Context) error {
			return u.client.UpdateOrderStatus(ctx, token, orderID, status)
		},
		func(ctx context.Context) error {
			return u.Resync(ctx, token, shopperKey)
		},
	)
}

// Cancel requests the dedicated cancellation route. Shoppers may cancel only
// while the order is still Placed; administrators are unconstrained. Stock
// restoration on cancellation is the backend's job, never applied locally.
func (u *OrderUseCase) Cancel(ctx context.Context, token, shopperKey, orderID string, admin bool) error {
	order, err := u.Get(ctx, token, shopperKey, orderID)
	if err != nil {
		return err
	}

	if order.Status == model.OrderStatusCancelled {
		return nil
	}
	if !admin && !model.CustomerCancellable(order.Status) {
		return domainErrors.ErrNotCancellable
	}

	return u.policy.Do(ctx, "order cancel",
		func() { u.setStatus(shopperKey, orderID, model.OrderStatusCancelled) },
		func(ctx context.Context) error {
			return u.client.CancelOrder(ctx, token, orderID)
		},
		func(ctx context.Context) error {
			return u.Resync(ctx, token, shopperKey)
		},
	)
}

// Resync replaces the caller's local order snapshot with backend state.
func (u *OrderUseCase) Resync(ctx context.Context, token, shopperKey string) error {
	orders, err := u.client.FetchOrders(ctx, token)
	if err != nil {
		return err
	}

	snapshot := make(map[string]model.Order, len(orders))
	for _, o := range orders {
		snapshot[o.ID] = o
	}

	u.mu.Lock()
	u.cache[shopperKey] = snapshot
	u.mu.Unlock()
	return nil
}

func (u *OrderUseCase) remember(shopperKey string, order model.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.cache[shopperKey] == nil {
		u.cache[shopperKey] = make(map[string]model.Order)
	}
	u.cache[shopperKey][order.ID] = order
}

func (u *OrderUseCase) setStatus(shopperKey, orderID string, status model.OrderStatus) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if order, ok := u.cache[shopperKey][orderID]; ok {
		order.Status = status
		u.cache[shopperKey][orderID] = order
	}
}
