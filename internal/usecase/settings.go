package usecase

import (
	"context"
	"sync"

	"github.com/vellamart/storefront/internal/adapter/backend"
	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/reconcile"
)

// SettingsUseCase keeps the optimistic local snapshot of the store-wide
// configuration singleton. The backend stays authoritative: a failed write
// is followed by a full re-fetch that may restore the previous values.
type SettingsUseCase struct {
	client backend.Client
	policy *reconcile.Policy

	mu      sync.RWMutex
	current model.StoreSettings
	loaded  bool
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(client backend.Client, policy *reconcile.Policy) *SettingsUseCase {
	return &SettingsUseCase{client: client, policy: policy}
}

// Current returns the settings snapshot, fetching it on first use.
func (u *SettingsUseCase) Current(ctx context.Context) (model.StoreSettings, error) {
	u.mu.RLock()
	if u.loaded {
		defer u.mu.RUnlock()
		return u.current, nil
	}
	u.mu.RUnlock()

	if err := u.Refresh(ctx); err != nil {
		return model.StoreSettings{}, err
	}

	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.current, nil
}

// Refresh replaces the snapshot with authoritative backend state.
func (u *SettingsUseCase) Refresh(ctx context.Context) error {
	settings, err := u.client.FetchSettings(ctx)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.current = settings
	u.loaded = true
	u.mu.Unlock()
	return nil
}

// Update applies new settings locally right away and submits them to the
// backend; a rejected write triggers an authoritative re-fetch.
func (u *SettingsUseCase) Update(ctx context.Context, token string, settings model.StoreSettings) error {
	return u.policy.Do(ctx, "settings update",
		func() {
			u.mu.Lock()
			u.current = settings
			u.loaded = true
			u.mu.Unlock()
		},
		func(ctx context.Context) error {
			return u.client.SaveSettings(ctx, token, settings)
		},
		u.Refresh,
	)
}
