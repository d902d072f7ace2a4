package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/vellamart/storefront/internal/domain/model"
	testhelpers "github.com/vellamart/storefront/internal/test"
)

func TestSettingsCurrentFetchesOnce(t *testing.T) {
	fetches := 0
	client := &testhelpers.BackendClientStub{
		FetchSettingsFn: func(context.Context) (model.StoreSettings, error) {
			fetches++
			return model.StoreSettings{ShippingFee: 150, FreeShippingThreshold: 5000, TaxRate: 12}, nil
		},
	}
	uc := NewSettingsUseCase(client, testReconcilePolicy())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		settings, err := uc.Current(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settings.ShippingFee != 150 {
			t.Fatalf("unexpected settings: %+v", settings)
		}
	}
	if fetches != 1 {
		t.Fatalf("expected a single fetch, got %d", fetches)
	}
}

func TestSettingsUpdateReflectsImmediately(t *testing.T) {
	client := &testhelpers.BackendClientStub{}
	uc := NewSettingsUseCase(client, testReconcilePolicy())
	ctx := context.Background()

	next := model.StoreSettings{ShippingFee: 99, FreeShippingThreshold: 1000, TaxRate: 5, Categories: []string{"books"}}
	if err := uc.Update(ctx, "admin-tok", next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.ShippingFee != 99 || len(current.Categories) != 1 {
		t.Fatalf("update not reflected locally: %+v", current)
	}
}

func TestSettingsUpdateFailureRestoresAuthoritativeState(t *testing.T) {
	saveErr := errors.New("backend rejected settings")
	client := &testhelpers.BackendClientStub{
		FetchSettingsFn: func(context.Context) (model.StoreSettings, error) {
			return model.StoreSettings{ShippingFee: 150}, nil
		},
		SaveSettingsFn: func(context.Context, string, model.StoreSettings) error {
			return saveErr
		},
	}
	uc := NewSettingsUseCase(client, testReconcilePolicy())
	ctx := context.Background()

	err := uc.Update(ctx, "admin-tok", model.StoreSettings{ShippingFee: 1})
	if !errors.Is(err, saveErr) {
		t.Fatalf("expected save error, got %v", err)
	}

	current, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current.ShippingFee != 150 {
		t.Fatalf("expected authoritative value restored, got %+v", current)
	}
}
