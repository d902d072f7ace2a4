package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{db: mock, logger: logger}
	return storage, mock
}

func sampleItems() []model.CartLineItem {
	return []model.CartLineItem{
		{ProductID: "p1", Name: "Kettle", Price: decimal.NewFromInt(1000), Quantity: 2},
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS carts").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCartLoad(t *testing.T) {
	storage, mock := newMockStorage(t)
	payload, _ := json.Marshal(sampleItems())
	mock.ExpectQuery("SELECT payload FROM carts").
		WithArgs("shopper-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"payload"}).AddRow(payload))

	items, err := storage.Carts().Load(context.Background(), "shopper-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != "p1" || items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if !items[0].Price.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("price did not round-trip: %s", items[0].Price)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCartLoadMissing(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT payload FROM carts").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	if _, err := storage.Carts().Load(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartLoadCorruptPayload(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT payload FROM carts").
		WithArgs("shopper-1").
		WillReturnRows(pgxmockv3.NewRows([]string{"payload"}).AddRow([]byte("{broken")))

	if _, err := storage.Carts().Load(context.Background(), "shopper-1"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCartSaveUpserts(t *testing.T) {
	storage, mock := newMockStorage(t)
	payload, _ := json.Marshal(sampleItems())
	mock.ExpectExec("INSERT INTO carts").
		WithArgs("shopper-1", payload).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	if err := storage.Carts().Save(context.Background(), "shopper-1", sampleItems()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCartSaveNilBecomesEmptyArray(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("INSERT INTO carts").
		WithArgs("shopper-1", []byte("[]")).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))

	if err := storage.Carts().Save(context.Background(), "shopper-1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCartDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("DELETE FROM carts").
		WithArgs("shopper-1").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))

	if err := storage.Carts().Delete(context.Background(), "shopper-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
