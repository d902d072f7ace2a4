package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/domain/repository"
)

// DB is the subset of pgxpool.Pool the storage needs; tests substitute a
// pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// Storage persists the storefront's local state (shopper carts) in
// PostgreSQL. Everything else is owned by the commerce backend.
type Storage struct {
	db     DB
	logger *slog.Logger
}

type cartRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{db: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Carts returns the cart repository backed by this storage.
func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS carts (
            shopper_key TEXT PRIMARY KEY,
            payload JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	if _, err := s.db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Load(ctx context.Context, shopperKey string) ([]model.CartLineItem, error) {
	const query = `SELECT payload FROM carts WHERE shopper_key=$1`
	var payload []byte
	err := r.storage.db.QueryRow(ctx, query, shopperKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	var items []model.CartLineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("decode cart payload: %w", err)
	}
	return items, nil
}

func (r *cartRepository) Save(ctx context.Context, shopperKey string, items []model.CartLineItem) error {
	if items == nil {
		items = []model.CartLineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart payload: %w", err)
	}

	const query = `INSERT INTO carts (shopper_key, payload, updated_at) VALUES ($1, $2, NOW())
                   ON CONFLICT (shopper_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`
	if _, err := r.storage.db.Exec(ctx, query, shopperKey, payload); err != nil {
		return err
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, shopperKey string) error {
	const query = `DELETE FROM carts WHERE shopper_key=$1`
	_, err := r.storage.db.Exec(ctx, query, shopperKey)
	return err
}
