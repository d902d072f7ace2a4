package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CatalogFacade exposes the subset of application functionality required by the worker.
type CatalogFacade interface {
	RefreshCatalog(ctx context.Context) error
	RefreshSettings(ctx context.Context) error
}

type syncKind string

const (
	syncCatalog  syncKind = "catalog"
	syncSettings syncKind = "settings"
)

// Syncer periodically refreshes catalog and store settings from the backend
// so that local snapshots never drift far from the authoritative values.
type Syncer struct {
	facade       CatalogFacade
	pollInterval time.Duration
	workers      int
	logger       *slog.Logger

	jobs   chan syncKind
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSyncer constructs the background sync worker pool.
func NewSyncer(facade CatalogFacade, pollInterval time.Duration, workers int, logger *slog.Logger) *Syncer {
	if workers <= 0 {
		workers = 1
	}
	return &Syncer{
		facade:       facade,
		pollInterval: pollInterval,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan syncKind, workers*2),
	}
}

// Start launches background processing.
func (s *Syncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *Syncer) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Syncer) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enqueue(ctx)
		}
	}
}

func (s *Syncer) enqueue(ctx context.Context) {
	for _, kind := range []syncKind{syncCatalog, syncSettings} {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- kind:
		}
	}
}

func (s *Syncer) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case kind, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handle(ctx, kind)
		}
	}
}

func (s *Syncer) handle(ctx context.Context, kind syncKind) {
	var err error
	switch kind {
	case syncCatalog:
		err = s.facade.RefreshCatalog(ctx)
	case syncSettings:
		err = s.facade.RefreshSettings(ctx)
	}
	if err != nil {
		s.logger.Error("background sync failed", slog.String("target", string(kind)), slog.String("error", err.Error()))
	}
}
