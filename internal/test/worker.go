package test

import (
	"context"
	"sync"
)

// SyncFacadeStub records background refresh calls for worker tests.
type SyncFacadeStub struct {
	sync.Mutex
	CatalogCalls  int
	SettingsCalls int
	CatalogErr    error
	SettingsErr   error
}

func (s *SyncFacadeStub) RefreshCatalog(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()
	s.CatalogCalls++
	return s.CatalogErr
}

func (s *SyncFacadeStub) RefreshSettings(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()
	s.SettingsCalls++
	return s.SettingsErr
}
