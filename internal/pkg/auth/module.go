package auth

import (
	"go.uber.org/fx"

	"github.com/vellamart/storefront/internal/config"
)

// Module wires session strategy and admin guard into the fx graph.
var Module = fx.Provide(
	newSessionStrategy,
	newAdminGuard,
)

type params struct {
	fx.In

	Config *config.Config
}

func newSessionStrategy(p params) *SessionStrategy {
	return NewSessionStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}

func newAdminGuard(p params) *AdminGuard {
	return NewAdminGuard(p.Config.AdminKeyHash)
}
