package di

import (
	"go.uber.org/fx"

	"github.com/vellamart/storefront/internal/adapter/backend"
	"github.com/vellamart/storefront/internal/app"
	"github.com/vellamart/storefront/internal/config"
	"github.com/vellamart/storefront/internal/logger"
	"github.com/vellamart/storefront/internal/pkg/auth"
	"github.com/vellamart/storefront/internal/reconcile"
	"github.com/vellamart/storefront/internal/server/http/handlers"
	"github.com/vellamart/storefront/internal/server/http/router"
	"github.com/vellamart/storefront/internal/stock"
	"github.com/vellamart/storefront/internal/storage/postgres"
	"github.com/vellamart/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		backend.Module,
		reconcile.Module,
		stock.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
