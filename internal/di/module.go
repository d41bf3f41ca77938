package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/webstudio/internal/adapter/telegram"
	"github.com/polkiloo/webstudio/internal/app"
	"github.com/polkiloo/webstudio/internal/config"
	"github.com/polkiloo/webstudio/internal/logger"
	"github.com/polkiloo/webstudio/internal/pkg/auth"
	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
	"github.com/polkiloo/webstudio/internal/server/http/handlers"
	"github.com/polkiloo/webstudio/internal/server/http/router"
	"github.com/polkiloo/webstudio/internal/storage"
	"github.com/polkiloo/webstudio/internal/usecase"
	"github.com/polkiloo/webstudio/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		robokassa.Module,
		storage.Module,
		telegram.Module,
		usecase.Module,
		fx.Provide(
			func(g *robokassa.Gateway) usecase.PaymentGateway { return g },
			func(d *worker.NotificationDispatcher) usecase.Notifier { return d },
			func(f *app.StudioFacade) handlers.StudioFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
