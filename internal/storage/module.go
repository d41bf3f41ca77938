package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/webstudio/internal/config"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/storage/memory"
	"github.com/polkiloo/webstudio/internal/storage/postgres"
)

// Module wires the storage backend and exposes domain repositories.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.InvoiceRepository { return f.Invoices() },
		func(f repository.Factory) repository.InvoiceSequence { return f.Sequence() },
		func(f repository.Factory) repository.PaymentEventRepository { return f.PaymentEvents() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newFactory selects PostgreSQL when a DSN is configured and falls back to memory otherwise.
func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Warn("database URI is not set, using in-memory storage")
		return memory.New(), nil
	}
	return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			factory.Close()
			return nil
		},
	})
}
