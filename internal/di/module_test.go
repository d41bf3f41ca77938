package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/webstudio/internal/adapter/telegram"
	"github.com/polkiloo/webstudio/internal/app"
	"github.com/polkiloo/webstudio/internal/config"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/usecase"
	"github.com/polkiloo/webstudio/internal/test"
)

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:        "127.0.0.1:0",
		SiteURL:           "https://studio.example",
		MerchantLogin:     "studio",
		Password1:         "p1",
		Password2:         "p2",
		JWTSecret:         "secret",
		AdminLogin:        "admin",
		AdminTokenTTL:     time.Hour,
		NotifyWorkers:     1,
		NotifyQueueSize:   4,
		NotifyMaxAttempts: 1,
		ShutdownTimeout:   time.Second,
	}
}

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var (
		facade   *app.StudioFacade
		orders   repository.OrderRepository
		notifier usecase.Notifier
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(testConfig()),
			fx.Replace(logger),
		),
		fx.Populate(&facade, &orders, &notifier),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || orders == nil || notifier == nil {
		t.Fatal("expected graph to be populated")
	}
	if err := facade.Health(context.Background()); err != nil {
		t.Fatalf("expected in-memory storage to be healthy: %v", err)
	}
}

func TestModuleStartStopDeliversNotifications(t *testing.T) {
	sender := &test.SenderStub{}
	var facade *app.StudioFacade

	fxApp := fxtest.New(t,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(testConfig()),
			fx.Replace(slog.New(slog.NewJSONHandler(io.Discard, nil))),
			fx.Replace(telegram.Sender(sender)),
		),
		fx.Populate(&facade),
	)
	fxApp.RequireStart()
	defer fxApp.RequireStop()

	created, err := facade.CreateOrder(context.Background(), usecase.OrderInput{
		Name:        "Client",
		Email:       "client@example.com",
		Phone:       "+79991234567",
		ProjectType: model.ProjectTypeLanding,
		Amount:      "1000",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.PaymentURL == "" {
		t.Fatal("expected signed payment url")
	}

	deadline := time.After(time.Second)
	for len(sender.Sent()) == 0 {
		select {
		case <-deadline:
			t.Fatal("expected order notification to be delivered")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
