package usecase_test

import (
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polkiloo/webstudio/internal/config"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
	"github.com/polkiloo/webstudio/internal/storage/memory"
	testhelpers "github.com/polkiloo/webstudio/internal/test"
	"github.com/polkiloo/webstudio/internal/usecase"
)

const (
	merchantLogin = "studio"
	password1     = "p1"
	password2     = "p2"
	siteURL       = "https://studio.example"
)

type fixture struct {
	store     *memory.Storage
	notifier  *testhelpers.NotifierRecorder
	gateway   *robokassa.Gateway
	payments  *usecase.PaymentRequestBuilder
	orders    *usecase.OrderUseCase
	callbacks *usecase.CallbackUseCase
	invoices  *usecase.InvoiceUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gateway, err := robokassa.NewGateway(robokassa.Credentials{
		MerchantLogin: merchantLogin,
		Password1:     password1,
		Password2:     password2,
		TestMode:      true,
	}, "")
	require.NoError(t, err)

	cfg := testConfig()
	logger := testLogger()
	store := memory.New()
	notifier := &testhelpers.NotifierRecorder{}
	payments := usecase.NewPaymentRequestBuilder(store.Sequence(), gateway)

	return &fixture{
		store:     store,
		notifier:  notifier,
		gateway:   gateway,
		payments:  payments,
		orders:    usecase.NewOrderUseCase(store.Orders(), payments, notifier, cfg, logger),
		callbacks: usecase.NewCallbackUseCase(store.Orders(), store.Invoices(), store.PaymentEvents(), gateway, notifier, cfg, logger),
		invoices:  usecase.NewInvoiceUseCase(store.Orders(), store.Invoices(), payments, notifier, logger),
	}
}

func validOrderInput() usecase.OrderInput {
	return usecase.OrderInput{
		Name:        "Ivan Petrov",
		Email:       "ivan@example.com",
		Phone:       "+7 (999) 123-45-67",
		ProjectType: model.ProjectTypeCorporate,
		Description: "Corporate site with a blog",
		Amount:      "12500",
		TotalAmount: "25000",
	}
}

// signedFields builds a result callback as the gateway would post it.
func signedFields(outSum string, invID int64, target string) map[string]string {
	return map[string]string{
		"OutSum":         outSum,
		"InvId":          strconv.FormatInt(invID, 10),
		"SignatureValue": robokassa.ResultSignature(outSum, invID, password2, target),
		"shp_orderId":    target,
	}
}

func (f *fixture) createCardOrder(t *testing.T) *model.Order {
	t.Helper()
	created, err := f.orders.Create(t.Context(), validOrderInput())
	require.NoError(t, err)
	return created.Order
}

func testConfig() *config.Config {
	return &config.Config{SiteURL: siteURL}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
