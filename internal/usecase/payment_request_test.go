package usecase_test

import (
	"net/url"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
	"github.com/polkiloo/webstudio/internal/usecase"
)

func TestPaymentRequestBuilder_Build(t *testing.T) {
	f := newFixture(t)

	link, err := f.payments.Build(t.Context(), decimal.RequireFromString("12500"), "Prepayment", "order-42")
	require.NoError(t, err)
	assert.Equal(t, int64(1), link.InvID)

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	q := u.Query()
	assert.Equal(t, "12500.00", q.Get("OutSum"))
	assert.Equal(t, "Prepayment", q.Get("Description"))
	assert.Equal(t, "order-42", q.Get("shp_orderId"))
	assert.Equal(t, robokassa.Sign(merchantLogin, "12500.00", 1, password1, "order-42"), q.Get("SignatureValue"))
}

func TestPaymentRequestBuilder_RejectsNonPositive(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.Build(t.Context(), decimal.Zero, "Prepayment", "order-42")
	require.Error(t, err)
}

func TestPaymentRequestBuilder_ConcurrentIDsAreUnique(t *testing.T) {
	f := newFixture(t)

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			link, err := f.payments.Build(t.Context(), decimal.NewFromInt(10), "x", "order")
			if assert.NoError(t, err) {
				ids <- link.InvID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate InvId %d", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

var _ usecase.PaymentGateway = (*robokassa.Gateway)(nil)
