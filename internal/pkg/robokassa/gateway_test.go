package robokassa

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() Credentials {
	return Credentials{MerchantLogin: "studio", Password1: "pass1", Password2: "pass2", TestMode: true}
}

func TestNewGatewayValidation(t *testing.T) {
	_, err := NewGateway(testCredentials(), "://bad")
	assert.Error(t, err)

	_, err = NewGateway(testCredentials(), "/relative")
	assert.Error(t, err)

	_, err = NewGateway(Credentials{MerchantLogin: "studio"}, "")
	assert.Error(t, err)

	gw, err := NewGateway(testCredentials(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPaymentURL, gw.baseURL.String())
	assert.Equal(t, "studio", gw.MerchantLogin())
}

func TestGatewayPaymentURL(t *testing.T) {
	gw, err := NewGateway(testCredentials(), "https://pay.example.com/Merchant/Index.aspx")
	require.NoError(t, err)

	link, err := gw.PaymentURL(PaymentRequest{
		Amount:      decimal.RequireFromString("12500"),
		InvID:       15,
		Description: "Предоплата за сайт & SEO",
		OrderID:     "order-1",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "https", parsed.Scheme)
	assert.Equal(t, "pay.example.com", parsed.Host)
	assert.Equal(t, "/Merchant/Index.aspx", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "studio", q.Get("MerchantLogin"))
	assert.Equal(t, "12500.00", q.Get("OutSum"))
	assert.Equal(t, "15", q.Get("InvId"))
	assert.Equal(t, "Предоплата за сайт & SEO", q.Get("Description"))
	assert.Equal(t, "1", q.Get("IsTest"))
	assert.Equal(t, "order-1", q.Get("shp_orderId"))
	assert.Equal(t, Sign("studio", "12500.00", 15, "pass1", "order-1"), q.Get("SignatureValue"))
	assert.Contains(t, link, "OutSum=12500.00")
	assert.NotContains(t, parsed.RawQuery, "Предоплата", "description must be URL-encoded")
}

func TestGatewayPaymentURLLiveMode(t *testing.T) {
	creds := testCredentials()
	creds.TestMode = false
	gw, err := NewGateway(creds, "")
	require.NoError(t, err)

	link, err := gw.PaymentURL(PaymentRequest{Amount: decimal.RequireFromString("1"), InvID: 1, OrderID: "x"})
	require.NoError(t, err)
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "0", parsed.Query().Get("IsTest"))
}

func TestGatewayPaymentURLRejectsInvalidRequests(t *testing.T) {
	gw, err := NewGateway(testCredentials(), "")
	require.NoError(t, err)

	cases := map[string]PaymentRequest{
		"zero amount":     {Amount: decimal.Zero, InvID: 1, OrderID: "x"},
		"negative amount": {Amount: decimal.RequireFromString("-5"), InvID: 1, OrderID: "x"},
		"missing inv id":  {Amount: decimal.RequireFromString("5"), OrderID: "x"},
		"missing order":   {Amount: decimal.RequireFromString("5"), InvID: 1},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := gw.PaymentURL(req)
			assert.Error(t, err)
		})
	}
}

func TestGatewayVerifyCallback(t *testing.T) {
	gw, err := NewGateway(testCredentials(), "")
	require.NoError(t, err)

	cb := Callback{OutSum: "25000.00", InvID: 3, OrderID: "order-1"}
	cb.Signature = ResultSignature(cb.OutSum, cb.InvID, "pass2", cb.OrderID)
	assert.True(t, gw.VerifyCallback(cb))

	cb.Signature = ResultSignature(cb.OutSum, cb.InvID, "pass1", cb.OrderID)
	assert.False(t, gw.VerifyCallback(cb))
}
