package robokassa

import (
	"net/url"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// DefaultPaymentURL is the merchant payment page of the gateway.
const DefaultPaymentURL = "https://auth.robokassa.ru/Merchant/Index.aspx"

// Credentials identify the merchant at the gateway.
type Credentials struct {
	MerchantLogin string
	Password1     string
	Password2     string
	TestMode      bool
}

// PaymentRequest describes a single payment attempt.
type PaymentRequest struct {
	Amount      decimal.Decimal
	InvID       int64
	Description string
	OrderID     string
}

// Gateway builds signed payment links and verifies callbacks.
type Gateway struct {
	creds   Credentials
	baseURL *url.URL
}

// NewGateway validates credentials and payment page URL.
func NewGateway(creds Credentials, paymentURL string) (*Gateway, error) {
	if paymentURL == "" {
		paymentURL = DefaultPaymentURL
	}
	parsed, err := url.Parse(paymentURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse payment url")
	}
	if !parsed.IsAbs() {
		return nil, errors.New("payment url must be absolute")
	}
	if creds.MerchantLogin == "" || creds.Password1 == "" || creds.Password2 == "" {
		return nil, errors.New("merchant login and both passwords must be provided")
	}
	return &Gateway{creds: creds, baseURL: parsed}, nil
}

// PaymentURL returns an absolute redirect URL to the gateway payment page.
func (g *Gateway) PaymentURL(req PaymentRequest) (string, error) {
	if !req.Amount.IsPositive() {
		return "", errors.Errorf("amount must be positive, got %s", req.Amount)
	}
	if req.InvID <= 0 {
		return "", errors.Errorf("invoice id must be positive, got %d", req.InvID)
	}
	if req.OrderID == "" {
		return "", errors.New("order id must be provided")
	}

	outSum := FormatAmount(req.Amount)
	params := url.Values{}
	params.Set("MerchantLogin", g.creds.MerchantLogin)
	params.Set("OutSum", outSum)
	params.Set("InvId", strconv.FormatInt(req.InvID, 10))
	params.Set("Description", req.Description)
	params.Set("SignatureValue", Sign(g.creds.MerchantLogin, outSum, req.InvID, g.creds.Password1, req.OrderID))
	params.Set("IsTest", g.isTest())
	params.Set(shpOrderIDKey, req.OrderID)

	u := *g.baseURL
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// VerifyCallback checks callback signature with the second password.
func (g *Gateway) VerifyCallback(cb Callback) bool {
	return Verify(cb.OutSum, cb.InvID, g.creds.Password2, cb.OrderID, cb.Signature)
}

// MerchantLogin returns configured merchant identifier.
func (g *Gateway) MerchantLogin() string {
	return g.creds.MerchantLogin
}

func (g *Gateway) isTest() string {
	if g.creds.TestMode {
		return "1"
	}
	return "0"
}
