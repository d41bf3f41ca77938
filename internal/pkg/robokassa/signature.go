package robokassa

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const shpOrderIDKey = "shp_orderId"

// FormatAmount renders amount exactly as the gateway hashes it: two decimals, dot separator.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// NormalizeAmount parses a decimal string and returns its two-decimal form.
func NormalizeAmount(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return FormatAmount(d), nil
}

// Sign computes the payment request signature.
func Sign(merchantLogin, amount string, invoiceID int64, secret1, orderID string) string {
	return digest(merchantLogin, amount, strconv.FormatInt(invoiceID, 10), secret1, shpOrderIDKey+"="+orderID)
}

// ResultSignature computes the signature the gateway sends with result callbacks.
func ResultSignature(amount string, invoiceID int64, secret2, orderID string) string {
	return digest(amount, strconv.FormatInt(invoiceID, 10), secret2, shpOrderIDKey+"="+orderID)
}

// Verify checks a result callback signature. The raw amount is tried first,
// then its two-decimal form.
func Verify(amount string, invoiceID int64, secret2, orderID, provided string) bool {
	provided = strings.TrimSpace(provided)
	if provided == "" {
		return false
	}
	if strings.EqualFold(ResultSignature(amount, invoiceID, secret2, orderID), provided) {
		return true
	}
	normalized, err := NormalizeAmount(amount)
	if err != nil || normalized == amount {
		return false
	}
	return strings.EqualFold(ResultSignature(normalized, invoiceID, secret2, orderID), provided)
}

func digest(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}
