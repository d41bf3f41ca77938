package robokassa

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// ErrMalformedCallback is returned when mandatory callback fields are missing.
var ErrMalformedCallback = errors.New("malformed callback")

// Callback holds fields the gateway posts to result URLs.
type Callback struct {
	OutSum    string
	InvID     int64
	Signature string
	OrderID   string
	Fields    map[string]string
}

// ParseCallback extracts callback fields from a merged field map.
func ParseCallback(fields map[string]string) (Callback, error) {
	cb := Callback{
		OutSum:    strings.TrimSpace(fields["OutSum"]),
		Signature: strings.TrimSpace(fields["SignatureValue"]),
		OrderID:   strings.TrimSpace(fields[shpOrderIDKey]),
		Fields:    fields,
	}

	rawInvID := strings.TrimSpace(fields["InvId"])
	if cb.OutSum == "" || rawInvID == "" || cb.Signature == "" {
		return Callback{}, errors.Wrap(ErrMalformedCallback, "OutSum, InvId and SignatureValue are required")
	}

	invID, err := strconv.ParseInt(rawInvID, 10, 64)
	if err != nil || invID <= 0 {
		return Callback{}, errors.Wrapf(ErrMalformedCallback, "invalid InvId %q", rawInvID)
	}
	cb.InvID = invID
	return cb, nil
}

// MergeFields combines query and body fields. Body values win on conflicts.
func MergeFields(query, body map[string][]string) map[string]string {
	merged := make(map[string]string, len(query)+len(body))
	for k, v := range query {
		if len(v) > 0 {
			merged[k] = v[0]
		}
	}
	for k, v := range body {
		if len(v) > 0 {
			merged[k] = v[0]
		}
	}
	return merged
}

// Ack is the acknowledgment body the gateway expects.
func Ack(invID int64) string {
	return "OK" + strconv.FormatInt(invID, 10)
}
