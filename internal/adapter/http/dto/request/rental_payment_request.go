package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrInvalidPaidAt = errors.New("paid_at must be RFC3339 or YYYY-MM-DD")

// MarkPaidRequest is the manager payload confirming a payment.
type MarkPaidRequest struct {
	PaidAt string `json:"paid_at" binding:"required"`
}

// ResolvePaidAt accepts a full timestamp or a calendar date (midnight UTC).
func (r MarkPaidRequest) ResolvePaidAt() (time.Time, error) {
	v := strings.TrimSpace(r.PaidAt)
	if v == "" {
		return time.Time{}, ErrInvalidPaidAt
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidPaidAt
}

// GatewayPaymentRequest is the tenant payload for an online payment.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type GatewayPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
