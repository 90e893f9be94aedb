package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyProviderPayload = errors.New("mp_payload cannot be empty")

// BillingPaymentCreateRequest is the optional envelope for payment creation.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. A body without the envelope is forwarded whole.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ProviderPayload extracts the payload to send to the gateway from a raw
// request body. An empty body yields "{}".
func ProviderPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			v := strings.TrimSpace(string(wrapped))
			if v == "" || v == "null" {
				return nil, ErrEmptyProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
