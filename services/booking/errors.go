package booking

import (
	"fmt"
	"sort"
	"strings"
)

// Error is a booking-flow error with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// ValidationError carries per-field messages for the details form. Caught
// before any network call and shown inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid reservation details (" + strings.Join(parts, "; ") + ")"
}

// GatewayError is a payment-gateway failure. Recoverable errors (declines,
// card validation) keep the flow in awaiting-payment for retry.
type GatewayError struct {
	Message     string
	Recoverable bool
}

func (e *GatewayError) Error() string {
	return e.Message
}
