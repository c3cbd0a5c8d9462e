package order

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderNumber generates a human-readable order number of the form
// "ORD-XXXXXXXX", where the suffix is the first group of a random UUID
// uppercased. Order numbers are unique independent of any idempotency key;
// storage carries a unique constraint as the backstop.
func NewOrderNumber() string {
	raw := uuid.New().String()
	return "ORD-" + strings.ToUpper(strings.SplitN(raw, "-", 2)[0])
}
