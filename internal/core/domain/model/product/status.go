package product

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the catalog availability of a product.
// Inactive products stay in the catalog for existing order references but are
// not offered for new orders by clients.
type Status string

const (
	// StatusActive marks a product as orderable.
	StatusActive Status = "active"

	// StatusInactive marks a product as withdrawn from the catalog.
	StatusInactive Status = "inactive"
)

// StatusFromString parses a product status received from external input.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known values.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid product status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}
