package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Role is the caller capability passed into order operations.
// Authentication and token mechanics live outside the engine; operations only
// consume the resolved role to gate privileged transitions such as cancellation.
type Role string

const (
	// RoleManager may perform every order operation including cancellation.
	RoleManager Role = "manager"

	// RoleWarehouseStaff may perform routine order processing but not cancellation.
	RoleWarehouseStaff Role = "warehouse_staff"

	// RoleViewer has read-only access.
	RoleViewer Role = "viewer"
)

// RoleFromString parses a role received from the transport layer.
// Returns an error for unknown roles so upstream misconfiguration fails loudly
// instead of silently degrading to an unprivileged caller.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleManager, RoleWarehouseStaff, RoleViewer:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Validate checks the role is one of the known capability levels.
func (r Role) Validate() error {
	switch r {
	case RoleManager, RoleWarehouseStaff, RoleViewer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// CanCancelOrders reports whether the role holds the cancellation capability.
func (r Role) CanCancelOrders() bool {
	return r == RoleManager
}

func (r Role) String() string {
	return string(r)
}
