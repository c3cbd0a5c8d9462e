package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound        = errors.New("object not found")
	ErrProductsNotFound      = errors.New("products not found")
	ErrValueIsInvalid        = errors.New("value is invalid")
	ErrValueIsRequired       = errors.New("value is required")
	ErrInvalidState          = errors.New("operation is not allowed in current state")
	ErrInvalidTransition     = errors.New("status transition is not allowed")
	ErrForbidden             = errors.New("operation is forbidden for caller role")
	ErrVersionConflict       = errors.New("version conflict")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrDuplicateKey          = errors.New("duplicate key")
	ErrProductInUse          = errors.New("product is referenced by order items")
)

// sanitize strips newlines from values before they are embedded in messages,
// so a single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a lower-level cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ProductsNotFoundError indicates that one or more products referenced by an
// order creation request do not exist. IDs lists every missing product.
type ProductsNotFoundError struct {
	IDs   []string
	Cause error
}

// NewProductsNotFoundError creates a ProductsNotFoundError listing the missing product IDs.
func NewProductsNotFoundError(ids []string) *ProductsNotFoundError {
	return &ProductsNotFoundError{IDs: ids}
}

func (e *ProductsNotFoundError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrProductsNotFound, strings.Join(e.IDs, ", ")))
}

func (e *ProductsNotFoundError) Unwrap() error {
	return ErrProductsNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a lower-level cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a lower-level cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError indicates that an operation is not permitted while the
// order is in its current status, e.g. editing a shipped order.
type InvalidStateError struct {
	Operation string
	Status    string
}

// NewInvalidStateError creates an InvalidStateError naming the rejected operation
// and the order status that rejected it.
func NewInvalidStateError(operation string, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

func (e *InvalidStateError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot %s order with status %q", ErrInvalidState, e.Operation, e.Status))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError indicates a status change that is not in the transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError naming source and target status.
func NewInvalidTransitionError(from string, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: cannot transition from %q to %q", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError indicates that the caller role lacks the capability for an action.
type ForbiddenError struct {
	Role   string
	Action string
}

// NewForbiddenError creates a ForbiddenError naming the caller role and refused action.
func NewForbiddenError(role string, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %q cannot %s", ErrForbidden, e.Role, e.Action))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// VersionConflictError indicates an optimistic lock mismatch: the version supplied
// by the caller no longer matches the stored version.
type VersionConflictError struct {
	ParamName string
	Supplied  int
	Actual    int
}

// NewVersionConflictError creates a VersionConflictError with the supplied and stored versions.
// Actual may be -1 when the stored version was not observable (lost CAS race).
func NewVersionConflictError(paramName string, supplied int, actual int) *VersionConflictError {
	return &VersionConflictError{ParamName: paramName, Supplied: supplied, Actual: actual}
}

func (e *VersionConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s was modified by another request (supplied version %d, stored version %d)",
		ErrVersionConflict, e.ParamName, e.Supplied, e.Actual))
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// InsufficientInventoryError indicates that reserving the requested quantity
// would drive a product's inventory negative.
type InsufficientInventoryError struct {
	ProductID string
	Requested int
	Available int
}

// NewInsufficientInventoryError creates an InsufficientInventoryError for one product.
func NewInsufficientInventoryError(productID string, requested int, available int) *InsufficientInventoryError {
	return &InsufficientInventoryError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientInventoryError) Error() string {
	return sanitize(fmt.Sprintf("%s: product %s has %d available, %d requested",
		ErrInsufficientInventory, e.ProductID, e.Available, e.Requested))
}

func (e *InsufficientInventoryError) Unwrap() error {
	return ErrInsufficientInventory
}

// DuplicateKeyError indicates a uniqueness constraint violation, e.g. an already
// used SKU or idempotency key.
type DuplicateKeyError struct {
	ParamName string
	Value     string
	Cause     error
}

// NewDuplicateKeyError creates a DuplicateKeyError naming the conflicting field and value.
func NewDuplicateKeyError(paramName string, value string) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value}
}

// NewDuplicateKeyErrorWithCause creates a DuplicateKeyError wrapping the storage-level cause.
func NewDuplicateKeyErrorWithCause(paramName string, value string, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %q already exists (cause: %s)",
			ErrDuplicateKey, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %q already exists", ErrDuplicateKey, e.ParamName, e.Value))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// ProductInUseError indicates that a product cannot be deleted because order
// line items still reference it.
type ProductInUseError struct {
	ProductID  string
	References int64
}

// NewProductInUseError creates a ProductInUseError with the number of referencing line items.
func NewProductInUseError(productID string, references int64) *ProductInUseError {
	return &ProductInUseError{ProductID: productID, References: references}
}

func (e *ProductInUseError) Error() string {
	return sanitize(fmt.Sprintf("%s: product %s is referenced by %d order item(s)",
		ErrProductInUse, e.ProductID, e.References))
}

func (e *ProductInUseError) Unwrap() error {
	return ErrProductInUse
}
