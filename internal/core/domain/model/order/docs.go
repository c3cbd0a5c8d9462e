// Package order provides the order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning its line items as a composition
//   - Item: an immutable product/quantity line with a price snapshot
//   - Status: the finite state machine governing lifecycle transitions
//   - NewOrderNumber: the generator for human-readable order numbers
//
// Key business rules:
//   - Orders are created pending with at least one line item; the total is the
//     sum of line subtotals computed from product prices at creation time
//   - Status follows pending -> confirmed -> shipped -> delivered, with
//     cancellation allowed from pending and confirmed; delivered and cancelled
//     are terminal
//   - Only callers with the manager capability may cancel
//   - Field edits are limited to pending orders; hard deletion is limited to
//     pending and cancelled orders
//
// Inventory reservation and release are side effects of entering or leaving
// the confirmed status. The aggregate validates the transition; the enclosing
// use case performs the inventory adjustments inside the same transaction.
package order
