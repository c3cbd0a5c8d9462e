// Package product provides the catalog aggregate for the warehouse system.
// A product carries its catalog attributes (name, SKU, price, status) together
// with the available inventory count that the order engine reserves against.
//
// Key business rules:
//   - SKU is unique across the catalog
//   - Price is fixed-point currency with two decimals and never negative
//   - Inventory count never goes negative; reservation is a conditional
//     decrement executed inside the order transition's transaction
//   - The version field increments on every persisted mutation and fences
//     concurrent writers (optimistic locking)
package product
