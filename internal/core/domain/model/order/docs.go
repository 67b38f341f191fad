// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management, line item ownership and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages identity, items, totals and lifecycle
//   - OrderItem: A line item owned exclusively by its order
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid customer and are created in Pending status
//   - Items can only be added, updated or removed while the order is Pending
//   - The total amount always equals the sum of the items' line totals
//   - Order status follows a defined workflow: Pending -> Paid -> Shipped,
//     with cancellation possible from Pending and Paid
//   - Orders cannot be paid without items; the payment timestamp is retained
//     when a paid order is cancelled
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
