// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, customer and non-empty item name
//   - Order status follows a defined workflow: Pending -> Assigned -> PickedUp -> Delivered
//   - Pending and Assigned orders can be cancelled, picked up orders cannot
//   - Delivered and Cancelled are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
