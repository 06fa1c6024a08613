// Package partner provides domain entities and business logic for delivery
// partner management. It implements the Partner aggregate root with
// availability tracking and delivery statistics.
//
// The package includes:
//   - Partner: The aggregate root managing identity, availability and ratings
//   - Status: A state machine for partner availability
//
// Key business rules:
//   - A partner is Busy exactly when it carries a current order
//   - Busy is entered and left only through the order lifecycle
//   - Manual status changes move only between Available and Offline
//   - Ratings outside the 1 to 5 range are discarded without error
package partner
