// Package order provides the domain entity and business logic for kitchen
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, intake details, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Details: The immutable intake fields recorded by the external ordering flow
//
// Key business rules:
//   - Order identifiers are opaque strings assigned externally at intake
//   - Status follows a defined workflow: Pending -> InProgress -> Ready
//   - Cancelled is terminal and excludes the order from commission totals
//   - Clearing is a soft flag (clearedAt timestamp); rows are never deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
