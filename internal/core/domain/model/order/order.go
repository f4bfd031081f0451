package order

import (
	"errors"
	"time"

	"kitchenboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Details carries the intake fields of an order. They are written once by the
// external ordering flow and never mutated by the kitchen workflow.
//
// Date and Time are kept as the raw strings recorded at intake; formats vary
// (DD/MM/YYYY, ISO, free-text clock times) and are parsed tolerantly by the
// reporting service, never here.
type Details struct {
	CustomerName   string
	Phone          string
	Items          string // comma-separated text list
	Quantity       string
	Amount         float64
	DeliveryFee    float64
	TotalAmount    float64
	DeliveryOption string // Delivery | Pickup
	DeliveryZone   string
	PaymentMethod  string // Cash | Online
	Commission     float64
	Notes          string
	Date           string
	Time           string
}

// Order is the aggregate root for a kitchen order. It manages the lifecycle
// Pending -> InProgress -> Ready, the staff/timestamp audit trail of each
// transition, and the soft-clear flag.
//
// Order follows these invariants:
//   - Must have a non-empty, externally assigned identifier
//   - Status transitions are monotonic: Pending -> InProgress -> Ready
//   - clearedAt is set only after Ready, and clearing is idempotent
//   - Cancelled is terminal and never transitions
//   - Rows are never deleted; "cleared" is a timestamp, not removal
type Order struct {
	id      string
	details Details
	status  Status

	acceptedBy string
	acceptedAt *time.Time
	readyAt    *time.Time
	clearedAt  *time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status from intake data.
// The identifier is assigned by the external ordering flow and must be non-empty.
func NewOrder(id string, details Details) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}

	return &Order{
		id:            id,
		details:       details,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence, including its lifecycle
// state and timestamps. Used only by repository implementations.
func RestoreOrder(
	id string,
	details Details,
	status Status,
	acceptedBy string,
	acceptedAt, readyAt, clearedAt *time.Time,
) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		details:       details,
		status:        status,
		acceptedBy:    acceptedBy,
		acceptedAt:    acceptedAt,
		readyAt:       readyAt,
		clearedAt:     clearedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Called when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's externally assigned identifier.
func (o *Order) ID() string {
	return o.id
}

// Details returns the immutable intake fields.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// AcceptedBy returns the staff member who started cooking, or "" before acceptance.
func (o *Order) AcceptedBy() string {
	return o.acceptedBy
}

// AcceptedAt returns when cooking started, or nil before acceptance.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// ReadyAt returns when the order became ready, or nil before that.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// ClearedAt returns when the order was cleared from the ready board, or nil.
func (o *Order) ClearedAt() *time.Time {
	return o.clearedAt
}

// IsCleared reports whether the order was soft-cleared from the ready board.
func (o *Order) IsCleared() bool {
	return o.clearedAt != nil
}

// TotalAmount returns the order total, falling back to amount plus delivery
// fee when a total was not recorded separately at intake.
func (o *Order) TotalAmount() float64 {
	if o.details.TotalAmount != 0 {
		return o.details.TotalAmount
	}
	return o.details.Amount + o.details.DeliveryFee
}

// StartCooking transitions the order from Pending to InProgress and records
// the accepting staff member and timestamp.
//
// Returns an error if staff is empty or the order is not Pending. A second
// acceptance of the same order fails here instead of overwriting the first.
func (o *Order) StartCooking(staff string, at time.Time) error {
	if staff == "" {
		return errs.NewValueIsRequiredError("staff")
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acceptedBy = staff
	o.acceptedAt = &at
	return nil
}

// MarkReady transitions the order from InProgress to Ready and stamps readyAt.
// The webhook notification that follows this transition is a side effect owned
// by the application layer; the state change is authoritative on its own.
func (o *Order) MarkReady(at time.Time) error {
	newStatus, err := o.status.Ready()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.readyAt = &at
	return nil
}

// Clear soft-clears a Ready order from the ready board by stamping clearedAt.
// Clearing an already-cleared order is a no-op, not an error. Clearing an
// order that is not Ready returns an error.
func (o *Order) Clear(at time.Time) error {
	if o.clearedAt != nil {
		return nil
	}
	if o.status != Ready {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			errors.New(o.status.String()+" is not a valid status to clear"))
	}

	o.clearedAt = &at
	return nil
}
