package commands

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var (
	ErrStartCookingCommandIsNotConstructed = errors.New(
		"StartCookingCommand must be created via NewStartCookingCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("orderID is required")
	ErrStaffIsRequired   = errors.New("staff is required")
)

// StartCookingCommand represents a kitchen staff member accepting a pending
// order and starting to cook it.
//
// Example:
//
//	cmd, err := NewStartCookingCommand("ORD-1042", "Kwame")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewStartCookingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start cooking: %w", err)
//	}
type StartCookingCommand struct { //nolint:recvcheck //using for validation
	orderID string
	staff   string

	guard guard.ConstructorGuard
}

// NewStartCookingCommand creates a command for accepting a pending order.
// Both the order identifier and the accepting staff name are required.
func NewStartCookingCommand(orderID, staff string) (StartCookingCommand, error) {
	cmd := StartCookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStaff(staff),
	); err != nil {
		return StartCookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCookingCommand) Validate() error {
	return c.guard.Validate(ErrStartCookingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c StartCookingCommand) OrderID() string {
	return c.orderID
}

// Staff returns the name of the accepting staff member.
func (c StartCookingCommand) Staff() string {
	return c.staff
}

func (c *StartCookingCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *StartCookingCommand) setStaff(staff string) error {
	if staff == "" {
		return ErrStaffIsRequired
	}
	c.staff = staff
	return nil
}
