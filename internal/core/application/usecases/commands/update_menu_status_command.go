package commands

import (
	"errors"

	"kitchenboard/internal/core/domain/model/menu"
	"kitchenboard/internal/pkg/guard"
)

var (
	ErrUpdateMenuStatusCommandIsNotConstructed = errors.New(
		"UpdateMenuStatusCommand must be created via NewUpdateMenuStatusCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("itemName is required")
)

// UpdateMenuStatusCommand represents a staff member toggling a menu item
// between Available and Out of Stock.
type UpdateMenuStatusCommand struct { //nolint:recvcheck //using for validation
	itemName string
	status   menu.ItemStatus
	staff    string

	guard guard.ConstructorGuard
}

// NewUpdateMenuStatusCommand creates a command for changing item availability.
// The status arrives as its stored string form ("Available", "Out of Stock").
func NewUpdateMenuStatusCommand(itemName, status, staff string) (UpdateMenuStatusCommand, error) {
	cmd := UpdateMenuStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemName(itemName),
		cmd.setStatus(status),
		cmd.setStaff(staff),
	); err != nil {
		return UpdateMenuStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuStatusCommandIsNotConstructed)
}

// ItemName returns the exact name of the item to update.
func (c UpdateMenuStatusCommand) ItemName() string {
	return c.itemName
}

// Status returns the target availability status.
func (c UpdateMenuStatusCommand) Status() menu.ItemStatus {
	return c.status
}

// Staff returns the staff member making the change.
func (c UpdateMenuStatusCommand) Staff() string {
	return c.staff
}

func (c *UpdateMenuStatusCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}
	c.itemName = itemName
	return nil
}

func (c *UpdateMenuStatusCommand) setStatus(status string) error {
	parsed, err := menu.ItemStatusFromString(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}

func (c *UpdateMenuStatusCommand) setStaff(staff string) error {
	if staff == "" {
		return ErrStaffIsRequired
	}
	c.staff = staff
	return nil
}
