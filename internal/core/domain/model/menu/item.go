// Package menu provides the MenuItem entity for the availability registry.
// Items are keyed by name, updated only by explicit staff action, and matched
// fuzzily for availability checks from external automation.
package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"kitchenboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// ItemStatus is the availability state of a menu item.
type ItemStatus int

const (
	ItemStatusUnknown ItemStatus = iota
	Available
	OutOfStock
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		Available:  "Available",
		OutOfStock: "Out of Stock",
	}
}

// ItemStatusFromString resolves the stored representation of an item status.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid menu item status", s))
}

// Validate checks if the ItemStatus value is valid.
func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid menu item status", s))
	}
	return nil
}

// String returns the stored representation ("Available", "Out of Stock").
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Item is a menu availability entry. The item name is the business key;
// the UUID exists only for persistence.
type Item struct {
	id        uuid.UUID
	category  string
	name      string
	status    ItemStatus
	updatedBy string
	updatedAt *time.Time

	isConstructed bool
}

// NewItem creates an available menu item.
func NewItem(category, name string) (*Item, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("itemName")
	}

	return &Item{
		id:            uuid.New(),
		category:      category,
		name:          name,
		status:        Available,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a menu item from persistence.
func RestoreItem(id uuid.UUID, category, name string, status ItemStatus, updatedBy string, updatedAt *time.Time) (*Item, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("itemName")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		category:      category,
		name:          name,
		status:        status,
		updatedBy:     updatedBy,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was properly constructed through a factory.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the persistence identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// Category returns the menu category.
func (i *Item) Category() string { return i.category }

// Name returns the item name, the business key.
func (i *Item) Name() string { return i.name }

// Status returns the current availability status.
func (i *Item) Status() ItemStatus { return i.status }

// UpdatedBy returns the staff member who last changed the status.
func (i *Item) UpdatedBy() string { return i.updatedBy }

// UpdatedAt returns when the status last changed, or nil if never.
func (i *Item) UpdatedAt() *time.Time { return i.updatedAt }

// IsAvailable reports whether the item can currently be ordered.
func (i *Item) IsAvailable() bool {
	return i.status == Available
}

// SetStatus updates availability and stamps the audit fields.
// Staff attribution is required; availability only changes by explicit action.
func (i *Item) SetStatus(status ItemStatus, staff string, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if staff == "" {
		return errs.NewValueIsRequiredError("staff")
	}

	i.status = status
	i.updatedBy = staff
	i.updatedAt = &at
	return nil
}

// Matches reports whether the search term refers to this item, using
// case-insensitive bidirectional substring containment ("fries" matches
// "French Fries" and vice versa). Used for availability checks where callers
// supply free-text item names.
func (i *Item) Matches(term string) bool {
	name := strings.ToLower(strings.TrimSpace(i.name))
	search := strings.ToLower(strings.TrimSpace(term))
	if name == "" || search == "" {
		return false
	}
	return strings.Contains(name, search) || strings.Contains(search, name)
}
