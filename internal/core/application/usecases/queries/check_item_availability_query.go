package queries

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var (
	ErrCheckItemAvailabilityQueryIsNotConstructed = errors.New(
		"CheckItemAvailabilityQuery must be created via NewCheckItemAvailabilityQuery constructor",
	)
	ErrItemNameIsRequired = errors.New("itemName is required")
)

// StatusNotTracked is reported for items absent from the registry. The check
// fails open: an untracked item is treated as orderable so that an incomplete
// registry never blocks sales.
const StatusNotTracked = "Not tracked"

// CheckItemAvailabilityQuery asks whether a free-text item name is currently
// orderable. Matching is fuzzy; external automation sends names that rarely
// match the registry exactly.
//
// Example:
//
//	query, err := NewCheckItemAvailabilityQuery("fries")
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewCheckItemAvailabilityQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%s: %s\n", result.ItemName, result.Status) // "fries: Available"
type CheckItemAvailabilityQuery struct { //nolint:recvcheck //using for validation
	itemName string

	guard guard.ConstructorGuard
}

// NewCheckItemAvailabilityQuery creates an availability check for one item name.
func NewCheckItemAvailabilityQuery(itemName string) (CheckItemAvailabilityQuery, error) {
	if itemName == "" {
		return CheckItemAvailabilityQuery{}, ErrItemNameIsRequired
	}

	return CheckItemAvailabilityQuery{
		itemName: itemName,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckItemAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckItemAvailabilityQueryIsNotConstructed)
}

// ItemName returns the free-text name being checked.
func (q CheckItemAvailabilityQuery) ItemName() string {
	return q.itemName
}

// CheckItemAvailabilityQueryResponse reports the availability verdict.
// Available is true for untracked items.
type CheckItemAvailabilityQueryResponse struct {
	ItemName  string `json:"itemName"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
}
