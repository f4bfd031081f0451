package queries

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrGetMenuStatusQueryIsNotConstructed = errors.New(
	"GetMenuStatusQuery must be created via NewGetMenuStatusQuery constructor",
)

// GetMenuStatusQuery retrieves the full menu availability registry for the
// kitchen's menu management panel.
type GetMenuStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuStatusQuery creates a query for the availability registry.
func NewGetMenuStatusQuery() GetMenuStatusQuery {
	return GetMenuStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuStatusQueryIsNotConstructed)
}

// MenuItemView is one row of the menu management panel. LastUpdated is a
// display string like "Jan 2, 3:04 PM", empty for never-touched items.
type MenuItemView struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	UpdatedBy   string `json:"updatedBy"`
	LastUpdated string `json:"lastUpdated"`
}
