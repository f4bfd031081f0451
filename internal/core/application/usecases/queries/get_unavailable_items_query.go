package queries

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var (
	ErrGetUnavailableItemsQueryIsNotConstructed = errors.New(
		"GetUnavailableItemsQuery must be created via NewGetUnavailableItemsQuery constructor",
	)
	ErrGetAvailableItemsByCategoryQueryIsNotConstructed = errors.New(
		"GetAvailableItemsByCategoryQuery must be created via NewGetAvailableItemsByCategoryQuery constructor",
	)
	ErrCategoryIsRequired = errors.New("category is required")
)

// GetUnavailableItemsQuery retrieves the names of all out-of-stock items.
type GetUnavailableItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnavailableItemsQuery creates a query for the out-of-stock list.
func NewGetUnavailableItemsQuery() GetUnavailableItemsQuery {
	return GetUnavailableItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnavailableItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnavailableItemsQueryIsNotConstructed)
}

// GetAvailableItemsByCategoryQuery retrieves the names of available items in
// one menu category. Category comparison is case-insensitive.
type GetAvailableItemsByCategoryQuery struct { //nolint:recvcheck //using for validation
	category string

	guard guard.ConstructorGuard
}

// NewGetAvailableItemsByCategoryQuery creates a query for one category's
// available items.
func NewGetAvailableItemsByCategoryQuery(category string) (GetAvailableItemsByCategoryQuery, error) {
	if category == "" {
		return GetAvailableItemsByCategoryQuery{}, ErrCategoryIsRequired
	}

	return GetAvailableItemsByCategoryQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableItemsByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableItemsByCategoryQueryIsNotConstructed)
}

// Category returns the category being listed.
func (q GetAvailableItemsByCategoryQuery) Category() string {
	return q.category
}
