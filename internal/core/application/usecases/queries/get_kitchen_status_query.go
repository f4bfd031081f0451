package queries

import (
	"errors"

	"kitchenboard/internal/pkg/guard"
)

var ErrGetKitchenStatusQueryIsNotConstructed = errors.New(
	"GetKitchenStatusQuery must be created via NewGetKitchenStatusQuery constructor",
)

// GetKitchenStatusQuery retrieves the global kitchen OPEN/CLOSED flag.
type GetKitchenStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenStatusQuery creates a query for the kitchen flag.
func NewGetKitchenStatusQuery() GetKitchenStatusQuery {
	return GetKitchenStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenStatusQueryIsNotConstructed)
}

// GetKitchenStatusQueryResponse reports the kitchen flag.
type GetKitchenStatusQueryResponse struct {
	Status string `json:"status"`
}
