// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence.
package menurepo

import (
	"time"

	"kitchenboard/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu availability items.
// Name is the business key; Seq preserves registry order for the displays.
type MenuItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"autoIncrement;uniqueIndex"`
	Category  string    `gorm:"size:64;index"`
	Name      string    `gorm:"size:128;uniqueIndex"`
	Status    int
	UpdatedBy string
	UpdatedAt *time.Time
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item to its database representation.
func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:        item.ID(),
		Category:  item.Category(),
		Name:      item.Name(),
		Status:    int(item.Status()),
		UpdatedBy: item.UpdatedBy(),
		UpdatedAt: item.UpdatedAt(),
	}
}

// toDomain converts a database row to a menu item using RestoreItem.
func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	return menu.RestoreItem(
		dto.ID,
		dto.Category,
		dto.Name,
		menu.ItemStatus(dto.Status),
		dto.UpdatedBy,
		dto.UpdatedAt,
	)
}
