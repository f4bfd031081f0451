// Package settingsrepo persists the singleton settings row shared by the
// kitchen and owner services.
package settingsrepo

import "time"

// settingsRowID is the fixed primary key of the singleton row.
const settingsRowID = 1

// SettingsDTO represents the database structure for the settings row.
type SettingsDTO struct {
	ID              int `gorm:"primaryKey"`
	KitchenStatus   string
	SemesterStart   *time.Time
	LowTierFee      float64
	LowTierPercent  float64
	HighTierFee     float64
	HighTierPercent float64
}

// TableName overrides GORM's default naming to use "settings".
func (SettingsDTO) TableName() string {
	return "settings"
}
