package settingsrepo

import (
	"context"
	"errors"
	"time"

	"kitchenboard/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
// Reads never fail on an absent row; defaults apply instead.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the settings, substituting defaults for a missing or
// partially filled row.
func (r *GormSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	now := time.Now()

	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.Default(now), nil
		}
		return settings.Settings{}, err
	}

	status, err := settings.KitchenStatusFromString(dto.KitchenStatus)
	if err != nil {
		status = settings.KitchenOpen
	}

	var semesterStart time.Time
	if dto.SemesterStart != nil {
		semesterStart = *dto.SemesterStart
	}

	return settings.Restore(
		status,
		semesterStart,
		dto.LowTierFee,
		dto.LowTierPercent,
		dto.HighTierFee,
		dto.HighTierPercent,
		now,
	), nil
}

// SetKitchenStatus writes the global OPEN/CLOSED flag, creating the settings
// row if it does not exist yet.
func (r *GormSettingsRepository) SetKitchenStatus(ctx context.Context, status settings.KitchenStatus) error {
	dto := SettingsDTO{
		ID:            settingsRowID,
		KitchenStatus: string(status),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"kitchen_status"}),
		}).
		Create(&dto).Error
}
