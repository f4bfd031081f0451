package ports

import (
	"context"

	"kitchenboard/internal/core/domain/model/settings"
)

// SettingsRepository provides access to the singleton settings row.
// Reads never fail on an absent row: defaults apply instead.
type SettingsRepository interface {
	// Get retrieves the settings, substituting defaults for a missing or
	// partially filled row.
	Get(ctx context.Context) (settings.Settings, error)

	// SetKitchenStatus writes the global OPEN/CLOSED flag, creating the
	// settings row if necessary.
	SetKitchenStatus(ctx context.Context, status settings.KitchenStatus) error
}
