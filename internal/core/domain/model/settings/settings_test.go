package settings_test

import (
	"testing"
	"time"

	"kitchenboard/internal/core/domain/model/settings"
	"kitchenboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKitchenStatusFromString(t *testing.T) {
	t.Run("known_values", func(t *testing.T) {
		open, err := settings.KitchenStatusFromString("OPEN")
		require.NoError(t, err)
		assert.Equal(t, settings.KitchenOpen, open)

		closed, err := settings.KitchenStatusFromString("CLOSED")
		require.NoError(t, err)
		assert.Equal(t, settings.KitchenClosed, closed)
	})

	t.Run("empty_defaults_to_open", func(t *testing.T) {
		status, err := settings.KitchenStatusFromString("")
		require.NoError(t, err)
		assert.Equal(t, settings.KitchenOpen, status)
	})

	t.Run("unknown_value_is_rejected", func(t *testing.T) {
		_, err := settings.KitchenStatusFromString("open")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = settings.KitchenStatusFromString("PAUSED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDefault(t *testing.T) {
	now := time.Date(2025, time.October, 14, 9, 0, 0, 0, time.Local)

	s := settings.Default(now)

	assert.Equal(t, settings.KitchenOpen, s.KitchenStatus())
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), s.SemesterStart())
	assert.InDelta(t, settings.DefaultLowTierFee, s.LowTierFee(), 0.001)
	assert.InDelta(t, settings.DefaultLowTierPercent, s.LowTierPercent(), 0.001)
	assert.InDelta(t, settings.DefaultHighTierFee, s.HighTierFee(), 0.001)
	assert.InDelta(t, settings.DefaultHighTierPercent, s.HighTierPercent(), 0.001)
}

func TestRestore(t *testing.T) {
	now := time.Date(2025, time.October, 14, 9, 0, 0, 0, time.Local)
	semesterStart := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.Local)

	t.Run("keeps_persisted_values", func(t *testing.T) {
		s := settings.Restore(settings.KitchenClosed, semesterStart, 2.00, 1.5, 1.25, 2.5, now)

		assert.Equal(t, settings.KitchenClosed, s.KitchenStatus())
		assert.Equal(t, semesterStart, s.SemesterStart())
		assert.InDelta(t, 2.00, s.LowTierFee(), 0.001)
		assert.InDelta(t, 1.5, s.LowTierPercent(), 0.001)
		assert.InDelta(t, 1.25, s.HighTierFee(), 0.001)
		assert.InDelta(t, 2.5, s.HighTierPercent(), 0.001)
	})

	t.Run("substitutes_defaults_for_missing_values", func(t *testing.T) {
		s := settings.Restore("", time.Time{}, 0, 0, 0, 0, now)

		assert.Equal(t, settings.KitchenOpen, s.KitchenStatus())
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), s.SemesterStart())
		assert.InDelta(t, settings.DefaultLowTierFee, s.LowTierFee(), 0.001)
		assert.InDelta(t, settings.DefaultHighTierPercent, s.HighTierPercent(), 0.001)
	})

	t.Run("partial_row_falls_back_per_field", func(t *testing.T) {
		s := settings.Restore(settings.KitchenClosed, time.Time{}, 2.00, 0, 0, 0, now)

		assert.Equal(t, settings.KitchenClosed, s.KitchenStatus())
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), s.SemesterStart())
		assert.InDelta(t, 2.00, s.LowTierFee(), 0.001)
		assert.InDelta(t, settings.DefaultLowTierPercent, s.LowTierPercent(), 0.001)
	})
}
