// Package settings provides the singleton configuration row shared by the
// kitchen and owner services: the global kitchen OPEN/CLOSED flag, the
// semester start date used by reporting windows, and the commission tier
// parameters. The row is read-only from the services' perspective except for
// the kitchen status flag; defaults apply whenever the row is absent or
// unparseable.
package settings

import (
	"fmt"
	"time"

	"kitchenboard/internal/pkg/errs"
)

// KitchenStatus is the global open/closed flag for order intake.
type KitchenStatus string

const (
	KitchenOpen   KitchenStatus = "OPEN"
	KitchenClosed KitchenStatus = "CLOSED"
)

// KitchenStatusFromString resolves a stored kitchen status. An empty value
// defaults to OPEN, matching the store's behavior when the flag is unset.
func KitchenStatusFromString(s string) (KitchenStatus, error) {
	switch s {
	case "":
		return KitchenOpen, nil
	case string(KitchenOpen):
		return KitchenOpen, nil
	case string(KitchenClosed):
		return KitchenClosed, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("kitchenStatus is invalid",
		fmt.Errorf("%q is not a valid kitchen status", s))
}

// Default commission tier parameters, applied when the settings row is absent
// or holds unparseable values.
const (
	DefaultLowTierFee      = 1.50
	DefaultLowTierPercent  = 1.0
	DefaultHighTierFee     = 1.00
	DefaultHighTierPercent = 2.0
)

// Settings is the singleton configuration value object.
type Settings struct {
	kitchenStatus   KitchenStatus
	semesterStart   time.Time
	lowTierFee      float64
	lowTierPercent  float64
	highTierFee     float64
	highTierPercent float64
}

// Default returns the settings used when no row exists: kitchen open,
// semester starting January 1st of the current year, default tiers.
func Default(now time.Time) Settings {
	return Settings{
		kitchenStatus:   KitchenOpen,
		semesterStart:   time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
		lowTierFee:      DefaultLowTierFee,
		lowTierPercent:  DefaultLowTierPercent,
		highTierFee:     DefaultHighTierFee,
		highTierPercent: DefaultHighTierPercent,
	}
}

// Restore builds settings from a persisted row, substituting defaults for
// zero or missing values rather than failing.
func Restore(
	kitchenStatus KitchenStatus,
	semesterStart time.Time,
	lowTierFee, lowTierPercent, highTierFee, highTierPercent float64,
	now time.Time,
) Settings {
	s := Default(now)

	if kitchenStatus == KitchenOpen || kitchenStatus == KitchenClosed {
		s.kitchenStatus = kitchenStatus
	}
	if !semesterStart.IsZero() {
		s.semesterStart = semesterStart
	}
	if lowTierFee > 0 {
		s.lowTierFee = lowTierFee
	}
	if lowTierPercent > 0 {
		s.lowTierPercent = lowTierPercent
	}
	if highTierFee > 0 {
		s.highTierFee = highTierFee
	}
	if highTierPercent > 0 {
		s.highTierPercent = highTierPercent
	}
	return s
}

// KitchenStatus returns the global OPEN/CLOSED flag.
func (s Settings) KitchenStatus() KitchenStatus { return s.kitchenStatus }

// SemesterStart returns the start of the current semester.
func (s Settings) SemesterStart() time.Time { return s.semesterStart }

// LowTierFee returns the flat fee for orders below the commission threshold.
func (s Settings) LowTierFee() float64 { return s.lowTierFee }

// LowTierPercent returns the percentage for orders below the commission threshold.
func (s Settings) LowTierPercent() float64 { return s.lowTierPercent }

// HighTierFee returns the flat fee for orders at or above the commission threshold.
func (s Settings) HighTierFee() float64 { return s.highTierFee }

// HighTierPercent returns the percentage for orders at or above the commission threshold.
func (s Settings) HighTierPercent() float64 { return s.highTierPercent }
