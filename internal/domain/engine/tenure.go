package engine

import "time"

// Tenure bonus parameters. Account age maps to a multiplier of the
// maximum contribution; even a participant created today gets the floor.
const (
	defaultMaxTenureBonus = 20.0

	tenureFloorMultiplier   = 0.15
	tenureTwoYearMultiplier = 0.3
	tenureFiveYearMult      = 0.4
	tenureEightYearMult     = 0.5
)

// tenureBonus computes the account-age contribution as of the current
// simulated date. Age is whole elapsed months converted to fractional
// years, so a mid-month anniversary rounds down.
func (e *Engine) tenureBonus(createdAt time.Time) float64 {
	months := (e.now.Year()-createdAt.Year())*12 + int(e.now.Month()-createdAt.Month())
	years := float64(months) / 12.0

	mult := tenureFloorMultiplier
	switch {
	case years >= 8:
		mult = tenureEightYearMult
	case years >= 5:
		mult = tenureFiveYearMult
	case years >= 2:
		mult = tenureTwoYearMultiplier
	}
	return e.maxTenureBonus * mult
}
