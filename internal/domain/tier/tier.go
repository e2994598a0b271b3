// Package tier maps bounded reputation scores to discrete trust badges.
package tier

// Tier is one badge level with its inclusive score range and the
// privileges it unlocks.
type Tier struct {
	Name  string
	Perks string
	Min   int
	Max   int
}

// Contains reports whether score falls inside the tier's range,
// inclusive on both ends.
func (t Tier) Contains(score float64) bool {
	return score >= float64(t.Min) && score <= float64(t.Max)
}

// Table is an ordered set of disjoint tiers covering [0,100].
type Table []Tier

// Default returns the built-in badge ladder.
func Default() Table {
	return Table{
		{Name: "New", Perks: "No PAI coin trade, limited ads", Min: 0, Max: 29},
		{Name: "Explorer", Perks: "Can view all ads, earn coins", Min: 30, Max: 59},
		{Name: "Trusted", Perks: "Can trade coins, appear higher in feed", Min: 60, Max: 79},
		{Name: "Elite", Perks: "Premium ads, faster rewards", Min: 80, Max: 94},
		{Name: "Ambassador", Perks: "First access, spotlight ads, bonus coins", Min: 95, Max: 100},
	}
}

// Classify returns the tier containing score. Scores are clamped to
// [0,100] before lookup elsewhere, so the edge fallbacks are defensive
// only and unreachable under correct use.
func (tb Table) Classify(score float64) Tier {
	for _, t := range tb {
		if t.Contains(score) {
			return t
		}
	}
	// Fractional scores between two integer bounds (e.g. 29.5) resolve
	// down to the highest tier whose floor they reached.
	for i := len(tb) - 1; i >= 0; i-- {
		if score >= float64(tb[i].Min) {
			return tb[i]
		}
	}
	if len(tb) == 0 {
		return Tier{}
	}
	return tb[0]
}
