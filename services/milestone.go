package services

// Tier is a sobriety medal. Thresholds are process-wide constants, not
// per-user state.
type Tier struct {
	Name    string `json:"name"`
	Glyph   string `json:"glyph"`
	MinDays int    `json:"min_days"`
}

// Ordered highest-first so TierFor can take the first threshold that fits.
var tiers = []Tier{
	{Name: "platinum", Glyph: "🏆", MinDays: 365},
	{Name: "gold", Glyph: "🥇", MinDays: 180},
	{Name: "silver", Glyph: "🥈", MinDays: 90},
	{Name: "bronze", Glyph: "🥉", MinDays: 30},
	{Name: "none", Glyph: "", MinDays: 0},
}

// TierFor maps a streak-day count to its medal: the largest threshold not
// exceeding days wins, and an exact threshold belongs to the tier it
// defines (30 days is already bronze).
func TierFor(days int) Tier {
	if days < 0 {
		days = 0
	}
	for _, t := range tiers {
		if days >= t.MinDays {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Milestones lists the earnable medals in ascending order, for the medals
// screen.
func Milestones() []Tier {
	out := make([]Tier, 0, len(tiers)-1)
	for i := len(tiers) - 2; i >= 0; i-- {
		out = append(out, tiers[i])
	}
	return out
}
