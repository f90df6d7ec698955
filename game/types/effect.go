package types

import "time"

// EffectKind is the closed set of power-up effects
type EffectKind int

const (
	SpeedBoost EffectKind = iota
	ScoreMultiplier
	Invincibility

	EffectKindCount // must stay last
)

// String returns the HUD label of the kind
func (k EffectKind) String() string {
	switch k {
	case SpeedBoost:
		return "SPEED BOOST"
	case ScoreMultiplier:
		return "SCORE x2"
	case Invincibility:
		return "INVINCIBLE"
	default:
		return "UNKNOWN"
	}
}

// Symbol is the short glyph drawn on the pickup
func (k EffectKind) Symbol() string {
	switch k {
	case SpeedBoost:
		return "S"
	case ScoreMultiplier:
		return "x2"
	case Invincibility:
		return "I"
	default:
		return "?"
	}
}

// Valid reports whether k belongs to the closed set
func (k EffectKind) Valid() bool {
	return k >= 0 && k < EffectKindCount
}

// ActiveEffect is a running instance of a timed modifier
type ActiveEffect struct {
	Kind      EffectKind
	Remaining time.Duration
}

// Fraction returns remaining time against window, clamped to [0, 1]
func (e ActiveEffect) Fraction(window time.Duration) float64 {
	if window <= 0 || e.Remaining <= 0 {
		return 0
	}
	f := float64(e.Remaining) / float64(window)
	if f > 1 {
		return 1
	}
	return f
}

// Pickup is the single collectible power-up slot on the grid
type Pickup struct {
	Position Point
	Kind     EffectKind
	Active   bool
}
