package manager

import (
	"sort"
	"time"

	"snake-game/game/types"
)

// EffectScheduler holds the timed effects currently running.
// Same-kind effects are not merged; each instance expires on its own schedule.
type EffectScheduler struct {
	effects []types.ActiveEffect
}

func NewEffectScheduler() *EffectScheduler {
	return &EffectScheduler{
		effects: make([]types.ActiveEffect, 0, int(types.EffectKindCount)),
	}
}

// Advance ages every effect by elapsed and drops the ones that reached zero
func (es *EffectScheduler) Advance(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}
	kept := es.effects[:0]
	for _, e := range es.effects {
		e.Remaining -= elapsed
		if e.Remaining > 0 {
			kept = append(kept, e)
		}
	}
	// Clear the dropped tail so the backing array does not hold stale values
	for i := len(kept); i < len(es.effects); i++ {
		es.effects[i] = types.ActiveEffect{}
	}
	es.effects = kept
}

// Collect starts a new effect instance
func (es *EffectScheduler) Collect(kind types.EffectKind, duration time.Duration) {
	es.effects = append(es.effects, types.ActiveEffect{Kind: kind, Remaining: duration})
}

// IsActive reports whether any instance of kind is still running
func (es *EffectScheduler) IsActive(kind types.EffectKind) bool {
	for _, e := range es.effects {
		if e.Kind == kind && e.Remaining > 0 {
			return true
		}
	}
	return false
}

// TimeRemaining returns the remaining time of the longest-lived instance of kind, or 0.
// This is how long IsActive(kind) will keep returning true.
func (es *EffectScheduler) TimeRemaining(kind types.EffectKind) time.Duration {
	var longest time.Duration
	for _, e := range es.effects {
		if e.Kind == kind && e.Remaining > longest {
			longest = e.Remaining
		}
	}
	return longest
}

// Snapshot returns a copy of the running effects, soonest to expire first
func (es *EffectScheduler) Snapshot() []types.ActiveEffect {
	out := make([]types.ActiveEffect, 0, len(es.effects))
	for _, e := range es.effects {
		if e.Remaining > 0 {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Remaining < out[j].Remaining
	})
	return out
}

func (es *EffectScheduler) Len() int {
	return len(es.effects)
}
