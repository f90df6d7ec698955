package manager

import (
	"time"

	"snake-game/game/types"
)

// PowerUpManager owns the single pickup slot and the effects it hands out.
// Dormant: no pickup, cooldown counting. Present: pickup on the grid, cooldown frozen.
type PowerUpManager struct {
	grid           types.Grid
	rng            Rand
	pickup         types.Pickup
	spawnTimer     time.Duration
	spawnInterval  time.Duration
	effectDuration time.Duration
	effects        *EffectScheduler
}

func NewPowerUpManager(grid types.Grid, rng Rand, spawnInterval, effectDuration time.Duration) *PowerUpManager {
	return &PowerUpManager{
		grid:           grid,
		rng:            rng,
		pickup:         types.Pickup{Kind: types.SpeedBoost},
		spawnInterval:  spawnInterval,
		effectDuration: effectDuration,
		effects:        NewEffectScheduler(),
	}
}

// Update runs once per tick. Effects keep expiring whether or not a pickup is on the grid.
func (pm *PowerUpManager) Update(elapsed time.Duration) {
	pm.effects.Advance(elapsed)
	if !pm.pickup.Active {
		pm.spawnTimer += elapsed
	}
}

// Spawn places a pickup once the cooldown has elapsed and a free cell exists.
// On a full grid nothing changes and the cooldown is kept for the next tick.
func (pm *PowerUpManager) Spawn(occupied []types.Point) bool {
	if pm.pickup.Active || pm.spawnTimer < pm.spawnInterval {
		return false
	}

	pos, ok := PickFreeCell(pm.rng, pm.grid, occupied)
	if !ok {
		return false
	}

	pm.pickup = types.Pickup{
		Position: pos,
		Kind:     types.EffectKind(pm.rng.Intn(int(types.EffectKindCount))),
		Active:   true,
	}
	pm.spawnTimer = 0
	return true
}

// Collect consumes the pickup and starts its effect. Returns false when no pickup is present.
func (pm *PowerUpManager) Collect() (types.EffectKind, bool) {
	if !pm.pickup.Active {
		return 0, false
	}
	pm.pickup.Active = false
	pm.spawnTimer = 0
	pm.effects.Collect(pm.pickup.Kind, pm.effectDuration)
	return pm.pickup.Kind, true
}

func (pm *PowerUpManager) Pickup() types.Pickup {
	return pm.pickup
}

func (pm *PowerUpManager) SpawnTimer() time.Duration {
	return pm.spawnTimer
}

func (pm *PowerUpManager) SpawnInterval() time.Duration {
	return pm.spawnInterval
}

// Effects exposes the query side of the scheduler
func (pm *PowerUpManager) Effects() *EffectScheduler {
	return pm.effects
}
