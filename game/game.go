package game

import (
	"time"

	"github.com/google/uuid"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
)

// Settings tunes one session
type Settings struct {
	Grid             types.Grid
	BaseMoveInterval time.Duration
	SpawnInterval    time.Duration
	EffectDuration   time.Duration
	FoodPoints       int
}

// DefaultSettings returns the stock tuning for the given grid
func DefaultSettings(grid types.Grid) Settings {
	return Settings{
		Grid:             grid,
		BaseMoveInterval: types.BaseMoveInterval,
		SpawnInterval:    types.SpawnInterval,
		EffectDuration:   types.EffectDuration,
		FoodPoints:       types.FoodPoints,
	}
}

// EffectQuery answers gameplay and HUD questions about running effects
type EffectQuery interface {
	IsActive(kind types.EffectKind) bool
	TimeRemaining(kind types.EffectKind) time.Duration
	Snapshot() []types.ActiveEffect
}

// Events reports what happened during one tick
type Events struct {
	Ate           bool
	Collected     bool
	CollectedKind types.EffectKind
	Died          bool
	Collision     manager.CollisionType
}

// Session is one game, from spawn to game over. A restart builds a new Session.
type Session struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Grid      types.Grid

	settings     Settings
	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	powerUps     *manager.PowerUpManager
	collisionMgr *manager.CollisionManager

	score        int
	moveTimer    time.Duration
	moveInterval time.Duration
	gameOver     bool
	collision    manager.CollisionType
}

func NewSession(settings Settings, rng manager.Rand) *Session {
	grid := settings.Grid

	length := types.StartLength
	if maxLen := grid.Width/2 + 1; length > maxLen {
		length = maxLen
	}
	head := types.Point{X: grid.Width / 2, Y: grid.Height / 2}

	s := &Session{
		UUID:         uuid.New().String(),
		StartTime:    time.Now(),
		Grid:         grid,
		settings:     settings,
		snake:        entity.NewSnake(head, length),
		foodMgr:      manager.NewFoodManager(grid, rng),
		powerUps:     manager.NewPowerUpManager(grid, rng, settings.SpawnInterval, settings.EffectDuration),
		collisionMgr: manager.NewCollisionManager(grid),
		moveInterval: settings.BaseMoveInterval,
	}

	s.foodMgr.Spawn(s.occupied(false))
	return s
}

// Update advances the session by one frame
func (s *Session) Update(elapsed time.Duration) Events {
	var ev Events
	if s.gameOver {
		return ev
	}

	s.powerUps.Update(elapsed)
	s.powerUps.Spawn(s.occupied(true))

	s.updateMoveInterval()

	s.moveTimer += elapsed
	if s.moveTimer >= s.moveInterval {
		s.moveTimer = 0
		s.step(&ev)
	}
	return ev
}

func (s *Session) updateMoveInterval() {
	if s.powerUps.Effects().IsActive(types.SpeedBoost) {
		s.moveInterval = s.settings.BaseMoveInterval / 2
	} else {
		s.moveInterval = s.settings.BaseMoveInterval
	}
}

func (s *Session) step(ev *Events) {
	effects := s.powerUps.Effects()
	invincible := effects.IsActive(types.Invincibility)

	newHead := s.snake.Advance()
	if invincible {
		newHead = s.collisionMgr.Wrap(newHead)
	}
	s.snake.Move(newHead)

	if !invincible {
		if c := s.collisionMgr.CheckSnake(s.snake); c != manager.NoCollision {
			s.gameOver = true
			s.collision = c
			s.EndTime = time.Now()
			ev.Died = true
			ev.Collision = c
			return
		}
	}

	if s.collisionMgr.IsFoodCollision(newHead, s.foodMgr.GetFood()) {
		s.snake.Grow()
		s.foodMgr.Spawn(s.occupied(false))

		points := s.settings.FoodPoints
		if effects.IsActive(types.ScoreMultiplier) {
			points *= 2
		}
		s.score += points
		ev.Ate = true
	}

	if s.collisionMgr.IsPickupCollision(newHead, s.powerUps.Pickup()) {
		if kind, ok := s.powerUps.Collect(); ok {
			ev.Collected = true
			ev.CollectedKind = kind
		}
	}
}

// occupied lists the cells a new item may not land on. The pickup spawner avoids the food,
// the food avoids an active pickup.
func (s *Session) occupied(forPickup bool) []types.Point {
	cells := make([]types.Point, 0, s.snake.Len()+1)
	cells = append(cells, s.snake.Body...)
	if forPickup {
		cells = append(cells, s.foodMgr.GetFood())
	} else if p := s.powerUps.Pickup(); p.Active {
		cells = append(cells, p.Position)
	}
	return cells
}

// SetDirection steers the snake; ignored after game over
func (s *Session) SetDirection(dir types.Point) {
	if s.gameOver {
		return
	}
	s.snake.SetDirection(dir)
}

func (s *Session) GetSnake() *entity.Snake {
	return s.snake
}

func (s *Session) GetFood() types.Point {
	return s.foodMgr.GetFood()
}

func (s *Session) GetPickup() types.Pickup {
	return s.powerUps.Pickup()
}

func (s *Session) GetPowerUps() *manager.PowerUpManager {
	return s.powerUps
}

func (s *Session) Effects() EffectQuery {
	return s.powerUps.Effects()
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) IsGameOver() bool {
	return s.gameOver
}

func (s *Session) LastCollision() manager.CollisionType {
	return s.collision
}

func (s *Session) MoveInterval() time.Duration {
	return s.moveInterval
}

func (s *Session) Settings() Settings {
	return s.settings
}

// ElapsedTime returns the session length in seconds
func (s *Session) ElapsedTime() float64 {
	if !s.EndTime.IsZero() {
		return s.EndTime.Sub(s.StartTime).Seconds()
	}
	return time.Since(s.StartTime).Seconds()
}
