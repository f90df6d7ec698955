package game

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"snake-game/game/manager"
	"snake-game/game/types"
)

const step = types.BaseMoveInterval

func newTestSession(t *testing.T, w, h int) *Session {
	t.Helper()
	s := NewSession(DefaultSettings(types.Grid{Width: w, Height: h}), rand.New(rand.NewSource(1)))
	if s.IsGameOver() {
		t.Fatalf("new session already over")
	}
	return s
}

func allExcept(grid types.Grid, keep types.Point) []types.Point {
	cells := make([]types.Point, 0, grid.Cells())
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if p := (types.Point{X: x, Y: y}); p != keep {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// placeFood forces the food onto p
func placeFood(t *testing.T, s *Session, p types.Point) {
	t.Helper()
	if !s.foodMgr.Spawn(allExcept(s.Grid, p)) || s.GetFood() != p {
		t.Fatalf("could not place food at %v", p)
	}
}

// placePickup forces a pickup onto p
func placePickup(t *testing.T, s *Session, p types.Point) {
	t.Helper()
	s.powerUps.Update(s.settings.SpawnInterval)
	if !s.powerUps.Spawn(allExcept(s.Grid, p)) || s.GetPickup().Position != p {
		t.Fatalf("could not place pickup at %v", p)
	}
}

func TestNewSessionLayout(t *testing.T) {
	s := newTestSession(t, 20, 10)

	if s.GetSnake().Len() != types.StartLength {
		t.Fatalf("expected %d segments, got %d", types.StartLength, s.GetSnake().Len())
	}
	if got := s.GetSnake().GetHead(); got != (types.Point{X: 10, Y: 5}) {
		t.Fatalf("expected head at grid centre, got %v", got)
	}
	if s.GetSnake().Occupies(s.GetFood()) {
		t.Fatalf("food spawned on the snake")
	}
	if s.GetPickup().Active {
		t.Fatalf("pickup should start dormant")
	}
	if s.MoveInterval() != types.BaseMoveInterval {
		t.Fatalf("unexpected move interval %s", s.MoveInterval())
	}
	if s.UUID == "" {
		t.Fatalf("session id missing")
	}
}

func TestSessionWallCollision(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeFood(t, s, types.Point{X: 0, Y: 0})

	for i := 1; i <= 4; i++ {
		if ev := s.Update(step); ev.Died {
			t.Fatalf("died early on step %d", i)
		}
	}
	ev := s.Update(step)
	if !ev.Died || ev.Collision != manager.WallCollision {
		t.Fatalf("expected wall death, got %+v", ev)
	}
	if !s.IsGameOver() || s.EndTime.IsZero() {
		t.Fatalf("session should be over")
	}

	// frozen after game over
	head := s.GetSnake().GetHead()
	s.SetDirection(types.Up)
	if ev := s.Update(time.Second); ev != (Events{}) {
		t.Fatalf("game over session produced events %+v", ev)
	}
	if s.GetSnake().GetHead() != head {
		t.Fatalf("snake moved after game over")
	}
}

func TestSessionMovesOnlyOnInterval(t *testing.T) {
	s := newTestSession(t, 20, 10)
	placeFood(t, s, types.Point{X: 0, Y: 0})
	head := s.GetSnake().GetHead()

	s.Update(step / 3)
	s.Update(step / 3)
	if s.GetSnake().GetHead() != head {
		t.Fatalf("moved before the interval elapsed")
	}
	s.Update(step / 2)
	if s.GetSnake().GetHead() != head.Add(types.Right) {
		t.Fatalf("expected one step right, head at %v", s.GetSnake().GetHead())
	}
}

func TestSessionInvincibilityWraps(t *testing.T) {
	s := newTestSession(t, 10, 10)
	placeFood(t, s, types.Point{X: 0, Y: 0})
	s.powerUps.Effects().Collect(types.Invincibility, 5*time.Second)

	for i := 0; i < 5; i++ {
		if ev := s.Update(step); ev.Died {
			t.Fatalf("died while invincible on step %d", i)
		}
	}
	if got := s.GetSnake().GetHead(); got != (types.Point{X: 0, Y: 5}) {
		t.Fatalf("expected head wrapped to (0,5), got %v", got)
	}
}

func TestSessionSelfCollision(t *testing.T) {
	cases := []struct {
		name       string
		invincible bool
		wantDeath  bool
	}{
		{"vulnerable", false, true},
		{"invincible", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSession(t, 10, 10)
			placeFood(t, s, types.Point{X: 9, Y: 9})
			// hook shape: heading left with (5,5) just below the head
			sn := s.GetSnake()
			sn.Body = []types.Point{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 5, Y: 4}}
			sn.Direction = types.Left
			sn.SetDirection(types.Down)
			if c.invincible {
				s.powerUps.Effects().Collect(types.Invincibility, 5*time.Second)
			}

			ev := s.Update(step)
			if ev.Died != c.wantDeath {
				t.Fatalf("died = %v, expected %v", ev.Died, c.wantDeath)
			}
			if c.wantDeath && ev.Collision != manager.SelfCollision {
				t.Fatalf("expected self collision, got %s", ev.Collision)
			}
		})
	}
}

func TestSessionScoring(t *testing.T) {
	cases := []struct {
		name       string
		multiplier bool
		want       int
	}{
		{"plain", false, types.FoodPoints},
		{"doubled", true, types.FoodPoints * 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSession(t, 20, 10)
			if c.multiplier {
				s.powerUps.Effects().Collect(types.ScoreMultiplier, 5*time.Second)
			}
			placeFood(t, s, types.Point{X: 11, Y: 5})
			length := s.GetSnake().Len()

			ev := s.Update(step)
			if !ev.Ate {
				t.Fatalf("expected to eat")
			}
			if s.Score() != c.want {
				t.Fatalf("expected score %d, got %d", c.want, s.Score())
			}
			if s.GetSnake().Occupies(s.GetFood()) {
				t.Fatalf("food respawned on the snake")
			}

			placeFood(t, s, types.Point{X: 0, Y: 0})
			s.Update(step)
			if s.GetSnake().Len() != length+1 {
				t.Fatalf("expected length %d, got %d", length+1, s.GetSnake().Len())
			}
		})
	}
}

func TestSessionSpeedBoostHalvesInterval(t *testing.T) {
	s := newTestSession(t, 20, 10)
	placeFood(t, s, types.Point{X: 0, Y: 0})
	s.powerUps.Effects().Collect(types.SpeedBoost, time.Second)

	s.Update(time.Millisecond)
	if s.MoveInterval() != types.BaseMoveInterval/2 {
		t.Fatalf("expected halved interval, got %s", s.MoveInterval())
	}

	s.Update(time.Second)
	if s.Effects().IsActive(types.SpeedBoost) {
		t.Fatalf("speed boost should have expired")
	}
	if s.MoveInterval() != types.BaseMoveInterval {
		t.Fatalf("interval not restored, got %s", s.MoveInterval())
	}
}

func TestSessionCollectsPickup(t *testing.T) {
	s := newTestSession(t, 20, 10)
	placeFood(t, s, types.Point{X: 0, Y: 0})
	placePickup(t, s, types.Point{X: 11, Y: 5})
	kind := s.GetPickup().Kind

	ev := s.Update(step)
	if !ev.Collected || ev.CollectedKind != kind {
		t.Fatalf("expected to collect %s, got %+v", kind, ev)
	}
	if s.GetPickup().Active {
		t.Fatalf("pickup still active after collection")
	}
	if !s.Effects().IsActive(kind) {
		t.Fatalf("effect %s not started", kind)
	}
	if got := s.Effects().TimeRemaining(kind); got != types.EffectDuration {
		t.Fatalf("expected %s remaining, got %s", types.EffectDuration, got)
	}
	if s.GetPowerUps().SpawnTimer() != 0 {
		t.Fatalf("cooldown should restart on collection")
	}
}

func TestSessionPickupAvoidsFood(t *testing.T) {
	s := newTestSession(t, 4, 4)
	// leave only the food cell and one other free
	free := []types.Point{{X: 0, Y: 0}, {X: 3, Y: 3}}
	body := make([]types.Point, 0, s.Grid.Cells())
	for _, p := range allExcept(s.Grid, free[0]) {
		if p != free[1] {
			body = append(body, p)
		}
	}
	s.GetSnake().Body = body
	placeFood(t, s, free[0])

	s.powerUps.Update(s.settings.SpawnInterval)
	if !s.powerUps.Spawn(s.occupied(true)) {
		t.Fatalf("expected pickup spawn")
	}
	if s.GetPickup().Position != free[1] {
		t.Fatalf("pickup should avoid food, landed on %v", s.GetPickup().Position)
	}
}

func TestNewSessionIsFresh(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	settings := DefaultSettings(types.Grid{Width: 20, Height: 10})

	first := NewSession(settings, rng)
	first.powerUps.Effects().Collect(types.SpeedBoost, 5*time.Second)
	first.score = 90

	second := NewSession(settings, rng)
	if second.UUID == first.UUID {
		t.Fatalf("sessions share an id")
	}
	if second.Score() != 0 || second.GetPowerUps().Effects().Len() != 0 || second.GetPowerUps().SpawnTimer() != 0 {
		t.Fatalf("state carried over into a new session")
	}
}
