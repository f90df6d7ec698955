package ui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-game/game"
	"snake-game/game/types"
)

const (
	barWidth   = 200
	barHeight  = 20
	barSpacing = 25
	pulseStep  = 0.1
)

// HUD carries the values the renderer shows that live outside the session
type HUD struct {
	HighScore    int
	NewHighScore bool
	Muted        bool
}

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	effectWindow time.Duration
	pulse        float64 // Pickup animation phase, advanced once per frame
}

func NewRenderer(cellSize int, effectWindow time.Duration) *Renderer {
	r := &Renderer{
		cellSize:     int32(cellSize),
		effectWindow: effectWindow,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// SetEffectWindow changes the normalisation window of the effect bars
func (r *Renderer) SetEffectWindow(window time.Duration) {
	r.effectWindow = window
}

func (r *Renderer) Draw(s *game.Session, hud HUD) {
	r.pulse += pulseStep

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid()
	r.drawSnake(s)
	r.drawFood(s.GetFood())

	if !s.IsGameOver() {
		r.drawPickup(s.GetPickup())
		r.drawActiveEffects(s.Effects().Snapshot())
		r.drawHUD(s.Score(), hud)
	} else {
		r.drawGameOver(s.Score(), hud)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid() {
	line := rl.Fade(rl.DarkGray, 0.3)
	for x := int32(0); x < r.screenWidth; x += r.cellSize {
		rl.DrawLine(x, 0, x, r.screenHeight, line)
	}
	for y := int32(0); y < r.screenHeight; y += r.cellSize {
		rl.DrawLine(0, y, r.screenWidth, y, line)
	}
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}

func (r *Renderer) drawSnake(s *game.Session) {
	body := s.GetSnake().Body
	for i, p := range body {
		color := rl.Green
		if i == len(body)-1 { // Head
			color = rl.DarkGreen
		}
		x, y := r.cell(p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.DarkGray)
	}
}

func (r *Renderer) drawFood(food types.Point) {
	x, y := r.cell(food)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.DarkGray)
}

func (r *Renderer) drawPickup(p types.Pickup) {
	if !p.Active {
		return
	}
	x, y := r.cell(p.Position)
	offset := int32(math.Sin(r.pulse) * 3)

	rl.DrawRectangle(x+offset, y+offset, r.cellSize-offset*2, r.cellSize-offset*2, EffectColor(p.Kind))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.White)

	symbol := p.Kind.Symbol()
	textWidth := rl.MeasureText(symbol, 15)
	rl.DrawText(symbol, x+r.cellSize/2-textWidth/2, y+r.cellSize/2-7, 15, rl.Black)
}

// drawActiveEffects draws one progress bar per running effect, soonest to expire on top
func (r *Renderer) drawActiveEffects(effects []types.ActiveEffect) {
	yOffset := r.screenHeight - 80
	for i, e := range effects {
		y := yOffset + int32(i)*barSpacing
		color := EffectColor(e.Kind)

		rl.DrawRectangle(10, y, barWidth, barHeight, rl.Fade(color, 0.3))
		rl.DrawRectangle(10, y, int32(barWidth*e.Fraction(r.effectWindow)), barHeight, color)
		rl.DrawText(fmt.Sprintf("%s: %.1fs", e.Kind, e.Remaining.Seconds()), 15, y+2, 15, rl.White)
	}
}

func (r *Renderer) drawHUD(score int, hud HUD) {
	rl.DrawText(fmt.Sprintf("Score: %d", score), 10, 10, 20, rl.Yellow)
	rl.DrawText(fmt.Sprintf("High Score: %d", hud.HighScore), 10, 35, 20, rl.Gold)

	rl.DrawText("WASD/Arrows: Move", r.screenWidth-200, 10, 16, rl.LightGray)
	rl.DrawText("M: Mute", r.screenWidth-200, 30, 16, rl.LightGray)
	if hud.Muted {
		rl.DrawText("[MUTED]", r.screenWidth-90, 50, 16, rl.Red)
	}
}

func (r *Renderer) centered(text string, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, r.screenWidth/2-w/2, y, size, color)
}

func (r *Renderer) drawGameOver(score int, hud HUD) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Fade(rl.Black, 0.7))

	midY := r.screenHeight / 2
	r.centered("GAME OVER!", midY-80, 60, rl.Red)
	r.centered(fmt.Sprintf("Final Score: %d", score), midY, 30, rl.White)

	if hud.NewHighScore {
		r.centered("NEW HIGH SCORE!", midY+40, 25, rl.Gold)
	} else {
		r.centered(fmt.Sprintf("High Score: %d", hud.HighScore), midY+40, 20, rl.LightGray)
	}

	r.centered("Press SPACE to Restart", midY+100, 25, rl.LightGray)
}

// EffectColor is the colour of a kind on the grid and in the HUD
func EffectColor(kind types.EffectKind) rl.Color {
	switch kind {
	case types.SpeedBoost:
		return rl.Blue
	case types.ScoreMultiplier:
		return rl.Gold
	case types.Invincibility:
		return rl.Purple
	default:
		return rl.White
	}
}
