package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoRenderer = errors.New("game: renderer is required")

// PlayingView is a copy of the board handed to the renderer each tick.
type PlayingView struct {
	Snake           []Position
	Foods           []Position
	Enemy           *Position
	PowerUps        []PowerUp
	PowerUpsVisible bool
	Score           int
	Tier            Tier
}

type GameOverView struct {
	Snake         []Position
	FoodEaten     int
	EnemiesKilled int
	PerFood       int
	PerEnemy      int
	FoodPoints    int
	EnemyPoints   int
	Entered       []Key
	RestartCode   []Key
}

// Total is the end-of-run score.
func (v GameOverView) Total() int { return v.FoodPoints + v.EnemyPoints }

// ScoreLines is the score breakdown shown under the game-over banner.
func (v GameOverView) ScoreLines() []string {
	return []string{
		fmt.Sprintf("Food Eaten: %d x %d = %d", v.FoodEaten, v.PerFood, v.FoodPoints),
		fmt.Sprintf("Enemies Killed: %d x %d = %d", v.EnemiesKilled, v.PerEnemy, v.EnemyPoints),
		fmt.Sprintf("Total Score: %d", v.Total()),
	}
}

func (v GameOverView) RestartHint() string {
	names := make([]string, len(v.RestartCode))
	for i, k := range v.RestartCode {
		names[i] = k.String()
	}
	return "To Play Again, Enter: " + strings.Join(names, ", ")
}

// Renderer draws one screen per accepted frame. Views are owned by the
// renderer once passed.
type Renderer interface {
	RenderTitle()
	RenderPlaying(PlayingView)
	RenderGameOver(GameOverView)
}

// Audio plays sound cues. Implementations must not block the caller.
type Audio interface {
	PlaySound(Sound) error
	StartMusic() error
	StopMusic() error
	SetMusicRate(rate float64) error
}

// NopAudio is the silent Audio used when no backend is available.
type NopAudio struct{}

func (NopAudio) PlaySound(Sound) error      { return nil }
func (NopAudio) StartMusic() error          { return nil }
func (NopAudio) StopMusic() error           { return nil }
func (NopAudio) SetMusicRate(float64) error { return nil }

// LineUp lays segments out left to right on row y, centred on centerX.
func LineUp(segments []Position, centerX, y, step int) []Position {
	out := make([]Position, len(segments))
	left := centerX - len(segments)/2*step
	for i := range out {
		out[i] = Position{left + i*step, y}
	}
	return out
}
