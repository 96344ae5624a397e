package game

import (
	"errors"
	"fmt"
)

var (
	ErrSpawnExhausted = errors.New("spawn attempts exhausted")
	ErrSpotOccupied   = errors.New("spawn spot occupied")
)

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Spawner picks free grid cells by rejection sampling.
type Spawner struct {
	cols, rows  int
	step        int
	maxAttempts int
	rng         Rand
}

func NewSpawner(cfg Config, rng Rand) *Spawner {
	return &Spawner{
		cols:        cfg.BoardWidth / cfg.Step,
		rows:        cfg.BoardHeight / cfg.Step,
		step:        cfg.Step,
		maxAttempts: cfg.MaxSpawnAttempts,
		rng:         rng,
	}
}

// Draw returns a uniformly random grid-aligned position.
func (s *Spawner) Draw() Position {
	x := s.rng.Intn(s.cols) * s.step
	y := s.rng.Intn(s.rows) * s.step
	return Position{x, y}
}

// Place draws positions until occupied reports false, giving up with
// ErrSpawnExhausted after the configured number of attempts.
func (s *Spawner) Place(occupied func(Position) bool) (Position, error) {
	for range s.maxAttempts {
		if p := s.Draw(); !occupied(p) {
			return p, nil
		}
	}
	return Position{}, fmt.Errorf("%w after %d attempts", ErrSpawnExhausted, s.maxAttempts)
}

func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
