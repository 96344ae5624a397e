package game

import (
	"errors"
	"fmt"
	"time"
)

// Tier is one speed level. Tiers are selected by the highest MinSpeedScore
// that the current speed score reaches.
type Tier struct {
	Name          string
	MinSpeedScore int
	Interval      time.Duration
	MusicRate     float64
}

type Config struct {
	BoardWidth     int
	BoardHeight    int
	Step           int
	Start          Position
	StartDirection Direction

	MaxSpawnAttempts int
	MaxFoods         int
	SecondFoodScore  int
	SecondFoodChance float64
	EnemyScore       int
	EnemyInterval    time.Duration
	PowerUpEvery     int
	PowerUpChance    float64

	// Tiers must be ordered from fastest to slowest, ending at MinSpeedScore 0.
	Tiers []Tier

	RestartCode []Key
	FoodPoints  int
	EnemyPoints int
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:     800,
		BoardHeight:    800,
		Step:           10,
		Start:          Position{400, 400},
		StartDirection: DirRight,

		MaxSpawnAttempts: 100,
		MaxFoods:         2,
		SecondFoodScore:  6,
		SecondFoodChance: 0.5,
		EnemyScore:       6,
		EnemyInterval:    time.Second,
		PowerUpEvery:     9,
		PowerUpChance:    0.5,

		Tiers: []Tier{
			{Name: "fastest", MinSpeedScore: 10, Interval: 50 * time.Millisecond, MusicRate: 1.25},
			{Name: "medium", MinSpeedScore: 5, Interval: 100 * time.Millisecond, MusicRate: 1.0},
			{Name: "slow", MinSpeedScore: 0, Interval: 150 * time.Millisecond, MusicRate: 0.75},
		},

		RestartCode: []Key{KeyUp, KeyRight, KeyDown, KeyLeft},
		FoodPoints:  100,
		EnemyPoints: 333,
	}
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("config: step must be positive, got %d", c.Step)
	}
	if c.BoardWidth <= 0 || c.BoardHeight <= 0 {
		return fmt.Errorf("config: board %dx%d is empty", c.BoardWidth, c.BoardHeight)
	}
	if c.BoardWidth%c.Step != 0 || c.BoardHeight%c.Step != 0 {
		return fmt.Errorf("config: board %dx%d is not a multiple of step %d", c.BoardWidth, c.BoardHeight, c.Step)
	}
	if !c.inBounds(c.Start) || c.Start.X%c.Step != 0 || c.Start.Y%c.Step != 0 {
		return fmt.Errorf("config: start %v is off the grid", c.Start)
	}
	if abs(c.StartDirection.X)+abs(c.StartDirection.Y) != 1 {
		return fmt.Errorf("config: start direction %v is not a unit step", c.StartDirection)
	}
	if c.MaxSpawnAttempts <= 0 {
		return errors.New("config: max spawn attempts must be positive")
	}
	if c.MaxFoods < 1 {
		return errors.New("config: at least one food must be allowed")
	}
	if c.PowerUpEvery <= 0 {
		return errors.New("config: power-up period must be positive")
	}
	if c.EnemyInterval <= 0 {
		return errors.New("config: enemy interval must be positive")
	}
	for _, p := range []float64{c.SecondFoodChance, c.PowerUpChance} {
		if p < 0 || p > 1 {
			return fmt.Errorf("config: chance %v outside [0,1]", p)
		}
	}
	if len(c.Tiers) == 0 {
		return errors.New("config: no speed tiers")
	}
	for i, t := range c.Tiers {
		if t.Interval <= 0 {
			return fmt.Errorf("config: tier %q has no interval", t.Name)
		}
		if i > 0 && t.MinSpeedScore >= c.Tiers[i-1].MinSpeedScore {
			return fmt.Errorf("config: tier %q is out of order", t.Name)
		}
	}
	if last := c.Tiers[len(c.Tiers)-1]; last.MinSpeedScore != 0 {
		return fmt.Errorf("config: slowest tier %q must start at 0", last.Name)
	}
	if len(c.RestartCode) == 0 {
		return errors.New("config: empty restart code")
	}
	return nil
}

// TierFor returns the speed tier reached by speedScore.
func (c Config) TierFor(speedScore int) Tier {
	for _, t := range c.Tiers {
		if speedScore >= t.MinSpeedScore {
			return t
		}
	}
	return c.Tiers[len(c.Tiers)-1]
}

func (c Config) inBounds(p Position) bool {
	return p.X >= 0 && p.X < c.BoardWidth && p.Y >= 0 && p.Y < c.BoardHeight
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
