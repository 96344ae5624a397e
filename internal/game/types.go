package game

// Position is a grid-aligned board coordinate.
type Position struct{ X, Y int }

// Add returns p moved one step of size step in direction d.
func (p Position) Add(d Direction, step int) Position {
	return Position{p.X + d.X*step, p.Y + d.Y*step}
}

// Direction is a unit step vector. Y grows downwards.
type Direction struct{ X, Y int }

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Key is a frontend-neutral key press.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "?"
	}
}

// IsArrow reports whether k is one of the four direction keys.
func (k Key) IsArrow() bool {
	_, ok := k.Direction()
	return ok
}

// Direction returns the movement direction bound to k.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return Direction{}, false
}

// Phase is the top-level screen the session is on.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// PowerUpKind selects the effect applied when a power-up is eaten.
type PowerUpKind int

const (
	PowerUpSlowDown PowerUpKind = iota
	PowerUpEnemyKiller

	powerUpKinds = 2
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSlowDown:
		return "slowdown"
	case PowerUpEnemyKiller:
		return "enemyKiller"
	default:
		return "unknown"
	}
}

type PowerUp struct {
	Pos  Position
	Kind PowerUpKind
}

// Sound names a one-shot effect played through Audio.
type Sound int

const (
	SoundFood Sound = iota
	SoundPowerUp
	SoundEnemy
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundFood:
		return "food"
	case SoundPowerUp:
		return "powerup"
	case SoundEnemy:
		return "enemy"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
