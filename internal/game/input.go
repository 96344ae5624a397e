package game

import "slices"

// Action is what a key press means in the current phase.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionTurn
	ActionCode
)

// MapKey classifies k for phase. Every key counts as code entry on the
// game-over screen; elsewhere only arrows do anything.
func MapKey(phase Phase, k Key) Action {
	switch phase {
	case PhaseTitle:
		if k.IsArrow() {
			return ActionStart
		}
	case PhasePlaying:
		if k.IsArrow() {
			return ActionTurn
		}
	case PhaseGameOver:
		return ActionCode
	}
	return ActionNone
}

// turn returns the new heading for k. A change is only accepted on the axis
// the snake is not currently moving along.
func turn(cur Direction, k Key) (Direction, bool) {
	next, ok := k.Direction()
	if !ok {
		return cur, false
	}
	if (next.X != 0 && cur.X != 0) || (next.Y != 0 && cur.Y != 0) {
		return cur, false
	}
	return next, true
}

// codeBuffer collects the keys typed on the game-over screen.
type codeBuffer struct {
	keys []Key
	size int
}

func newCodeBuffer(size int) *codeBuffer {
	return &codeBuffer{keys: make([]Key, 0, size), size: size}
}

// Push appends k. A full buffer is discarded first, so k starts a new entry.
func (b *codeBuffer) Push(k Key) {
	b.keys = append(b.keys, k)
	if len(b.keys) > b.size {
		b.keys = append(b.keys[:0], k)
	}
}

func (b *codeBuffer) Full() bool { return len(b.keys) == b.size }

func (b *codeBuffer) Matches(code []Key) bool { return slices.Equal(b.keys, code) }

func (b *codeBuffer) Reset() { b.keys = b.keys[:0] }

func (b *codeBuffer) Keys() []Key { return slices.Clone(b.keys) }
