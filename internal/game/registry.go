package game

import "slices"

// Registry holds every entity on the board. The snake is stored head first.
type Registry struct {
	snake    []Position
	foods    []Position
	enemy    *Position
	powerUps []PowerUp
}

// IsOccupied reports whether p is taken. excludeSnake skips only the snake
// test; food, power-ups and the enemy are always checked.
func (r *Registry) IsOccupied(p Position, excludeSnake bool) bool {
	if !excludeSnake && r.onSnake(p) {
		return true
	}
	return slices.Contains(r.foods, p) ||
		r.powerUpAt(p) >= 0 ||
		(r.enemy != nil && *r.enemy == p)
}

func (r *Registry) head() Position { return r.snake[0] }

func (r *Registry) onSnake(p Position) bool {
	return slices.Contains(r.snake, p)
}

// hitsBody reports whether p lies on any segment behind the head.
func (r *Registry) hitsBody(p Position) bool {
	return slices.Contains(r.snake[1:], p)
}

func (r *Registry) prepend(p Position) {
	r.snake = slices.Insert(r.snake, 0, p)
}

func (r *Registry) dropTail() {
	r.snake = r.snake[:len(r.snake)-1]
}

func (r *Registry) foodAt(p Position) int {
	return slices.Index(r.foods, p)
}

func (r *Registry) removeFood(i int) {
	r.foods = slices.Delete(r.foods, i, i+1)
}

func (r *Registry) powerUpAt(p Position) int {
	return slices.IndexFunc(r.powerUps, func(pu PowerUp) bool { return pu.Pos == p })
}

func (r *Registry) removePowerUp(i int) PowerUp {
	pu := r.powerUps[i]
	r.powerUps = slices.Delete(r.powerUps, i, i+1)
	return pu
}
