package game

import "fmt"

// tick renders the current board and then advances the snake one step.
// Callers hold s.mu.
func (s *Session) tick() {
	s.renderer.RenderPlaying(s.playingView())
	s.powerUpsVisible = !s.powerUpsVisible

	head := s.reg.head().Add(s.dir, s.cfg.Step)

	if !s.cfg.inBounds(head) {
		s.die("snake hit wall")
		return
	}
	if s.reg.hitsBody(head) {
		s.die("snake hit itself")
		return
	}
	// The enemy moves on its own clock, so it is tested against the body as
	// it stood before this step.
	if s.reg.enemy != nil && s.reg.onSnake(*s.reg.enemy) {
		s.die("enemy hit snake")
		return
	}

	s.reg.prepend(head)

	if i := s.reg.foodAt(head); i >= 0 {
		s.eat(i)
	} else {
		s.reg.dropTail()
	}

	if i := s.reg.powerUpAt(head); i >= 0 {
		s.applyPowerUp(s.reg.removePowerUp(i))
		s.play(SoundPowerUp)
	}
}

func (s *Session) die(cause string) {
	s.log.Printf("[phase] %s", cause)
	s.phase = PhaseGameOver
	if err := s.audio.StopMusic(); err != nil {
		s.log.Printf("[audio] music stop failed: %v", err)
	}
	s.play(SoundGameOver)
}

func (s *Session) eat(i int) {
	s.score++
	s.speedScore++
	s.foodEaten++
	s.reg.removeFood(i)
	s.spawnFood()
	s.updateSpeed()
	if s.score >= s.cfg.EnemyScore && s.reg.enemy == nil {
		s.spawnEnemy()
	}
	s.spawnPowerUp()
	s.play(SoundFood)
}

func (s *Session) spawnFood() {
	s.placeFood()
	if s.score >= s.cfg.SecondFoodScore && len(s.reg.foods) < s.cfg.MaxFoods && chance(s.rng, s.cfg.SecondFoodChance) {
		s.placeFood()
	}
}

func (s *Session) placeFood() {
	p, err := s.spawner.Place(func(p Position) bool { return s.reg.IsOccupied(p, false) })
	if err != nil {
		s.log.Printf("[spawn] food skipped: %v", err)
		return
	}
	s.reg.foods = append(s.reg.foods, p)
}

// placeOffSnake finds a cell clear of the snake, then checks it once more
// against the other entities. A clash there fails the spawn rather than
// resampling.
func (s *Session) placeOffSnake() (Position, error) {
	p, err := s.spawner.Place(s.reg.onSnake)
	if err != nil {
		return Position{}, err
	}
	if s.reg.IsOccupied(p, true) {
		return Position{}, fmt.Errorf("%w at %v", ErrSpotOccupied, p)
	}
	return p, nil
}

func (s *Session) spawnEnemy() {
	p, err := s.placeOffSnake()
	if err != nil {
		s.log.Printf("[enemy] spawn skipped: %v", err)
		s.reg.enemy = nil
		return
	}
	s.reg.enemy = &p
	if s.enemyTicker == nil {
		s.enemyTicker = startEnemyTicker(s.newTicker(s.cfg.EnemyInterval), s.enemyTick)
	}
	s.log.Printf("[enemy] spawned at (%d, %d)", p.X, p.Y)
	s.play(SoundEnemy)
}

func (s *Session) spawnPowerUp() {
	if s.score < s.cfg.PowerUpEvery || s.score%s.cfg.PowerUpEvery != 0 || !chance(s.rng, s.cfg.PowerUpChance) {
		return
	}
	kind := PowerUpKind(s.rng.Intn(powerUpKinds))
	p, err := s.placeOffSnake()
	if err != nil {
		s.log.Printf("[spawn] %s power-up skipped: %v", kind, err)
		return
	}
	s.reg.powerUps = append(s.reg.powerUps, PowerUp{Pos: p, Kind: kind})
	s.log.Printf("[spawn] %s power-up at (%d, %d)", kind, p.X, p.Y)
}

func (s *Session) applyPowerUp(pu PowerUp) {
	s.log.Printf("[powerup] applying %s", pu.Kind)
	switch pu.Kind {
	case PowerUpSlowDown:
		s.speedScore = 0
		s.updateSpeed()
	case PowerUpEnemyKiller:
		s.stopEnemyTicker()
		if s.reg.enemy != nil {
			s.reg.enemy = nil
			s.enemiesKilled++
		}
	}
}

func (s *Session) updateSpeed() {
	s.tier = s.cfg.TierFor(s.speedScore)
	s.log.Printf("[speed] tier %s, interval %v", s.tier.Name, s.tier.Interval)
	s.setMusicRate()
}

func (s *Session) setMusicRate() {
	if err := s.audio.SetMusicRate(s.tier.MusicRate); err != nil {
		s.log.Printf("[audio] set playback rate %.2f failed: %v", s.tier.MusicRate, err)
	}
}

func (s *Session) play(snd Sound) {
	if err := s.audio.PlaySound(snd); err != nil {
		s.log.Printf("[audio] %s sound play failed: %v", snd, err)
	}
}

// enemyTick runs on the ticker goroutine.
func (s *Session) enemyTick(done <-chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-done:
		return
	default:
	}
	s.moveEnemy()
}

// moveEnemy steps the enemy toward the head on both axes at once.
func (s *Session) moveEnemy() {
	e := s.reg.enemy
	if e == nil {
		return
	}
	h := s.reg.head()
	e.X += sign(h.X-e.X) * s.cfg.Step
	e.Y += sign(h.Y-e.Y) * s.cfg.Step
}

func (s *Session) stopEnemyTicker() {
	s.enemyTicker.Stop()
	s.enemyTicker = nil
}
