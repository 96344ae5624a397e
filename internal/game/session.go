package game

import (
	"log"
	"math/rand"
	"slices"
	"sync"
	"time"
)

// Session is one running game. All methods are safe for concurrent use:
// the frame loop, the key handler and the enemy ticker share one mutex.
type Session struct {
	mu sync.Mutex

	cfg       Config
	renderer  Renderer
	audio     Audio
	log       *log.Logger
	rng       Rand
	spawner   *Spawner
	newTicker TickerFunc

	reg   Registry
	dir   Direction
	phase Phase
	tier  Tier
	code  *codeBuffer

	score         int
	speedScore    int
	foodEaten     int
	enemiesKilled int

	powerUpsVisible bool
	musicStarted    bool
	enemyTicker     *enemyTicker
	lastFrame       time.Duration
}

type Option func(*Session)

// WithAudio sets the sound backend. A nil Audio leaves the session silent.
func WithAudio(a Audio) Option {
	return func(s *Session) { s.audio = a }
}

func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithTicker replaces the clock driving enemy movement.
func WithTicker(f TickerFunc) Option {
	return func(s *Session) { s.newTicker = f }
}

// NewSession validates cfg and returns a session on the title screen.
func NewSession(cfg Config, r Renderer, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNoRenderer
	}
	s := &Session{
		cfg:             cfg,
		renderer:        r,
		log:             log.Default(),
		newTicker:       NewTimeTicker,
		code:            newCodeBuffer(len(cfg.RestartCode)),
		powerUpsVisible: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.audio == nil {
		s.log.Printf("[audio] no audio backend, running silent")
		s.audio = NopAudio{}
	}
	s.spawner = NewSpawner(cfg, s.rng)
	s.initBoard()
	return s, nil
}

// HandleKey feeds one key press into the session.
func (s *Session) HandleKey(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch MapKey(s.phase, k) {
	case ActionStart:
		s.start(k)
	case ActionTurn:
		if d, ok := turn(s.dir, k); ok {
			s.dir = d
		}
	case ActionCode:
		s.enterCode(k)
	}
}

// Frame advances the session to time now, measured from any fixed origin.
// Nothing happens until the current tick interval has elapsed since the last
// accepted frame; it then renders one screen and, while playing, runs one
// tick. It reports whether the frame was accepted.
func (s *Session) Frame(now time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now-s.lastFrame < s.tier.Interval {
		return false
	}
	s.lastFrame = now

	switch s.phase {
	case PhaseTitle:
		s.renderer.RenderTitle()
	case PhaseGameOver:
		s.renderer.RenderGameOver(s.gameOverView())
	default:
		s.tick()
	}
	return true
}

// StepEnemy moves the enemy one step toward the snake's head. The enemy
// ticker calls it once per interval.
func (s *Session) StepEnemy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveEnemy()
}

// Close cancels the enemy ticker.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopEnemyTicker()
}

// State is a point-in-time copy of the session.
type State struct {
	Phase         Phase
	Snake         []Position
	Direction     Direction
	Foods         []Position
	Enemy         *Position
	PowerUps      []PowerUp
	Score         int
	SpeedScore    int
	FoodEaten     int
	EnemiesKilled int
	Tier          Tier
	Entered       []Key
	EnemyTicking  bool
	MusicStarted  bool
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Phase:         s.phase,
		Snake:         slices.Clone(s.reg.snake),
		Direction:     s.dir,
		Foods:         slices.Clone(s.reg.foods),
		Enemy:         clonePos(s.reg.enemy),
		PowerUps:      slices.Clone(s.reg.powerUps),
		Score:         s.score,
		SpeedScore:    s.speedScore,
		FoodEaten:     s.foodEaten,
		EnemiesKilled: s.enemiesKilled,
		Tier:          s.tier,
		Entered:       s.code.Keys(),
		EnemyTicking:  s.enemyTicker != nil,
		MusicStarted:  s.musicStarted,
	}
}

func (s *Session) start(k Key) {
	s.log.Printf("[phase] game started via %s", k)
	s.phase = PhasePlaying
	s.tier = s.cfg.TierFor(s.speedScore)
	if err := s.audio.StartMusic(); err != nil {
		s.log.Printf("[audio] music play failed: %v", err)
		return
	}
	s.musicStarted = true
	s.setMusicRate()
}

func (s *Session) enterCode(k Key) {
	s.code.Push(k)
	s.log.Printf("[phase] code input: %v", s.code.keys)
	if !s.code.Full() {
		return
	}
	if s.code.Matches(s.cfg.RestartCode) {
		s.log.Printf("[phase] code correct, returning to title screen")
		s.reset()
		s.phase = PhaseTitle
		return
	}
	s.log.Printf("[phase] code incorrect, resetting input")
	s.code.Reset()
}

// initBoard puts a fresh one-segment snake and its first food on the board.
func (s *Session) initBoard() {
	s.stopEnemyTicker()
	s.reg = Registry{snake: []Position{s.cfg.Start}}
	s.dir = s.cfg.StartDirection
	s.score = 0
	s.speedScore = 0
	s.foodEaten = 0
	s.enemiesKilled = 0
	s.tier = s.cfg.TierFor(0)
	s.code.Reset()
	s.spawnFood()
}

func (s *Session) reset() {
	s.initBoard()
	s.musicStarted = false
	if err := s.audio.StopMusic(); err != nil {
		s.log.Printf("[audio] music reset failed: %v", err)
	}
	s.setMusicRate()
}

func (s *Session) gameOverView() GameOverView {
	return GameOverView{
		Snake:         slices.Clone(s.reg.snake),
		FoodEaten:     s.foodEaten,
		EnemiesKilled: s.enemiesKilled,
		PerFood:       s.cfg.FoodPoints,
		PerEnemy:      s.cfg.EnemyPoints,
		FoodPoints:    s.foodEaten * s.cfg.FoodPoints,
		EnemyPoints:   s.enemiesKilled * s.cfg.EnemyPoints,
		Entered:       s.code.Keys(),
		RestartCode:   slices.Clone(s.cfg.RestartCode),
	}
}

func (s *Session) playingView() PlayingView {
	return PlayingView{
		Snake:           slices.Clone(s.reg.snake),
		Foods:           slices.Clone(s.reg.foods),
		Enemy:           clonePos(s.reg.enemy),
		PowerUps:        slices.Clone(s.reg.powerUps),
		PowerUpsVisible: s.powerUpsVisible,
		Score:           s.score,
		Tier:            s.tier,
	}
}

func clonePos(p *Position) *Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
