package game

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"sync"
	"testing"
	"time"
)

// scriptRand replays fixed draws, then falls back to a seeded source.
type scriptRand struct {
	ints     []int
	floats   []float64
	intCalls int
	fallback *rand.Rand
}

func newScriptRand(ints []int, floats []float64) *scriptRand {
	return &scriptRand{ints: ints, floats: floats, fallback: rand.New(rand.NewSource(7))}
}

func (r *scriptRand) Intn(n int) int {
	r.intCalls++
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.fallback.Float64()
}

type recordRenderer struct {
	titles    int
	playing   []PlayingView
	gameOvers []GameOverView
}

func (r *recordRenderer) RenderTitle() { r.titles++ }

func (r *recordRenderer) RenderPlaying(v PlayingView) {
	r.playing = append(r.playing, v)
}

func (r *recordRenderer) RenderGameOver(v GameOverView) {
	r.gameOvers = append(r.gameOvers, v)
}

type recordAudio struct {
	sounds   []Sound
	started  int
	stopped  int
	rates    []float64
	startErr error
}

func (a *recordAudio) PlaySound(snd Sound) error {
	a.sounds = append(a.sounds, snd)
	return nil
}

func (a *recordAudio) StartMusic() error {
	if a.startErr != nil {
		return a.startErr
	}
	a.started++
	return nil
}

func (a *recordAudio) StopMusic() error {
	a.stopped++
	return nil
}

func (a *recordAudio) SetMusicRate(rate float64) error {
	a.rates = append(a.rates, rate)
	return nil
}

func (a *recordAudio) played(snd Sound) bool {
	for _, s := range a.sounds {
		if s == snd {
			return true
		}
	}
	return false
}

type manualTicker struct {
	c       chan time.Time
	mu      sync.Mutex
	stopped int
}

func (m *manualTicker) C() <-chan time.Time { return m.c }

func (m *manualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped++
}

func (m *manualTicker) stopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

type tickerFactory struct {
	mu        sync.Mutex
	tickers   []*manualTicker
	intervals []time.Duration
}

func (f *tickerFactory) New(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &manualTicker{c: make(chan time.Time)}
	f.tickers = append(f.tickers, t)
	f.intervals = append(f.intervals, d)
	return t
}

type fixture struct {
	s        *Session
	renderer *recordRenderer
	audio    *recordAudio
	tickers  *tickerFactory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		renderer: &recordRenderer{},
		audio:    &recordAudio{},
		tickers:  &tickerFactory{},
	}
	s, err := NewSession(DefaultConfig(), f.renderer,
		WithAudio(f.audio),
		WithRand(rand.New(rand.NewSource(1))),
		WithLogger(log.New(io.Discard, "", 0)),
		WithTicker(f.tickers.New),
	)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(s.Close)
	f.s = s
	return f
}

// useRand swaps the session's random source after construction.
func (f *fixture) useRand(r Rand) {
	f.s.rng = r
	f.s.spawner = NewSpawner(f.s.cfg, r)
}

// play starts the game and clears the board of food.
func (f *fixture) play(t *testing.T) {
	t.Helper()
	f.s.HandleKey(KeyRight)
	if f.s.phase != PhasePlaying {
		t.Fatalf("phase = %v, want playing", f.s.phase)
	}
	f.s.reg.foods = nil
}

// tick forces one accepted frame regardless of the current interval.
func (f *fixture) tick(t *testing.T) {
	t.Helper()
	if !f.s.Frame(f.s.lastFrame + time.Hour) {
		t.Fatal("frame was not accepted")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

var errNoDevice = errors.New("no audio device")
