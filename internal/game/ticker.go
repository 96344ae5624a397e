package game

import (
	"sync"
	"time"
)

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// enemyTicker runs step on every tick in its own goroutine. step receives
// the done channel so it can drop a tick that raced with Stop.
type enemyTicker struct {
	ticker Ticker
	done   chan struct{}
	once   sync.Once
}

func startEnemyTicker(t Ticker, step func(done <-chan struct{})) *enemyTicker {
	et := &enemyTicker{ticker: t, done: make(chan struct{})}
	go et.run(step)
	return et
}

func (et *enemyTicker) run(step func(done <-chan struct{})) {
	for {
		select {
		case <-et.done:
			return
		case <-et.ticker.C():
			step(et.done)
		}
	}
}

// Stop cancels the ticker. It is safe to call more than once and on nil.
func (et *enemyTicker) Stop() {
	if et == nil {
		return
	}
	et.once.Do(func() {
		et.ticker.Stop()
		close(et.done)
	})
}
