package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"snakeplus/internal/game"
)

// FrameDuration is how often the loop offers the session a frame.
const FrameDuration = time.Second / 60

// Run drives session from scr until Escape or Ctrl-C is pressed.
func Run(scr tcell.Screen, session *game.Session) {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				session.HandleKey(mapKey(ev.Key()))
			case *tcell.EventResize:
				scr.Sync()
			}
		case <-ticker.C:
			session.Frame(time.Since(start))
		}
	}
}

func mapKey(k tcell.Key) game.Key {
	switch k {
	case tcell.KeyUp:
		return game.KeyUp
	case tcell.KeyDown:
		return game.KeyDown
	case tcell.KeyLeft:
		return game.KeyLeft
	case tcell.KeyRight:
		return game.KeyRight
	default:
		return game.KeyOther
	}
}
