package desktop

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"snakeplus/internal/game"
)

// Game adapts a game.Session to ebiten's update/draw loop. Update runs at
// ebiten's TPS; the session decides which updates become ticks.
type Game struct {
	session *game.Session
	canvas  *Canvas
	start   time.Time
	keys    []ebiten.Key
	debug   bool

	width, height int
}

func NewGame(s *game.Session, c *Canvas, cfg game.Config, debug bool) *Game {
	return &Game{
		session: s,
		canvas:  c,
		start:   time.Now(),
		debug:   debug,
		width:   cfg.BoardWidth,
		height:  cfg.BoardHeight,
	}
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.session.HandleKey(mapKey(k))
	}
	g.session.Frame(time.Since(g.start))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Draw(screen)
	if g.debug {
		st := g.session.State()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f | %s | tier %s | len %d",
			ebiten.ActualTPS(), st.Phase, st.Tier.Name, len(st.Snake)), 10, 10)
	}
}

// Layout keeps the logical board size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func mapKey(k ebiten.Key) game.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return game.KeyUp
	case ebiten.KeyArrowDown:
		return game.KeyDown
	case ebiten.KeyArrowLeft:
		return game.KeyLeft
	case ebiten.KeyArrowRight:
		return game.KeyRight
	default:
		return game.KeyOther
	}
}
