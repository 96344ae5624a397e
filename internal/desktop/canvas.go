package desktop

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"snakeplus/internal/game"
)

var (
	bgColor       = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	snakeColor    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	foodColor     = color.RGBA{0xff, 0x33, 0x33, 0xff}
	enemyColor    = color.RGBA{0xff, 0xff, 0x00, 0xff}
	slowDownColor = color.RGBA{0x00, 0xff, 0xff, 0xff}
	killerColor   = color.RGBA{0xff, 0x00, 0xff, 0xff}
	textColor     = color.White
)

const (
	slotSize = 40
	slotGap  = 10
)

type screenKind int

const (
	screenBlank screenKind = iota
	screenTitle
	screenPlaying
	screenGameOver
)

// Canvas is the game.Renderer for the desktop window. The session pushes a
// view on each accepted frame; Draw repaints the latest one.
type Canvas struct {
	width, height, step int

	faces map[float64]*text.GoTextFace

	mu      sync.Mutex
	screen  screenKind
	playing game.PlayingView
	over    game.GameOverView
}

func NewCanvas(cfg game.Config) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	c := &Canvas{
		width:  cfg.BoardWidth,
		height: cfg.BoardHeight,
		step:   cfg.Step,
		faces:  make(map[float64]*text.GoTextFace),
	}
	for _, size := range []float64{60, 40, 24, 20, 16} {
		c.faces[size] = &text.GoTextFace{Source: src, Size: size}
	}
	return c, nil
}

func (c *Canvas) RenderTitle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = screenTitle
}

func (c *Canvas) RenderPlaying(v game.PlayingView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = screenPlaying
	c.playing = v
}

func (c *Canvas) RenderGameOver(v game.GameOverView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = screenGameOver
	c.over = v
}

func (c *Canvas) Draw(dst *ebiten.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dst.Fill(bgColor)
	switch c.screen {
	case screenTitle:
		c.drawTitle(dst)
	case screenPlaying:
		c.drawPlaying(dst)
	case screenGameOver:
		c.drawGameOver(dst)
	}
}

func (c *Canvas) drawTitle(dst *ebiten.Image) {
	cx, cy := float64(c.width)/2, float64(c.height)/2
	c.drawText(dst, "Snake Plus", 60, cx, cy-50, snakeColor)
	c.drawText(dst, "Press any arrow key to start", 24, cx, cy+100, textColor)
	c.drawText(dst, "(Up, Down, Left, Right)", 24, cx, cy+140, textColor)
}

func (c *Canvas) drawPlaying(dst *ebiten.Image) {
	v := c.playing
	for _, p := range v.Snake {
		c.drawCell(dst, p, snakeColor)
	}
	for _, p := range v.Foods {
		c.drawCell(dst, p, foodColor)
	}
	if v.Enemy != nil {
		c.drawCell(dst, *v.Enemy, enemyColor)
	}
	if v.PowerUpsVisible {
		for _, pu := range v.PowerUps {
			c.drawCell(dst, pu.Pos, powerUpColor(pu.Kind))
		}
	}
}

func (c *Canvas) drawGameOver(dst *ebiten.Image) {
	v := c.over
	cx := float64(c.width) / 2
	h := float64(c.height)

	c.drawText(dst, "Snake Plus", 40, cx, 100, snakeColor)
	c.drawText(dst, "Game Over", 40, cx, 200, textColor)
	for i, line := range v.ScoreLines() {
		c.drawText(dst, line, 20, cx, 260+float64(i)*40, textColor)
	}

	for _, p := range game.LineUp(v.Snake, c.width/2, 390, c.step) {
		c.drawCell(dst, p, snakeColor)
	}

	c.drawText(dst, v.RestartHint(), 20, cx, h-100, textColor)
	for i, r := range codeSlots(c.width, c.height, len(v.RestartCode)) {
		vector.StrokeRect(dst, r.x, r.y, r.w, r.h, 1, textColor, false)
		if i < len(v.Entered) {
			c.drawText(dst, v.Entered[i].String(), 16, float64(r.x+r.w/2), h-30, textColor)
		}
	}
}

func (c *Canvas) drawCell(dst *ebiten.Image, p game.Position, clr color.Color) {
	size := float32(c.step - 1)
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), size, size, clr, false)
}

// drawText centres s horizontally on x with its baseline near y.
func (c *Canvas) drawText(dst *ebiten.Image, s string, size, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	text.Draw(dst, s, c.faces[size], op)
}

func powerUpColor(k game.PowerUpKind) color.Color {
	if k == game.PowerUpSlowDown {
		return slowDownColor
	}
	return killerColor
}

type rect struct{ x, y, w, h float32 }

// codeSlots returns the boxes that show the restart code as it is typed,
// centred along the bottom of the board.
func codeSlots(width, height, n int) []rect {
	total := slotSize*n + slotGap*(n-1)
	left := width/2 - total/2
	slots := make([]rect, n)
	for i := range slots {
		slots[i] = rect{
			x: float32(left + i*(slotSize+slotGap)),
			y: float32(height - 60),
			w: slotSize,
			h: slotSize,
		}
	}
	return slots
}
