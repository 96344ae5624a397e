package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"snakeplus/internal/game"
)

var (
	bgColor       = tcell.NewHexColor(0x1a1a1a)
	snakeColor    = tcell.NewHexColor(0x00ff00)
	foodColor     = tcell.NewHexColor(0xff3333)
	enemyColor    = tcell.NewHexColor(0xffff00)
	slowDownColor = tcell.NewHexColor(0x00ffff)
	killerColor   = tcell.NewHexColor(0xff00ff)
	textColor     = tcell.ColorWhite
)

// upperHalf draws the top grid row in the foreground and the bottom one in
// the background, so one terminal row shows two board rows.
const upperHalf = '▀'

// Screen renders the board on a terminal. Each character cell covers one
// grid column and two grid rows.
type Screen struct {
	scr        tcell.Screen
	step       int
	cols, rows int
	width      int
	height     int
}

func NewScreen(scr tcell.Screen, cfg game.Config) *Screen {
	return &Screen{
		scr:    scr,
		step:   cfg.Step,
		cols:   cfg.BoardWidth / cfg.Step,
		rows:   cfg.BoardHeight / cfg.Step,
		width:  cfg.BoardWidth,
		height: cfg.BoardHeight,
	}
}

func (s *Screen) RenderTitle() {
	grid := s.blank()
	s.begin(grid)
	h := s.height
	s.text(h/2-50, "Snake Plus", snakeColor)
	s.text(h/2+100, "Press any arrow key to start", textColor)
	s.text(h/2+140, "(Up, Down, Left, Right)", textColor)
	s.scr.Show()
}

func (s *Screen) RenderPlaying(v game.PlayingView) {
	grid := s.blank()
	for _, p := range v.Snake {
		s.fill(grid, p, snakeColor)
	}
	for _, p := range v.Foods {
		s.fill(grid, p, foodColor)
	}
	if v.Enemy != nil {
		s.fill(grid, *v.Enemy, enemyColor)
	}
	if v.PowerUpsVisible {
		for _, pu := range v.PowerUps {
			s.fill(grid, pu.Pos, powerUpColor(pu.Kind))
		}
	}
	s.begin(grid)
	s.scr.Show()
}

func (s *Screen) RenderGameOver(v game.GameOverView) {
	grid := s.blank()
	for _, p := range game.LineUp(v.Snake, s.width/2, 390, s.step) {
		s.fill(grid, p, snakeColor)
	}
	s.begin(grid)
	s.text(100, "Snake Plus", snakeColor)
	s.text(200, "Game Over", textColor)
	for i, line := range v.ScoreLines() {
		s.text(260+40*i, line, textColor)
	}
	s.text(s.height-100, v.RestartHint(), textColor)
	s.text(s.height-40, codeSlots(v.Entered, len(v.RestartCode)), textColor)
	s.scr.Show()
}

func (s *Screen) blank() [][]tcell.Color {
	grid := make([][]tcell.Color, s.rows)
	for r := range grid {
		grid[r] = make([]tcell.Color, s.cols)
		for c := range grid[r] {
			grid[r][c] = bgColor
		}
	}
	return grid
}

// fill colours the grid cell under p. Cells off the board are ignored.
func (s *Screen) fill(grid [][]tcell.Color, p game.Position, clr tcell.Color) {
	c, r := p.X/s.step, p.Y/s.step
	if p.X < 0 || p.Y < 0 || r >= len(grid) || c >= len(grid[r]) {
		return
	}
	grid[r][c] = clr
}

// begin clears the terminal and paints grid centred in it.
func (s *Screen) begin(grid [][]tcell.Color) {
	s.scr.Clear()
	ox, oy := s.origin()
	for tr := 0; tr*2 < len(grid); tr++ {
		for c := range grid[tr*2] {
			top := grid[tr*2][c]
			bottom := bgColor
			if tr*2+1 < len(grid) {
				bottom = grid[tr*2+1][c]
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.scr.SetContent(ox+c, oy+tr, upperHalf, nil, style)
		}
	}
}

// text writes str centred on the board at board height y.
func (s *Screen) text(y int, str string, clr tcell.Color) {
	ox, oy := s.origin()
	runes := []rune(str)
	x := ox + (s.cols-len(runes))/2
	row := oy + termRow(y, s.step)
	style := tcell.StyleDefault.Foreground(clr).Background(bgColor)
	for i, r := range runes {
		s.scr.SetContent(x+i, row, r, nil, style)
	}
}

func (s *Screen) origin() (int, int) {
	w, h := s.scr.Size()
	return max(0, (w-s.cols)/2), max(0, (h-(s.rows+1)/2)/2)
}

func termRow(y, step int) int {
	return y / (step * 2)
}

func powerUpColor(k game.PowerUpKind) tcell.Color {
	if k == game.PowerUpSlowDown {
		return slowDownColor
	}
	return killerColor
}

// codeSlots renders the restart code boxes, e.g. "[Up] [Right] [ ] [ ]".
func codeSlots(entered []game.Key, n int) string {
	slots := make([]string, n)
	for i := range slots {
		if i < len(entered) {
			slots[i] = "[" + entered[i].String() + "]"
		} else {
			slots[i] = "[ ]"
		}
	}
	return strings.Join(slots, " ")
}
