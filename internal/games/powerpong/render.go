package powerpong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/core"
)

// Display characters
const (
	CharBall   = '●'
	CharPaddle = '█'
	CharWallH  = '─'
	CharWallV  = '│'
)

// Minimum terminal size that still shows a playable arena
const (
	minScreenW = 40
	minScreenH = 16
)

// viewport maps arena coordinates to screen cells. Row 0 is the HUD; the
// arena fills the rows below it.
type viewport struct {
	cols, rows int
	arenaW     float64
	arenaH     float64
}

func newViewport(dst *core.Screen, a config.ArenaConfig) viewport {
	return viewport{
		cols:   dst.Width(),
		rows:   dst.Height() - 1,
		arenaW: a.Width,
		arenaH: a.Height,
	}
}

func (v viewport) col(x float64) int {
	c := int(math.Round(x / v.arenaW * float64(v.cols-1)))
	return core.Clamp(c, 0, v.cols-1)
}

func (v viewport) row(y float64) int {
	r := int(math.Round(y / v.arenaH * float64(v.rows-1)))
	return 1 + core.Clamp(r, 0, v.rows-1)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	RenderState(dst, g.sim, g.clock.FPS())
	g.renderOverlay(dst)
}

// RenderState draws a simulation without any overlay. fps of 0 hides the
// frame rate readout.
func RenderState(dst *core.Screen, s *SimulationState, fps float64) {
	v := newViewport(dst, s.cfg.Arena)

	renderHUD(dst, s, fps)
	renderWalls(dst, s, v)
	renderPowerUps(dst, s, v)
	renderPaddle(dst, s, v)
	renderBalls(dst, s, v)
}

func renderHUD(dst *core.Screen, s *SimulationState, fps float64) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightYellow)

	lives := fmt.Sprintf("Lives: %d  Next: %d", max(s.Lives, 0), s.NextRewardAt())
	dst.DrawTextCentered(0, lives)

	mode := "MANUAL"
	if s.AutoMode {
		mode = "AUTO"
	}
	if fps > 0 {
		mode = fmt.Sprintf("%s %3.0f fps", mode, fps)
	}
	dst.DrawTextColored(dst.Width()-len(mode)-1, 0, mode, core.ColorGray)
}

// renderWalls draws the top, bottom and left walls. The right side is the
// paddle's and stays open.
func renderWalls(dst *core.Screen, s *SimulationState, v viewport) {
	a := s.cfg.Arena
	top := v.row(a.Margin)
	bottom := v.row(a.Height)

	dst.DrawHLine(0, top, v.cols, CharWallH, core.ColorGray)
	dst.DrawHLine(0, bottom, v.cols, CharWallH, core.ColorGray)
	dst.DrawVLine(0, top+1, bottom-top-1, CharWallV, core.ColorGray)
	dst.SetColored(0, top, '┌', core.ColorGray)
	dst.SetColored(0, bottom, '└', core.ColorGray)
}

func renderPaddle(dst *core.Screen, s *SimulationState, v viewport) {
	x := v.col(s.Paddle.X)
	top := v.row(s.Paddle.Top())
	bottom := v.row(s.Paddle.Bottom())
	dst.DrawVLine(x, top, bottom-top+1, CharPaddle, core.ColorBrightWhite)
}

func renderBalls(dst *core.Screen, s *SimulationState, v viewport) {
	for _, b := range s.Balls.Items() {
		dst.SetColored(v.col(b.X), v.row(b.Y), CharBall, core.ColorBrightYellow)
	}
}

func renderPowerUps(dst *core.Screen, s *SimulationState, v viewport) {
	for _, p := range s.PowerUps.Items() {
		dst.SetColored(v.col(p.X), v.row(p.Y), p.Type.Glyph(), p.Type.Color())
	}
}

// renderOverlay draws the pause and game over boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	var lines []string
	switch {
	case g.sim.GameOver():
		lines = []string{
			"GAME OVER",
			fmt.Sprintf("Best: %d  Hits: %d", g.sim.Stats.BestScore, g.sim.Stats.Hits),
			"R restart  Q quit",
		}
	case g.paused:
		lines = []string{"PAUSED", "P resume  Q quit"}
	default:
		return
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
