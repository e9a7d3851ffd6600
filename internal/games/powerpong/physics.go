package powerpong

import (
	"math"

	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/core"
)

// wallInset is how far inside a wall a bounced ball is placed.
const wallInset = 2

// Bounds holds the movement limits derived from the configuration.
type Bounds struct {
	BallYMin   float64 // Top wall (below the HUD margin)
	BallYMax   float64 // Bottom wall
	BallXMin   float64 // Left wall
	BallXMax   float64 // Paddle plane
	PaddleHitX float64 // Where a ball is parked after a paddle hit

	margin float64
	border float64
	height float64
}

// NewBounds computes the limits for a configuration.
func NewBounds(cfg config.PowerPongConfig) Bounds {
	a, ball := cfg.Arena, cfg.Ball
	xMax := a.Width - cfg.Paddle.Width - ball.Size
	return Bounds{
		BallYMin:   ball.Size + a.Margin + a.Border,
		BallYMax:   a.Height - ball.Size - a.Border,
		BallXMin:   a.Border + ball.Size,
		BallXMax:   xMax,
		PaddleHitX: xMax - wallInset,
		margin:     a.Margin,
		border:     a.Border,
		height:     a.Height,
	}
}

// PaddleLimits returns the range the paddle centre may occupy for a length.
func (b Bounds) PaddleLimits(length float64) (minY, maxY float64) {
	return length/2 + b.margin + b.border, b.height - b.border - length/2
}

// moveBall advances a ball one step along its angle.
func moveBall(ball *Ball, step float64) {
	ball.X += step * math.Cos(ball.Angle)
	ball.Y += step * math.Sin(ball.Angle)
}

// bounceVertical reflects a ball off the top or bottom wall.
func bounceVertical(ball *Ball, b Bounds) bool {
	if ball.Y > b.BallYMin && ball.Y < b.BallYMax {
		return false
	}

	ball.Angle = -ball.Angle
	if ball.Y <= b.BallYMin {
		ball.Y = b.BallYMin + wallInset
	} else if ball.Y >= b.BallYMin {
		// Compares against BallYMin, not BallYMax. Kept as is: the outer
		// check already rules out y <= BallYMin, so this branch always runs.
		ball.Y = b.BallYMax - wallInset
	}
	return true
}

// bounceLeftWall reflects a ball off the left wall.
func bounceLeftWall(ball *Ball, b Bounds) bool {
	if ball.X > b.BallXMin {
		return false
	}
	ball.Angle = math.Pi - ball.Angle
	ball.X = b.BallXMin + wallInset
	return true
}

// reachedPaddlePlane reports whether a ball has got to the paddle's x.
func reachedPaddlePlane(ball Ball, b Bounds) bool {
	return ball.X >= b.BallXMax
}

// PaddleCovers reports whether the paddle is close enough to a ball at the
// paddle plane to return it.
func PaddleCovers(ball Ball, paddle Paddle, ballSize float64) bool {
	return math.Abs(ball.Y-paddle.Y) <= (paddle.Length+ballSize)/2
}

// Overlaps is the inclusive box test between a ball and a power-up.
func Overlaps(ball Ball, pu PowerUp, ballSize, powerUpSize float64) bool {
	b := core.RectF{X: ball.X, Y: ball.Y, W: ballSize, H: ballSize}
	p := core.RectF{X: pu.X, Y: pu.Y, W: powerUpSize, H: powerUpSize}
	return b.Touches(p)
}
