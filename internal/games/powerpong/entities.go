package powerpong

import "github.com/vovakirdan/powerpong/internal/core"

// Ball is a ball in play. It has no speed of its own: every ball moves a
// fixed step along Angle each frame.
type Ball struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Angle float64 `msgpack:"a"` // Direction of travel in radians
}

// PowerUpType is the effect a power-up applies to the ball that touches it.
type PowerUpType int

const (
	PowerUpPaddleMax           PowerUpType = iota // Paddle grows to its maximum length
	PowerUpPaddleMin                              // Paddle shrinks to its minimum length
	PowerUpBallRandomDirection                    // Ball gets a new random angle
	PowerUpBallRandomLocation                     // Ball jumps to a random spot
	PowerUpDestroyBall                            // Ball is removed
	PowerUpTypeCount                              // Sentinel for counting types
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpPaddleMax:
		return "PaddleMax"
	case PowerUpPaddleMin:
		return "PaddleMin"
	case PowerUpBallRandomDirection:
		return "BallRandomDirection"
	case PowerUpBallRandomLocation:
		return "BallRandomLocation"
	case PowerUpDestroyBall:
		return "DestroyBall"
	default:
		return "Unknown"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpPaddleMax:
		return '▲'
	case PowerUpPaddleMin:
		return '▼'
	case PowerUpBallRandomDirection:
		return '↻'
	case PowerUpBallRandomLocation:
		return '✦'
	case PowerUpDestroyBall:
		return '✖'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up type.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpPaddleMax:
		return core.ColorBrightGreen
	case PowerUpPaddleMin:
		return core.ColorOrange
	case PowerUpBallRandomDirection:
		return core.ColorBrightCyan
	case PowerUpBallRandomLocation:
		return core.ColorBrightMagenta
	case PowerUpDestroyBall:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// PowerUp is a stationary pickup waiting for a ball.
type PowerUp struct {
	X    float64     `msgpack:"x"`
	Y    float64     `msgpack:"y"`
	Type PowerUpType `msgpack:"t"`
}

// Paddle is the single paddle on the right edge of the arena.
// X is fixed; Y is the centre of the paddle.
type Paddle struct {
	X      float64
	Y      float64
	Length float64
	Dir    int // -1 up, 0 still, +1 down
}

// Top returns the y-coordinate of the paddle's upper end.
func (p Paddle) Top() float64 {
	return p.Y - p.Length/2
}

// Bottom returns the y-coordinate of the paddle's lower end.
func (p Paddle) Bottom() float64 {
	return p.Y + p.Length/2
}
