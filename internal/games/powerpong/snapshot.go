package powerpong

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/powerpong/internal/core"
)

// Snapshot is a self-contained copy of the simulation state, used for the
// run journal and for determinism checks. Random generator state is not
// included.
type Snapshot struct {
	Frame         uint64    `msgpack:"frame"`
	Score         int       `msgpack:"score"`
	Lives         int       `msgpack:"lives"`
	PastScore     int       `msgpack:"past_score"`
	RequiredScore int       `msgpack:"required_score"`
	AutoMode      bool      `msgpack:"auto"`
	PaddleY       float64   `msgpack:"paddle_y"`
	PaddleLength  float64   `msgpack:"paddle_len"`
	PaddleDir     int       `msgpack:"paddle_dir"`
	Balls         []Ball    `msgpack:"balls"`
	PowerUps      []PowerUp `msgpack:"powerups"`
}

// Snapshot returns the current state.
func (s *SimulationState) Snapshot() Snapshot {
	return Snapshot{
		Frame:         s.Frame,
		Score:         s.Score,
		Lives:         s.Lives,
		PastScore:     s.PastScore,
		RequiredScore: s.RequiredScore,
		AutoMode:      s.AutoMode,
		PaddleY:       s.Paddle.Y,
		PaddleLength:  s.Paddle.Length,
		PaddleDir:     s.Paddle.Dir,
		Balls:         append([]Ball(nil), s.Balls.Items()...),
		PowerUps:      append([]PowerUp(nil), s.PowerUps.Items()...),
	}
}

// ApplySnapshot restores state from a snapshot. Entities beyond the pool
// capacities of this simulation are dropped.
func (s *SimulationState) ApplySnapshot(snap Snapshot) {
	s.Frame = snap.Frame
	s.Score = snap.Score
	s.Lives = snap.Lives
	s.PastScore = snap.PastScore
	s.RequiredScore = snap.RequiredScore
	s.AutoMode = snap.AutoMode
	s.Paddle.Y = snap.PaddleY
	s.Paddle.Length = core.ClampF(snap.PaddleLength, s.cfg.Paddle.MinLen, s.cfg.Paddle.MaxLen)
	s.Paddle.Dir = snap.PaddleDir

	s.Balls.Clear()
	for _, b := range snap.Balls {
		s.Balls.Spawn(b)
	}
	s.PowerUps.Clear()
	for _, p := range snap.PowerUps {
		s.PowerUps.Spawn(p)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Frame
	mix := func(v uint64) { h = h*31 + v }

	mix(uint64(snap.Score))         //#nosec G115 -- hash computation
	mix(uint64(snap.Lives))         //#nosec G115 -- hash computation
	mix(uint64(snap.PastScore))     //#nosec G115 -- hash computation
	mix(uint64(snap.RequiredScore)) //#nosec G115 -- hash computation
	if snap.AutoMode {
		mix(1)
	}
	mix(math.Float64bits(snap.PaddleY))
	mix(math.Float64bits(snap.PaddleLength))
	mix(uint64(snap.PaddleDir + 1)) //#nosec G115 -- hash computation

	for _, b := range snap.Balls {
		mix(math.Float64bits(b.X))
		mix(math.Float64bits(b.Y))
		mix(math.Float64bits(b.Angle))
	}
	for _, p := range snap.PowerUps {
		mix(math.Float64bits(p.X))
		mix(math.Float64bits(p.Y))
		mix(uint64(p.Type)) //#nosec G115 -- hash computation
	}
	return h
}

// Encode serializes the snapshot with MessagePack.
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("powerpong: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("powerpong: decode snapshot: %w", err)
	}
	return snap, nil
}
