package powerpong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/powerpong/internal/config"
)

func TestSnapshotEncodeDecode(t *testing.T) {
	s := NewSimulation(config.DefaultPowerPongConfig(), NewRandom(5))
	s.SpawnBall(100, 200, 1.5)
	s.PowerUps.Spawn(PowerUp{X: 50, Y: 60, Type: PowerUpPaddleMin})
	for range 30 {
		s.Update(0)
	}

	snap := s.Snapshot()
	data, err := snap.Encode()
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
	assert.Equal(t, snap.Hash(), got.Hash())
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xc1, 0x00, 0x13})
	assert.Error(t, err)
}

func TestApplySnapshotRestoresState(t *testing.T) {
	cfg := config.DefaultPowerPongConfig()
	src := NewSimulation(cfg, NewRandom(8))
	for range 200 {
		src.Update(0)
	}
	snap := src.Snapshot()

	dst := NewSimulation(cfg, NewRandom(1))
	dst.ApplySnapshot(snap)

	assert.Equal(t, snap, dst.Snapshot())
}

func TestApplySnapshotDropsOverflow(t *testing.T) {
	cfg := config.DefaultPowerPongConfig()
	cfg.Ball.MaxCount = 2
	s := NewSimulation(cfg, NewRandom(1))

	s.ApplySnapshot(Snapshot{
		Lives:        3,
		PaddleLength: 500,
		Balls:        []Ball{{X: 1}, {X: 2}, {X: 3}},
	})
	assert.Equal(t, 2, s.Balls.Len())
	assert.Equal(t, cfg.Paddle.MaxLen, s.Paddle.Length)
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultPowerPongConfig()

	run := func(seed int64) (Snapshot, Stats) {
		r := RunHeadless(cfg, RunOptions{Seed: seed, MaxFrames: 3000})
		return r.Final, r.Stats
	}

	snap1, stats1 := run(42)
	snap2, stats2 := run(42)
	assert.Equal(t, snap1.Hash(), snap2.Hash(), "same seed must give the same state")
	assert.Equal(t, stats1, stats2)

	snap3, _ := run(43)
	assert.NotEqual(t, snap1.Hash(), snap3.Hash(), "different seeds should diverge")
}
