package powerpong

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomIsDeterministic(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for range 100 {
		assert.Equal(t, a.UniformInt(0, 1000), b.UniformInt(0, 1000))
		assert.Equal(t, a.UnitFloat(), b.UnitFloat())
	}
}

func TestRandomRanges(t *testing.T) {
	r := NewRandom(3)
	for range 1000 {
		v := r.UniformInt(40, 620)
		if v < 40 || v > 620 {
			t.Fatalf("UniformInt(40, 620) = %d, out of range", v)
		}
		f := r.UnitFloat()
		if f < 0 || f >= 1 {
			t.Fatalf("UnitFloat() = %v, out of range", f)
		}
	}
	assert.Equal(t, 5, r.UniformInt(5, 5))
	assert.Equal(t, 9, r.UniformInt(9, 2), "reversed range collapses to min")
}

func TestRandomStreamsAreIndependent(t *testing.T) {
	a, b := NewRandom(11), NewRandom(11)

	// Integer draws on one side must not shift the angle sequence.
	for range 17 {
		a.UniformInt(1, 16)
	}
	for range 10 {
		assert.Equal(t, b.UnitFloat(), a.UnitFloat())
	}
}

func TestFrameClock(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewFrameClock(func() time.Time { return now })

	assert.Zero(t, c.FPS(), "no interval measured yet")

	now = now.Add(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, c.Tick())
	assert.InDelta(t, 50, c.FPS(), 1e-9)

	now = now.Add(10 * time.Millisecond)
	c.Tick()
	assert.Equal(t, 10*time.Millisecond, c.Delta())
	assert.Equal(t, 30*time.Millisecond, c.Elapsed())
}
