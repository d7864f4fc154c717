package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shanavlnc/folio/app/enum"
)

func TestFadeIn_Lifecycle(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFadeIn(800*time.Millisecond, Linear)

	assert.Equal(t, enum.PhaseMounting, f.Phase())
	assert.InDelta(t, 0.0, f.Opacity(start), 1e-9)

	assert.True(t, f.Start(start))
	assert.Equal(t, enum.PhaseFadingIn, f.Phase())
	assert.InDelta(t, 0.0, f.Opacity(start), 1e-9)
	assert.InDelta(t, 0.5, f.Opacity(start.Add(400*time.Millisecond)), 1e-9)
	assert.Equal(t, enum.PhaseFadingIn, f.Advance(start.Add(799*time.Millisecond)))

	assert.Equal(t, enum.PhaseSettled, f.Advance(start.Add(800*time.Millisecond)))
	assert.InDelta(t, 1.0, f.Opacity(start.Add(800*time.Millisecond)), 1e-9)

	// settled is terminal, a second start does not replay the fade
	assert.False(t, f.Start(start.Add(time.Second)))
	assert.Equal(t, enum.PhaseSettled, f.Phase())
	assert.InDelta(t, 1.0, f.Opacity(start.Add(time.Second)), 1e-9)
}

func TestFadeIn_StartOnce(t *testing.T) {
	start := time.Now()
	f := NewFadeIn(time.Second, Linear)
	assert.True(t, f.Start(start))
	assert.False(t, f.Start(start.Add(500*time.Millisecond)))
	assert.InDelta(t, 0.75, f.Opacity(start.Add(750*time.Millisecond)), 1e-9, "restart must not reset the clock")
}

func TestFadeIn_OpacityBoundedAndMonotonic(t *testing.T) {
	for name, easing := range map[string]Easing{"linear": Linear, "ease-in-out": EaseInOut} {
		t.Run(name, func(t *testing.T) {
			start := time.Now()
			f := NewFadeIn(DefaultFadeDuration, easing)
			f.Start(start)
			prev := -1.0
			for ms := -50; ms <= 1000; ms += 10 {
				now := start.Add(time.Duration(ms) * time.Millisecond)
				f.Advance(now)
				op := f.Opacity(now)
				assert.GreaterOrEqual(t, op, 0.0)
				assert.LessOrEqual(t, op, 1.0)
				assert.GreaterOrEqual(t, op, prev, "opacity decreased at %dms", ms)
				prev = op
			}
			assert.Equal(t, enum.PhaseSettled, f.Phase())
			assert.InDelta(t, 1.0, prev, 1e-9)
		})
	}
}

func TestFadeIn_Settle(t *testing.T) {
	now := time.Now()
	f := NewFadeIn(DefaultFadeDuration, nil)
	f.Settle()
	assert.Equal(t, enum.PhaseSettled, f.Phase())
	assert.InDelta(t, 1.0, f.Opacity(now), 1e-9)
	assert.Equal(t, DefaultFadeDuration, f.Elapsed(now))
	assert.False(t, f.Start(now), "settled animator cannot start")
}

func TestFadeIn_ZeroDuration(t *testing.T) {
	now := time.Now()
	f := NewFadeIn(0, nil)
	assert.True(t, f.Start(now))
	assert.Equal(t, enum.PhaseSettled, f.Phase())
	assert.InDelta(t, 1.0, f.Opacity(now), 1e-9)
}

func TestEaseInOut(t *testing.T) {
	assert.InDelta(t, 0.0, EaseInOut(0), 1e-9)
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-9)
	assert.InDelta(t, 1.0, EaseInOut(1), 1e-9)
	assert.Less(t, EaseInOut(0.25), 0.25, "slow start")
	assert.Greater(t, EaseInOut(0.75), 0.75, "slow end")
}

func TestCubicBezier_Linear(t *testing.T) {
	lin := cubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.3, 0.5, 0.9} {
		assert.InDelta(t, x, lin(x), 1e-6)
	}
}
