package portfolio

import (
	"time"

	"github.com/shanavlnc/folio/app/enum"
)

// DefaultFadeDuration is how long the fade-in takes from invisible to fully opaque.
const DefaultFadeDuration = 800 * time.Millisecond

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// ease is the standard "ease" curve used by mobile animation schedulers.
var ease = cubicBezier(0.42, 0, 1, 1)

// EaseInOut applies ease symmetrically to both halves of the animation.
// This is the default timing curve of the mobile framework's animation clock.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return ease(t*2) / 2
	}
	return 1 - ease((1-t)*2)/2
}

// cubicBezier returns an easing for the curve (0,0),(x1,y1),(x2,y2),(1,1).
// x is solved by bisection, which is exact enough for x1,x2 within [0,1]
// where the curve is monotonic in x.
func cubicBezier(x1, y1, x2, y2 float64) Easing {
	at := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		lo, hi := 0.0, 1.0
		t := x
		for range 40 {
			t = (lo + hi) / 2
			if at(t, x1, x2) < x {
				lo = t
			} else {
				hi = t
			}
		}
		return at(t, y1, y2)
	}
}

// FadeIn is the one-shot opacity animator played when a screen mounts.
// It moves through mounting -> fading-in -> settled exactly once and never
// goes back. FadeIn is not safe for concurrent use; the owning Screen guards it.
type FadeIn struct {
	duration  time.Duration
	easing    Easing
	phase     enum.Phase
	startedAt time.Time
}

// NewFadeIn makes an animator in the mounting phase. A nil easing means EaseInOut.
func NewFadeIn(duration time.Duration, easing Easing) *FadeIn {
	if easing == nil {
		easing = EaseInOut
	}
	return &FadeIn{duration: duration, easing: easing, phase: enum.PhaseMounting}
}

// Start begins the fade at now. Only the first call has an effect; it returns
// false if the animator was already started.
func (f *FadeIn) Start(now time.Time) bool {
	if f.phase != enum.PhaseMounting {
		return false
	}
	f.startedAt = now
	f.phase = f.phase.Next()
	if f.duration <= 0 {
		f.phase = f.phase.Next()
	}
	return true
}

// Advance settles the animator once the duration has elapsed and returns the current phase.
func (f *FadeIn) Advance(now time.Time) enum.Phase {
	if f.phase == enum.PhaseFadingIn && now.Sub(f.startedAt) >= f.duration {
		f.phase = f.phase.Next()
	}
	return f.phase
}

// Settle jumps straight to the settled phase, for hosts that cannot animate.
func (f *FadeIn) Settle() {
	f.phase = enum.PhaseSettled
}

// Phase returns the current phase without advancing it.
func (f *FadeIn) Phase() enum.Phase { return f.phase }

// Duration returns the configured fade duration.
func (f *FadeIn) Duration() time.Duration { return f.duration }

// Elapsed returns how far into the fade now is, capped at the duration.
func (f *FadeIn) Elapsed(now time.Time) time.Duration {
	switch f.phase {
	case enum.PhaseMounting:
		return 0
	case enum.PhaseSettled:
		return f.duration
	}
	elapsed := now.Sub(f.startedAt)
	if elapsed < 0 {
		return 0
	}
	if elapsed > f.duration {
		return f.duration
	}
	return elapsed
}

// Opacity returns the animated opacity at now, always within [0,1].
func (f *FadeIn) Opacity(now time.Time) float64 {
	switch f.phase {
	case enum.PhaseMounting:
		return 0
	case enum.PhaseSettled:
		return 1
	}
	if f.duration <= 0 {
		return 1
	}
	progress := float64(f.Elapsed(now)) / float64(f.duration)
	return clamp01(f.easing(progress))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
