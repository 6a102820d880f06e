package backdrop

import (
	"math"
	"time"
)

// Repeat selects how a Track continues after its first cycle.
type Repeat int

const (
	// Loop restarts from the first keyframe.
	Loop Repeat = iota
	// Reverse plays every other cycle backwards.
	Reverse
)

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(p float64) float64

// Linear is the identity easing.
func Linear(p float64) float64 { return p }

// EaseInOut is cubic-bezier(0.42, 0, 0.58, 1).
func EaseInOut(p float64) float64 { return cubicBezier(0.42, 0, 0.58, 1, p) }

// Track is a keyframed value. Keyframes are spaced evenly over Duration
// and the easing applies to each segment between two keyframes. A
// negative Delay starts the track part-way through its timeline.
type Track struct {
	Keyframes   []float64
	Duration    time.Duration
	Delay       time.Duration
	RepeatDelay time.Duration
	Repeat      Repeat
	Ease        Ease
}

// Const returns a track that always evaluates to v.
func Const(v float64) *Track {
	return &Track{Keyframes: []float64{v}}
}

// Value evaluates the track at field time t.
func (tr *Track) Value(t time.Duration) float64 {
	n := len(tr.Keyframes)
	switch {
	case n == 0:
		return 0
	case n == 1 || tr.Duration <= 0:
		return tr.Keyframes[0]
	}

	local := t - tr.Delay
	if local < 0 {
		return tr.Keyframes[0]
	}

	cycleLen := tr.Duration + tr.RepeatDelay
	cycle := local / cycleLen
	p := float64(local%cycleLen) / float64(tr.Duration)
	if p > 1 {
		p = 1
	}
	if tr.Repeat == Reverse && cycle%2 == 1 {
		p = 1 - p
	}

	seg := p * float64(n-1)
	i := int(seg)
	if i >= n-1 {
		return tr.Keyframes[n-1]
	}
	f := seg - float64(i)
	if tr.Ease != nil {
		f = tr.Ease(f)
	}
	a, b := tr.Keyframes[i], tr.Keyframes[i+1]
	return a + (b-a)*f
}

// cubicBezier evaluates a CSS timing function with control points
// (x1, y1), (x2, y2) at x.
func cubicBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	bez := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	deriv := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
	}

	// Newton-Raphson on x(t), falling back to bisection.
	t := x
	for range 8 {
		dx := bez(x1, x2, t) - x
		if math.Abs(dx) < 1e-7 {
			return bez(y1, y2, t)
		}
		d := deriv(x1, x2, t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}
	lo, hi := 0.0, 1.0
	t = x
	for range 40 {
		v := bez(x1, x2, t)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bez(y1, y2, t)
}
