package backdrop

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Element counts of the particle background.
const (
	ParticleCount = 40
	DotCount      = 120
	FastDotCount  = 60
	StreamCount   = 15
)

var (
	particlePalette = []string{"#3b82f6", "#8b5cf6", "#06b6d4", "#10b981"}

	black     = mustHex("#000000")
	blue500   = mustHex("#3b82f6")
	purple500 = mustHex("#a855f7")
)

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// NewParticleField builds the full-page animated background for a
// width x height viewport. The layout is fully determined by seed.
func NewParticleField(seed uint64, width, height float64) *Field {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	between := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

	f := &Field{Width: width, Height: height, Opacity: 1}
	f.Sprites = make([]Sprite, 0, ParticleCount+DotCount+FastDotCount+StreamCount)

	// Soft coloured particles wandering around their anchor.
	for range ParticleCount {
		dur := seconds(between(40, 120))
		delay := seconds(between(-20, 0))
		track := func(keys ...float64) *Track {
			return &Track{Keyframes: keys, Duration: dur, Delay: delay, Repeat: Reverse, Ease: EaseInOut}
		}
		size := between(2, 10)
		color := mustHex(particlePalette[rng.IntN(len(particlePalette))])
		f.Sprites = append(f.Sprites, Sprite{
			Shape:   Circle,
			Color:   color,
			Alpha:   0.3,
			Size:    size / 2,
			AnchorX: Const(rng.Float64()),
			AnchorY: Const(rng.Float64()),
			OffsetX: track(between(-50, 50), between(-50, 50), between(-50, 50)),
			OffsetY: track(between(-50, 50), between(-50, 50), between(-50, 50)),
			Opacity: track(0.2, 0.5, 0.2),
		})
	}

	// Small dark dots drifting between two points via a jittered midpoint.
	for range DotCount {
		sx, sy := rng.Float64(), rng.Float64()
		ex, ey := rng.Float64(), rng.Float64()
		size := between(0.5, 2.5)
		opacity := between(0.1, 0.6)
		dur := seconds(between(10, 30))
		delay := seconds(between(-10, 0))
		track := func(keys ...float64) *Track {
			return &Track{Keyframes: keys, Duration: dur, Delay: delay, Repeat: Reverse, Ease: EaseInOut}
		}
		f.Sprites = append(f.Sprites, Sprite{
			Shape:   Circle,
			Color:   black,
			Alpha:   0.7,
			Size:    size / 2,
			AnchorX: track(sx, (sx+ex)/2+between(-0.05, 0.05), ex),
			AnchorY: track(sy, (sy+ey)/2+between(-0.05, 0.05), ey),
			Opacity: track(opacity, opacity*1.5, opacity),
			Scale:   track(1, 1.2, 1),
		})
	}

	// Fast linear dots hopping across the page.
	for range FastDotCount {
		size := between(0.5, 1.5)
		dur := seconds(between(4, 12))
		delay := seconds(between(-5, 0))
		track := func(keys ...float64) *Track {
			return &Track{Keyframes: keys, Duration: dur, Delay: delay, Repeat: Loop, Ease: Linear}
		}
		f.Sprites = append(f.Sprites, Sprite{
			Shape:   Circle,
			Color:   black,
			Alpha:   between(0.1, 0.4),
			Size:    size / 2,
			AnchorX: track(rng.Float64(), rng.Float64(), rng.Float64()),
			AnchorY: track(rng.Float64(), rng.Float64(), rng.Float64()),
		})
	}

	// Data streams: hairlines that grow and fade along a random heading.
	for range StreamCount {
		angle := rng.Float64() * 2 * math.Pi
		distance := between(10, 40)
		dur := seconds(between(2, 6))
		repeatDelay := seconds(between(0, 4))
		delay := seconds(between(-5, 0))
		track := func(keys ...float64) *Track {
			return &Track{
				Keyframes: keys, Duration: dur, Delay: delay, RepeatDelay: repeatDelay,
				Repeat: Loop, Ease: EaseInOut,
			}
		}
		f.Sprites = append(f.Sprites, Sprite{
			Shape:   Line,
			Color:   black,
			Alpha:   1,
			Size:    1,
			Angle:   angle,
			AnchorX: Const(rng.Float64()),
			AnchorY: Const(rng.Float64()),
			Length:  track(0, distance, 0),
			Opacity: track(0, 0.1, 0),
		})
	}

	return f
}

// Helix geometry.
const (
	HelixDots    = 10
	HelixSpacing = 40.0
	HelixSwing   = 20.0
	helixRadius  = 8.0
)

// NewHelix builds the hero's DNA helix: two columns of dots swinging in
// opposition, each dot delayed 0.3s after the one above it.
func NewHelix() *Field {
	f := &Field{Width: 80, Height: 384, Opacity: 0.2}

	strand := func(c colorful.Color, top float64, keys []float64) {
		for i := range HelixDots {
			delay := seconds(0.3 * float64(i))
			track := func(k ...float64) *Track {
				return &Track{Keyframes: k, Duration: 3 * time.Second, Delay: delay, Repeat: Loop, Ease: EaseInOut}
			}
			f.Sprites = append(f.Sprites, Sprite{
				Shape:   Circle,
				Color:   c,
				Alpha:   1,
				Size:    helixRadius,
				OffsetX: track(keys[0]+helixRadius, keys[1]+helixRadius, keys[2]+helixRadius),
				OffsetY: Const(top + float64(i)*HelixSpacing + helixRadius),
				Opacity: track(0.4, 0.8, 0.4),
			})
		}
	}
	strand(blue500, 0, []float64{0, HelixSwing, 0})
	strand(purple500, HelixSpacing/2, []float64{HelixSwing, 0, HelixSwing})

	return f
}

// Circuit geometry.
const (
	CircuitRows   = 5
	CircuitLength = 160.0
	circuitPitch  = 66.0
	circuitMargin = 32.0
	pulseRadius   = 6.0
)

// NewCircuit builds the hero's quantum circuit: five wires, each with a
// pulse travelling to the end and back every 4s, rows staggered by 0.8s.
func NewCircuit() *Field {
	f := &Field{Width: CircuitLength + 2*pulseRadius, Height: CircuitRows * circuitPitch, Opacity: 0.2}

	for i := range CircuitRows {
		y := circuitMargin + float64(i)*circuitPitch
		f.Sprites = append(f.Sprites,
			Sprite{
				Shape:   Line,
				Color:   blue500,
				Alpha:   1,
				Size:    2,
				OffsetX: Const(0),
				OffsetY: Const(y + 1),
				Length:  Const(CircuitLength),
			},
			Sprite{
				Shape: Circle,
				Color: blue500,
				Alpha: 1,
				Size:  pulseRadius,
				OffsetX: &Track{
					Keyframes: []float64{pulseRadius, CircuitLength + pulseRadius, pulseRadius},
					Duration:  4 * time.Second,
					Delay:     seconds(0.8 * float64(i)),
					Repeat:    Loop,
					Ease:      EaseInOut,
				},
				OffsetY: Const(y + pulseRadius),
			},
		)
	}
	return f
}
