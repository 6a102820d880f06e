package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Thegreatvegan/Qura/internal/molecule"
)

// Background is the page colour frames are flattened onto.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ErrInvalidSize is returned for non-positive image dimensions.
var ErrInvalidSize = errors.New("raster: invalid image size")

// SnapshotOptions describe a single still frame.
type SnapshotOptions struct {
	Width, Height int
	Rotation      molecule.Rotation
	// Model defaults to molecule.NewModel()
	Model *molecule.Model
}

// Snapshot renders the molecule at a fixed rotation, flattened onto
// Background.
func Snapshot(opts SnapshotOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	c := NewCanvas(opts.Width, opts.Height)
	r := molecule.NewRenderer(modelOrDefault(opts.Model))
	r.SetRotating(false)
	r.SetRotation(opts.Rotation)
	r.Attach(c)
	r.Frame()

	return c.Flatten(Background), nil
}

// EncodePNG writes a snapshot as PNG.
func EncodePNG(w io.Writer, opts SnapshotOptions) error {
	img, err := Snapshot(opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// GIFOptions describe an auto-rotating animation.
type GIFOptions struct {
	Width, Height int
	// Frames is the number of GIF frames
	Frames int
	// Stride is how many animation steps each GIF frame advances
	Stride int
	Model  *molecule.Model
}

// FrameDelay returns the per-frame delay in hundredths of a second that
// plays the animation at the browser's 60 steps per second.
func (o GIFOptions) FrameDelay() int {
	return max(1, (o.Stride*100+30)/60)
}

// RenderGIF renders an infinitely looping auto-rotation. It checks ctx
// between frames.
func RenderGIF(ctx context.Context, opts GIFOptions) ([]byte, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("raster: frames must be positive, got %d", opts.Frames)
	}
	opts.Stride = max(opts.Stride, 1)

	m := modelOrDefault(opts.Model)
	pal := Palette(m, Background)

	c := NewCanvas(opts.Width, opts.Height)
	r := molecule.NewRenderer(m)
	r.Attach(c)

	anim := &gif.GIF{LoopCount: 0}
	bounds := image.Rect(0, 0, opts.Width, opts.Height)
	delay := opts.FrameDelay()

	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render gif frame %d: %w", i, err)
		}
		for range opts.Stride - 1 {
			r.Advance()
		}
		r.Frame()

		frame := image.NewPaletted(bounds, pal)
		draw.FloydSteinberg.Draw(frame, bounds, c.Flatten(Background), image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, anim); err != nil {
		return nil, fmt.Errorf("encode gif: %w", err)
	}
	return buf.Bytes(), nil
}

// Palette builds a GIF palette for m over bg: ramps from white through
// every atom colour to the background, plus the bond colour.
func Palette(m molecule.Model, bg color.Color) color.Palette {
	const (
		lightSteps = 28
		edgeSteps  = 8
	)

	base, _ := colorful.MakeColor(bg)
	white := colorful.Color{R: 1, G: 1, B: 1}

	pal := color.Palette{toNRGBA(base)}
	add := func(c colorful.Color) {
		if len(pal) < 256 {
			pal = append(pal, toNRGBA(c))
		}
	}
	ramp := func(from, to colorful.Color, steps int) {
		for i := 1; i <= steps; i++ {
			add(from.BlendRgb(to, float64(i)/float64(steps)).Clamped())
		}
	}

	if bond, err := colorful.Hex(molecule.BondColor); err == nil {
		ramp(base, bond, edgeSteps)
	}

	seen := map[string]bool{}
	for _, a := range m.Atoms {
		if seen[a.Color] {
			continue
		}
		seen[a.Color] = true
		c, err := colorful.Hex(a.Color)
		if err != nil {
			continue
		}
		ramp(white, c, lightSteps)
		ramp(c, base, edgeSteps)
	}
	return pal
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func modelOrDefault(m *molecule.Model) molecule.Model {
	if m == nil {
		return molecule.NewModel()
	}
	return *m
}
