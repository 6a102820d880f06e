package raster

import (
	"bytes"
	"context"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thegreatvegan/Qura/internal/molecule"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "white", want: color.NRGBA{255, 255, 255, 255}},
		{in: " Transparent ", want: color.NRGBA{}},
		{in: "#3b82f6", want: color.NRGBA{59, 130, 246, 255}},
		{in: "#fff", want: color.NRGBA{255, 255, 255, 255}},
		{in: "rgba(255, 255, 255, 0.4)", want: color.NRGBA{255, 255, 255, 102}},
		{in: "rgb(1,2,3)", want: color.NRGBA{1, 2, 3, 255}},
		{in: "rgba(300, -4, 10, 2)", want: color.NRGBA{255, 0, 10, 255}},
		{in: "hsl(10, 20%, 30%)", wantErr: true},
		{in: "rgba(1, 2)", wantErr: true},
		{in: "rgb(a, b, c)", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanvas_SetSizeAndClear(t *testing.T) {
	c := NewCanvas(0, -3)
	assert.Equal(t, 1, c.Width())
	assert.Equal(t, 1, c.Height())

	c.SetSize(40, 30)
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 30, c.Height())

	c.SetFillColor("#ef4444")
	c.BeginPath()
	c.Arc(20, 15, 10, 0, 6.3)
	c.Fill()
	assert.NotZero(t, c.Image().RGBAAt(20, 15).A)

	c.ClearRect(0, 0, 40, 30)
	assert.Zero(t, c.Image().RGBAAt(20, 15).A)
}

func TestCanvas_IgnoresBadColours(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetFillColor("#10b981")
	c.SetFillColor("not-a-colour")

	c.BeginPath()
	c.Arc(5, 5, 5, 0, 6.3)
	c.Fill()

	px := c.Image().RGBAAt(5, 5)
	assert.Equal(t, uint8(0x10), px.R)
	assert.Equal(t, uint8(0xb9), px.G)
}

func TestSnapshot(t *testing.T) {
	img, err := Snapshot(SnapshotOptions{Width: 200, Height: 160})
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())

	// the corner is background, the centre atom is drawn over it
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	centre := img.RGBAAt(100, 80)
	assert.NotEqual(t, color.RGBA{255, 255, 255, 255}, centre)
	assert.Equal(t, uint8(255), centre.A)
}

func TestSnapshot_InvalidSize(t *testing.T) {
	_, err := Snapshot(SnapshotOptions{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	err := EncodePNG(&buf, SnapshotOptions{Width: 64, Height: 48, Rotation: molecule.Rotation{X: 0.3, Y: 1}})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestRenderGIF(t *testing.T) {
	data, err := RenderGIF(context.Background(), GIFOptions{Width: 48, Height: 48, Frames: 4, Stride: 7})
	require.NoError(t, err)

	anim, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, anim.Image, 4)
	assert.Equal(t, []int{12, 12, 12, 12}, anim.Delay)
	assert.Equal(t, 0, anim.LoopCount)
	assert.Equal(t, 48, anim.Config.Width)
}

func TestRenderGIF_Errors(t *testing.T) {
	_, err := RenderGIF(context.Background(), GIFOptions{Width: -1, Height: 10, Frames: 1})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = RenderGIF(context.Background(), GIFOptions{Width: 10, Height: 10})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RenderGIF(ctx, GIFOptions{Width: 10, Height: 10, Frames: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPalette(t *testing.T) {
	pal := Palette(molecule.NewModel(), Background)

	assert.LessOrEqual(t, len(pal), 256)
	assert.Equal(t, Background, pal[0])
	assert.Contains(t, pal, color.Color(color.NRGBA{59, 130, 246, 255}))
	assert.Contains(t, pal, color.Color(color.NRGBA{100, 116, 139, 255}))
}

func TestGIFOptions_FrameDelay(t *testing.T) {
	assert.Equal(t, 2, GIFOptions{Stride: 1}.FrameDelay())
	assert.Equal(t, 12, GIFOptions{Stride: 7}.FrameDelay())
	assert.Equal(t, 1, GIFOptions{Stride: 0}.FrameDelay())
}
