package fit_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbtft/fit"
	"github.com/srlehn/fbtft/rgb565"
	"github.com/srlehn/fbtft/transform"
)

func gradient(w, h int) *rgb565.Image {
	m := rgb565.New(w, h)
	for i := range m.Pix {
		m.Pix[i] = rgb565.Color(i*131 + 7)
	}
	return m
}

func row(cs ...rgb565.Color) *rgb565.Image {
	m := rgb565.New(len(cs), 1)
	copy(m.Pix, cs)
	return m
}

func TestLetterboxSize(t *testing.T) {
	tests := []struct {
		srcW, srcH, dstW, dstH int
		size, off              image.Point
	}{
		{320, 240, 240, 320, image.Pt(240, 180), image.Pt(0, 70)},
		{240, 320, 320, 240, image.Pt(180, 240), image.Pt(70, 0)},
		{100, 100, 320, 240, image.Pt(240, 240), image.Pt(40, 0)},
		{640, 480, 320, 240, image.Pt(320, 240), image.Pt(0, 0)},
		{7, 3, 3, 7, image.Pt(3, 1), image.Pt(0, 3)},
	}
	for _, tt := range tests {
		size, off := fit.LetterboxSize(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
		assert.Equal(t, tt.size, size, "%dx%d -> %dx%d", tt.srcW, tt.srcH, tt.dstW, tt.dstH)
		assert.Equal(t, tt.off, off, "%dx%d -> %dx%d", tt.srcW, tt.srcH, tt.dstW, tt.dstH)
	}
}

func TestLetterboxClearsBorders(t *testing.T) {
	src := gradient(4, 2)
	dst := rgb565.New(4, 4)
	dst.Fill(rgb565.White)
	require.NoError(t, fit.Letterbox(dst, src))

	for x := 0; x < 4; x++ {
		assert.Equal(t, rgb565.Black, dst.PackedAt(x, 0))
		assert.Equal(t, rgb565.Black, dst.PackedAt(x, 3))
		assert.Equal(t, src.PackedAt(x, 0), dst.PackedAt(x, 1))
		assert.Equal(t, src.PackedAt(x, 1), dst.PackedAt(x, 2))
	}
}

func TestLetterboxUpscaleTruncates(t *testing.T) {
	src := rgb565.New(2, 2)
	copy(src.Pix, []rgb565.Color{'a', 'b', 'c', 'd'})
	dst := rgb565.New(4, 4)
	require.NoError(t, fit.Letterbox(dst, src))
	assert.Equal(t, []rgb565.Color{
		'a', 'a', 'b', 'b',
		'a', 'a', 'b', 'b',
		'c', 'c', 'd', 'd',
		'c', 'c', 'd', 'd',
	}, dst.Pix)
}

func TestStretchIdenticalSizeCopies(t *testing.T) {
	src := gradient(5, 3)
	dst := rgb565.New(5, 3)
	require.NoError(t, fit.Stretch(dst, src))
	assert.Equal(t, src.Pix, dst.Pix)
}

func TestStretchRoundsHalfUp(t *testing.T) {
	dst := rgb565.New(2, 1)
	require.NoError(t, fit.Stretch(dst, row('a', 'b', 'c')))
	// 1*3/2 = 1.5 samples index 2
	assert.Equal(t, []rgb565.Color{'a', 'c'}, dst.Pix)

	dst = rgb565.New(3, 1)
	require.NoError(t, fit.Stretch(dst, row('a', 'b')))
	assert.Equal(t, []rgb565.Color{'a', 'b', 'b'}, dst.Pix)

	dst = rgb565.New(1, 4)
	src := rgb565.New(1, 2)
	copy(src.Pix, []rgb565.Color{'a', 'b'})
	require.NoError(t, fit.Stretch(dst, src))
	// 1*2/4 = 0.5 rounds up, 3*2/4 = 1.5 clamps to the last row
	assert.Equal(t, []rgb565.Color{'a', 'b', 'b', 'b'}, dst.Pix)
}

func TestSmartRotation(t *testing.T) {
	assert.Equal(t, transform.Deg90, fit.SmartRotation(320, 240, 240, 320))
	assert.Equal(t, transform.Deg270, fit.SmartRotation(240, 320, 320, 240))
	assert.Equal(t, transform.Deg0, fit.SmartRotation(320, 240, 320, 240))
	assert.Equal(t, transform.Deg0, fit.SmartRotation(100, 100, 240, 320))
	assert.Equal(t, transform.Deg0, fit.SmartRotation(320, 240, 100, 100))
}

func TestSmartLandscapeOnPortrait(t *testing.T) {
	src := gradient(320, 240)
	dst := rgb565.New(240, 320)
	require.NoError(t, fit.Smart(dst, src))
	require.Len(t, dst.Pix, 240*320)

	want, err := transform.Rotate90(src)
	require.NoError(t, err)
	assert.Equal(t, want.Pix, dst.Pix)
}

func TestSmartPortraitOnLandscape(t *testing.T) {
	src := gradient(240, 320)
	dst := rgb565.New(320, 240)
	require.NoError(t, fit.Smart(dst, src))

	want, err := transform.Rotate270(src)
	require.NoError(t, err)
	assert.Equal(t, want.Pix, dst.Pix)
}

func TestSmartWithoutRotationStretches(t *testing.T) {
	src := gradient(6, 4)
	got := rgb565.New(3, 2)
	want := rgb565.New(3, 2)
	require.NoError(t, fit.Smart(got, src))
	require.NoError(t, fit.Stretch(want, src))
	assert.Equal(t, want.Pix, got.Pix)
}

func TestInvalidArguments(t *testing.T) {
	funcs := map[string]func(dst, src *rgb565.Image) error{
		`letterbox`: fit.Letterbox,
		`stretch`:   fit.Stretch,
		`smart`:     fit.Smart,
	}
	short := &rgb565.Image{Pix: make([]rgb565.Color, 3), Width: 2, Height: 2}
	for name, fn := range funcs {
		assert.ErrorIs(t, fn(rgb565.New(2, 2), nil), fit.ErrInvalidArgument, name)
		assert.ErrorIs(t, fn(nil, gradient(2, 2)), fit.ErrInvalidArgument, name)
		assert.ErrorIs(t, fn(rgb565.New(0, 0), gradient(2, 2)), fit.ErrInvalidArgument, name)
		assert.ErrorIs(t, fn(short, gradient(2, 2)), fit.ErrInvalidArgument, name)
		assert.ErrorIs(t, fn(rgb565.New(2, 2), short), fit.ErrInvalidArgument, name)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []fit.Mode{fit.ModeScale, fit.ModeStretch, fit.ModeAuto} {
		got, err := fit.ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := fit.ParseMode(` Stretch `)
	require.NoError(t, err)
	assert.Equal(t, fit.ModeStretch, got)

	_, err = fit.ParseMode(`zoom`)
	assert.ErrorIs(t, err, fit.ErrInvalidArgument)
	assert.Equal(t, `unknown`, fit.Mode(7).String())
}

type solidResizer struct {
	sizes []image.Point
}

func (r *solidResizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	r.sizes = append(r.sizes, size)
	m := rgb565.New(size.X, size.Y)
	m.Fill(rgb565.Red)
	return m, nil
}

func TestFitterUsesResizer(t *testing.T) {
	rsz := &solidResizer{}
	f := fit.Fitter{Mode: fit.ModeScale, Resizer: rsz}
	dst, err := f.New(gradient(320, 240), 240, 320)
	require.NoError(t, err)
	require.Equal(t, []image.Point{image.Pt(240, 180)}, rsz.sizes)
	assert.Equal(t, rgb565.Black, dst.PackedAt(0, 69))
	assert.Equal(t, rgb565.Red, dst.PackedAt(0, 70))
	assert.Equal(t, rgb565.Red, dst.PackedAt(239, 249))
	assert.Equal(t, rgb565.Black, dst.PackedAt(239, 250))

	rsz.sizes = nil
	f.Mode = fit.ModeStretch
	dst, err = f.New(gradient(10, 10), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, []image.Point{image.Pt(4, 3)}, rsz.sizes)
	for _, c := range dst.Pix {
		assert.Equal(t, rgb565.Red, c)
	}

	// smart rotates first, the rotated source already matches
	rsz.sizes = nil
	f.Mode = fit.ModeAuto
	_, err = f.New(gradient(32, 24), 24, 32)
	require.NoError(t, err)
	assert.Empty(t, rsz.sizes)
}

func TestFitterNew(t *testing.T) {
	_, err := fit.Fitter{}.New(gradient(2, 2), 0, 4)
	assert.ErrorIs(t, err, fit.ErrInvalidArgument)

	_, err = fit.Fitter{Mode: fit.Mode(9)}.New(gradient(2, 2), 4, 4)
	assert.ErrorIs(t, err, fit.ErrInvalidArgument)
}
