package images

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestThumbnail_Sizes(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		bound  int
		expect image.Point
	}{
		{"Landscape downscale", 200, 100, 50, image.Pt(50, 25)},
		{"Portrait downscale", 100, 200, 50, image.Pt(25, 50)},
		{"Square downscale", 200, 200, 50, image.Pt(50, 50)},
		{"Smaller than bound", 10, 20, 50, image.Pt(10, 20)},
		{"Exactly the bound", 50, 50, 50, image.Pt(50, 50)},
		{"One side over bound", 60, 30, 50, image.Pt(50, 25)},
		{"Down to one pixel", 300, 300, 1, image.Pt(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thumb := Thumbnail(gradient(tt.w, tt.h), tt.bound)
			assert.Equal(t, tt.expect, thumb.Bounds().Size())
		})
	}
}

func TestThumbnail_NoOpWithinBound(t *testing.T) {
	src := gradient(40, 30)

	thumb := Thumbnail(src, 40)
	assert.Equal(t, src.Bounds().Size(), thumb.Bounds().Size())
	assert.Equal(t, src.Pix, thumb.Pix, "thumbnail within bound must not resample")
}

func TestThumbnail_Idempotent(t *testing.T) {
	for _, bound := range []int{1, 7, 32, 500} {
		once := Thumbnail(gradient(120, 80), bound)
		twice := Thumbnail(once, bound)

		assert.Equal(t, once.Bounds().Size(), twice.Bounds().Size(), "bound %d", bound)
		assert.Equal(t, once.Pix, twice.Pix, "bound %d", bound)
	}
}

func TestLuminanceDiff(t *testing.T) {
	a := grayRow(10, 30, 200, 0)
	b := grayRow(30, 10, 200, 255)

	diff := LuminanceDiff(a, b)
	assert.Equal(t, []uint8{20, 20, 0, 255}, diff.Pix)

	// absolute difference is symmetric
	assert.Equal(t, diff.Pix, LuminanceDiff(b, a).Pix)
}

func TestIdentical(t *testing.T) {
	sparse := imaging.New(50, 50, blackNRGBA)
	sparse.Set(25, 25, whiteNRGBA)

	tests := []struct {
		name string
		a, b image.Image
		want bool
	}{
		{"Same content", gradient(20, 20), gradient(20, 20), true},
		{"Different sizes", gradient(20, 20), gradient(20, 21), false},
		{"Different colours", imaging.New(8, 8, red), imaging.New(8, 8, blue), false},
		{"Single differing pixel averages out", imaging.New(50, 50, blackNRGBA), sparse, true},
		{"Mean difference rounds up", grayRow(0, 0), grayRow(3, 0), false},
		{"Mean difference rounds down", grayRow(0, 0, 0, 0), grayRow(1, 0, 0, 0), true},
		// rows are averaged first and rounded, then the column: 0.5 -> 1 -> 0.5 -> 1
		{"Rounding happens per axis", grayBlock(2, 0, 0, 0, 0), grayBlock(2, 1, 0, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identical(tt.a, tt.b))
		})
	}
}
