package images

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Opener decodes the image stored under path
type Opener interface {
	Open(path string) (image.Image, error)
}

// DirOpener opens paths relative to Dir
type DirOpener struct {
	Dir string
}

// Open decodes Dir/path with imaging
func (o DirOpener) Open(path string) (image.Image, error) {
	return imaging.Open(filepath.Join(o.Dir, path))
}

// Thumbnail scales img down to fit within a bound x bound box, keeping the
// aspect ratio. Images already within the box are returned unscaled.
func Thumbnail(img image.Image, bound int) *image.NRGBA {
	return imaging.Fit(img, bound, bound, imaging.Lanczos)
}

// LuminanceDiff returns the absolute per-pixel luminance difference of two
// equally sized images. Only the overlapping area is compared.
func LuminanceDiff(a, b image.Image) *image.Gray {
	ga := imaging.Grayscale(a)
	gb := imaging.Grayscale(b)

	w := min(ga.Rect.Dx(), gb.Rect.Dx())
	h := min(ga.Rect.Dy(), gb.Rect.Dy())
	diff := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		rowA := ga.Pix[y*ga.Stride:]
		rowB := gb.Pix[y*gb.Stride:]
		for x := 0; x < w; x++ {
			// Grayscale leaves r == g == b, the red channel is the luminance
			la := int(rowA[x*4])
			lb := int(rowB[x*4])
			d := la - lb
			if d < 0 {
				d = -d
			}
			diff.Pix[y*diff.Stride+x] = uint8(d)
		}
	}

	return diff
}

// Identical reports whether two thumbnails are duplicates. Sizes must match;
// the luminance difference is then box-filtered down to a single pixel which
// must be exactly zero. The filter rounds after the horizontal and again after
// the vertical pass, so small scattered differences usually vanish but a
// half-level row average rounds up. This is a coarse equality test.
func Identical(a, b image.Image) bool {
	if a.Bounds().Size() != b.Bounds().Size() {
		return false
	}
	if a.Bounds().Empty() {
		return true
	}

	reduced := imaging.Fit(LuminanceDiff(a, b), 1, 1, imaging.Box)
	return reduced.Pix[0] == 0
}
