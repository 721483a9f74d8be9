package images

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}

	blackNRGBA = color.NRGBA{A: 255}
	whiteNRGBA = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// writeSolid saves a single colour PNG under dir and returns its name
func writeSolid(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	img := imaging.New(w, h, c)
	require.NoError(t, imaging.Save(img, filepath.Join(dir, name)))
	return name
}

// writeFile writes raw bytes under dir
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return name
}

// grayRow builds a one pixel tall gray image from luminance values
func grayRow(values ...uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, len(values), 1))
	copy(img.Pix, values)
	return img
}

// grayBlock builds a gray image w pixels wide from row-major luminance values
func grayBlock(w int, values ...uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, len(values)/w))
	copy(img.Pix, values)
	return img
}

// gradient builds an image with varying content so resampling is exercised
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

// mapOpener serves in-memory images, unknown paths fail to decode
type mapOpener map[string]image.Image

func (m mapOpener) Open(path string) (image.Image, error) {
	img, ok := m[path]
	if !ok {
		return nil, errors.New("image: unknown format")
	}
	return img, nil
}

func sizesOf(m mapOpener) map[string]Size {
	sizes := make(map[string]Size, len(m))
	for path, img := range m {
		sizes[path] = Size{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
	}
	return sizes
}

type recordingSink struct {
	begins   map[Phase]int
	advanced map[Phase]int
	details  []string
	groups   []DuplicateGroup
	ended    []Phase
	current  Phase
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		begins:   make(map[Phase]int),
		advanced: make(map[Phase]int),
	}
}

func (r *recordingSink) Begin(phase Phase, total int) {
	r.begins[phase] = total
	r.current = phase
}

func (r *recordingSink) Advance(n int, detail string) {
	r.advanced[r.current] += n
	r.details = append(r.details, detail)
}

func (r *recordingSink) GroupFound(group DuplicateGroup) {
	r.groups = append(r.groups, group)
}

func (r *recordingSink) End(phase Phase) {
	r.ended = append(r.ended, phase)
}
