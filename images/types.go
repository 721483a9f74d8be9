package images

import (
	"fmt"
	"time"
)

// BetterImagesDir is the reserved export folder name. It is the only
// destination the exporter is allowed to create on its own.
const BetterImagesDir = "better-images"

// Size is the native pixel size of an image
type Size struct {
	Width  int
	Height int
}

// Pixels returns the pixel count
func (s Size) Pixels() int {
	return s.Width * s.Height
}

// Larger reports whether s sorts before o when ordering largest first:
// pixel count, then width, then height.
func (s Size) Larger(o Size) bool {
	if s.Pixels() != o.Pixels() {
		return s.Pixels() > o.Pixels()
	}
	if s.Width != o.Width {
		return s.Width > o.Width
	}
	return s.Height > o.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ImageRecord describes one file the resolution scan identified as an image
type ImageRecord struct {
	Path   string // relative to the scanned directory
	Size   Size
	Format string
	Taken  time.Time // EXIF capture time, zero when unknown
}

// Resolutions holds image records in directory listing order
type Resolutions []ImageRecord

// Paths returns the record paths in scan order
func (r Resolutions) Paths() []string {
	paths := make([]string, len(r))
	for i, rec := range r {
		paths[i] = rec.Path
	}
	return paths
}

// Sizes returns a path to native size mapping
func (r Resolutions) Sizes() map[string]Size {
	sizes := make(map[string]Size, len(r))
	for _, rec := range r {
		sizes[rec.Path] = rec.Size
	}
	return sizes
}

// Lookup finds the record for path
func (r Resolutions) Lookup(path string) (ImageRecord, bool) {
	for _, rec := range r {
		if rec.Path == path {
			return rec, true
		}
	}
	return ImageRecord{}, false
}

// MinDimension returns the smallest width or height across all records.
// This is the default shrink target.
func (r Resolutions) MinDimension() (int, error) {
	if len(r) == 0 {
		return 0, ErrEmptyResult
	}

	min := r[0].Size.Width
	for _, rec := range r {
		if rec.Size.Width < min {
			min = rec.Size.Width
		}
		if rec.Size.Height < min {
			min = rec.Size.Height
		}
	}
	return min, nil
}

// DuplicateGroup is a set of paths judged identical at the shrink resolution,
// ordered largest native size first.
type DuplicateGroup struct {
	Paths []string
}

// Representative returns the member pre-selected for export
func (g DuplicateGroup) Representative() string {
	if len(g.Paths) == 0 {
		return ""
	}
	return g.Paths[0]
}

// Len returns the member count
func (g DuplicateGroup) Len() int {
	return len(g.Paths)
}

// CountMembers sums the members of all groups
func CountMembers(groups []DuplicateGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Len()
	}
	return total
}
