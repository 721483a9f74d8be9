package images

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_ScanAndMatch(t *testing.T) {
	dir := t.TempDir()
	writeSolid(t, dir, "a.png", 100, 100, red)
	writeSolid(t, dir, "b.png", 200, 200, red)
	writeSolid(t, dir, "c.png", 100, 100, blue)
	writeFile(t, dir, "readme.md", "# nope")

	var buf bytes.Buffer
	s := NewSession(dir, log.New(&buf, "", 0))
	require.NotEmpty(t, s.ID)

	require.NoError(t, s.ScanResolutions(nil))
	assert.Len(t, s.Resolutions, 3)
	assert.Equal(t, 100, s.Shrink)

	require.NoError(t, s.FindDuplicates(nil))
	require.Len(t, s.Groups, 1)
	assert.Equal(t, []string{"b.png", "a.png"}, s.Groups[0].Paths)

	// representatives are pre-selected
	assert.Equal(t, []string{"b.png"}, s.Selection.Paths())

	assert.Contains(t, buf.String(), s.ID)
	assert.Contains(t, buf.String(), "found 1 groups")
}

func TestSession_ScanResolutionsFailureKeepsState(t *testing.T) {
	dir := t.TempDir()
	writeSolid(t, dir, "a.png", 20, 20, red)

	s := NewSession(dir, nil)
	require.NoError(t, s.ScanResolutions(nil))

	s.Dir = filepath.Join(dir, "missing")
	err := s.ScanResolutions(nil)

	var pathErr *PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Len(t, s.Resolutions, 1, "failed scan must not replace earlier records")
	assert.Equal(t, 20, s.Shrink)
}

func TestSession_NoImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "text")

	s := NewSession(dir, nil)
	assert.ErrorIs(t, s.ScanResolutions(nil), ErrEmptyResult)
	assert.ErrorIs(t, s.FindDuplicates(nil), ErrEmptyResult)
}

func TestSession_SetShrink(t *testing.T) {
	s := &Session{Resolutions: Resolutions{
		{Path: "a", Size: Size{Width: 64, Height: 48}},
		{Path: "b", Size: Size{Width: 80, Height: 90}},
	}}

	require.NoError(t, s.SetShrink(16))
	assert.Equal(t, 16, s.Shrink)

	require.NoError(t, s.SetShrink(0))
	assert.Equal(t, 48, s.Shrink, "zero falls back to the smallest dimension")

	assert.ErrorIs(t, s.SetShrink(-1), ErrInvalidShrink)
	assert.Equal(t, 48, s.Shrink)
}

func TestSession_FindDuplicatesUsesOverride(t *testing.T) {
	dir := t.TempDir()
	writeSolid(t, dir, "wide.png", 200, 100, red)
	writeSolid(t, dir, "square.png", 100, 100, red)

	s := NewSession(dir, nil)
	require.NoError(t, s.ScanResolutions(nil))
	require.NoError(t, s.SetShrink(1))

	// at 1x1 both thumbnails are a single red pixel
	require.NoError(t, s.FindDuplicates(nil))
	require.Len(t, s.Groups, 1)
	assert.Equal(t, []string{"wide.png", "square.png"}, s.Groups[0].Paths)
}

func TestSession_ToggleSelection(t *testing.T) {
	s := Session{Selection: NewSelection("a.png")}

	next := s.ToggleSelection("b.png")
	assert.Equal(t, []string{"a.png", "b.png"}, next.Selection.Paths())
	assert.Equal(t, []string{"a.png"}, s.Selection.Paths(), "original session is unchanged")

	next = next.ToggleSelection("a.png")
	assert.Equal(t, []string{"b.png"}, next.Selection.Paths())
}

func TestSelection(t *testing.T) {
	var empty Selection
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Contains("x"))
	assert.Empty(t, empty.Paths())

	sel := empty.Toggle("x")
	assert.True(t, sel.Contains("x"))
	assert.False(t, empty.Contains("x"))

	sel = sel.With(true, "y", "z", "x")
	assert.Equal(t, []string{"x", "y", "z"}, sel.Paths())

	sel = sel.With(false, "y", "missing")
	assert.Equal(t, []string{"x", "z"}, sel.Paths())
	assert.Equal(t, 2, sel.Len())
}
