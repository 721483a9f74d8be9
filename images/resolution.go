package images

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	// Register decoders beyond the ones imaging pulls in. Any file is
	// attempted, the registry decides what is an image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type logFunc func(format string, v ...any)

func discardLog(string, ...any) {}

// ScanResolutions lists the direct children of dir and records the native size
// of every file that can be identified as an image. Files that are not images
// are skipped. The result keeps directory listing order.
func ScanResolutions(dir string, sink ProgressSink) (Resolutions, error) {
	return scanResolutions(dir, sink, discardLog)
}

func scanResolutions(dir string, sink ProgressSink, logf logFunc) (Resolutions, error) {
	sink = sinkOrNop(sink)

	fi, err := os.Stat(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}
	if !fi.IsDir() {
		return nil, &PathError{Path: dir, Err: fmt.Errorf("not a directory")}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}

	sink.Begin(PhaseResolutions, len(entries))
	defer sink.End(PhaseResolutions)

	records := Resolutions{}
	for _, entry := range entries {
		name := entry.Name()
		rec, ok := identify(filepath.Join(dir, name), logf)
		sink.Advance(1, name)
		if !ok {
			continue
		}
		rec.Path = name
		records = append(records, rec)
	}

	return records, nil
}

// identify reads only the image header, like a lazy open would
func identify(path string, logf logFunc) (ImageRecord, bool) {
	// Stat follows symlinks, so linked files count and dangling links don't
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return ImageRecord{}, false
	}

	f, err := os.Open(path)
	if err != nil {
		logf("skipping %s: %v", path, err)
		return ImageRecord{}, false
	}
	defer func() { _ = f.Close() }()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		logf("skipping %s: %v", path, err)
		return ImageRecord{}, false
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		logf("skipping %s: empty image", path)
		return ImageRecord{}, false
	}

	return ImageRecord{
		Size:   Size{Width: cfg.Width, Height: cfg.Height},
		Format: format,
		Taken:  captureTime(f),
	}, true
}

// captureTime returns the EXIF DateTime of an already opened file, or zero
func captureTime(f *os.File) (taken time.Time) {
	// goexif can panic on malformed TIFF structures
	defer func() {
		if recover() != nil {
			taken = time.Time{}
		}
	}()

	if _, err := f.Seek(0, 0); err != nil {
		return time.Time{}
	}
	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}
	}
	taken, err = x.DateTime()
	if err != nil {
		return time.Time{}
	}
	return taken
}
