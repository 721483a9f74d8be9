package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportResult lists what an export wrote
type ExportResult struct {
	Dir    string
	Copied []string
}

// ResolveExportDir returns where an export from srcDir into dstDir will land.
// An empty destination, or one equal to the source, means the reserved
// better-images folder inside the source.
func ResolveExportDir(srcDir, dstDir string) string {
	if dstDir == "" || sameDir(srcDir, dstDir) {
		return filepath.Join(srcDir, BetterImagesDir)
	}
	return filepath.Clean(dstDir)
}

// sameDir reports whether a and b name the same directory, following
// symlinks and relative paths. Paths that cannot be stat'ed fall back to a
// lexical comparison.
func sameDir(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// Export copies every selected path from srcDir into dstDir, keeping file
// mode and timestamps. The destination is created only when it is missing and
// named better-images. Files copied before a failure are left in place.
func Export(sel Selection, srcDir, dstDir string, sink ProgressSink) (ExportResult, error) {
	sink = sinkOrNop(sink)
	res := ExportResult{Dir: ResolveExportDir(srcDir, dstDir)}

	if err := prepareExportDir(res.Dir); err != nil {
		return res, err
	}

	paths := sel.Paths()
	sink.Begin(PhaseExport, len(paths))
	defer sink.End(PhaseExport)

	for _, path := range paths {
		dst := filepath.Join(res.Dir, filepath.Base(path))
		if err := copyFile(filepath.Join(srcDir, path), dst); err != nil {
			return res, &ExportAccessError{Path: dst, Err: err}
		}
		res.Copied = append(res.Copied, path)
		sink.Advance(1, path)
	}

	return res, nil
}

func prepareExportDir(dir string) error {
	fi, err := os.Stat(dir)
	switch {
	case err == nil:
		if !fi.IsDir() {
			return &ExportAccessError{Path: dir, Err: errors.New("not a directory")}
		}
		if err := checkWritable(dir); err != nil {
			return &ExportAccessError{Path: dir, Err: err}
		}
		return nil

	case errors.Is(err, os.ErrNotExist):
		if filepath.Base(dir) != BetterImagesDir {
			return &ExportAccessError{Path: dir, Err: err}
		}
		if err := checkWritable(filepath.Dir(dir)); err != nil {
			return &ExportAccessError{Path: dir, Err: err}
		}
		if err := os.Mkdir(dir, 0755); err != nil {
			return &ExportAccessError{Path: dir, Err: err}
		}
		return nil

	default:
		return &ExportAccessError{Path: dir, Err: err}
	}
}

// copyFile copies src to dst and carries over mode and timestamps
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	// opening dst truncates it, which would empty the source
	if di, err := os.Stat(dst); err == nil && os.SameFile(fi, di) {
		return fmt.Errorf("%s and %s are the same file", src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy data: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, accessTime(fi), fi.ModTime())
}
