//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package images

import (
	"os"
	"time"
)

// checkWritable probes dir by creating and removing a temp file
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".dupefinder-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func accessTime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
