//go:build linux || darwin || freebsd || netbsd || openbsd

package images

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// checkWritable asks the kernel whether dir is writable for this process
func checkWritable(dir string) error {
	return unix.Access(dir, unix.W_OK)
}

func accessTime(fi os.FileInfo) time.Time {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return fi.ModTime()
	}
	return statAtime(st)
}
