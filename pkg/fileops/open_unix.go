//go:build unix

package fileops

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// openNoFollow opens path read-only and fails with ELOOP if the final
// component is a symbolic link. O_NONBLOCK keeps a FIFO swapped in for the
// source from blocking the open; the caller's fstat check then rejects it.
func openNoFollow(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|unix.O_NOFOLLOW|unix.O_NONBLOCK, 0)
}

func isSymlinkLoop(err error) bool {
	return errors.Is(err, unix.ELOOP)
}
