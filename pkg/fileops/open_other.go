//go:build !unix

package fileops

import "os"

// openNoFollow falls back to a plain open. The Lstat-based guards that run
// before it are the only symlink defense on these platforms.
func openNoFollow(path string) (*os.File, error) {
	return os.Open(path)
}

func isSymlinkLoop(error) bool {
	return false
}
