package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

const (
	copyBufferSize = 32 * 1024 // 32KB buffer for file copies
	dirPermissions = 0o755
)

// CopyExclusive streams the contents of srcPath into a new file at destPath
// and returns the number of bytes copied.
//
// The operation:
//  1. Opens the source without following a final symlink (where the platform allows)
//  2. Re-checks the opened descriptor is a regular file
//  3. Creates the destination with O_CREATE|O_EXCL, inheriting the source permission bits
//  4. Copies all data, then syncs and closes the destination
//
// Parameters:
//   - srcPath: Sanitized path of the file to read
//   - destPath: Sanitized path of the file to create
//
// Returns:
//   - int64: Bytes written to the destination
//   - error: *Error of kind KindAlreadyExists if destPath exists at create time,
//     KindWrongFileType if the source is (or became) a symlink or non-regular file,
//     KindNotFound if the source vanished, KindIO otherwise
//
// If copying fails after the destination was created, the partially written
// file is left in place; the returned error names it.
//
// Usage example:
//
//	n, err := fileops.CopyExclusive("/data/report.txt", "/data/report.txt.bak")
//	if fileops.IsKind(err, fileops.KindAlreadyExists) {
//	    return fmt.Errorf("backup already present: %w", err)
//	}
func CopyExclusive(srcPath, destPath string) (int64, error) {
	srcFile, err := openNoFollow(srcPath)
	if err != nil {
		return 0, classifyOpenError(srcPath, err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return 0, NewError(KindIO, srcPath, "failed to stat opened source file", err)
	}
	if !info.Mode().IsRegular() {
		return 0, NewError(KindWrongFileType, srcPath, "source is not a regular file ("+classify(info.Mode()).String()+")", nil)
	}

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, NewError(KindAlreadyExists, destPath, "destination already exists", err)
		}
		return 0, NewError(KindIO, destPath, "failed to create destination file", err)
	}

	buf := make([]byte, copyBufferSize)
	n, err := io.CopyBuffer(destFile, srcFile, buf)
	if err != nil {
		destFile.Close()
		return n, NewError(KindIO, destPath, "failed to copy file contents", err)
	}

	if err := destFile.Sync(); err != nil {
		destFile.Close()
		return n, NewError(KindIO, destPath, "failed to sync destination file", err)
	}

	if err := destFile.Close(); err != nil {
		return n, NewError(KindIO, destPath, "failed to close destination file", err)
	}

	return n, nil
}

// classifyOpenError maps a failure to open the source onto an error kind.
func classifyOpenError(path string, err error) error {
	switch {
	case isSymlinkLoop(err):
		return NewError(KindWrongFileType, path, "refusing to open symlink as source", fmt.Errorf("%w: %w", ErrSymlink, err))
	case errors.Is(err, fs.ErrNotExist):
		return NewError(KindNotFound, path, "source file does not exist", err)
	default:
		return NewError(KindIO, path, "failed to open source file", err)
	}
}

// EnsureDirectoryExists creates a directory and all necessary parent directories.
// This is equivalent to `mkdir -p` and is safe to call multiple times.
//
// The function sets directory permissions to 0755 (readable and executable by all,
// writable by owner only). Failures, including an existing non-directory at
// path, are reported as KindIO.
func EnsureDirectoryExists(path string) error {
	if err := os.MkdirAll(path, dirPermissions); err != nil {
		return NewError(KindIO, path, "failed to create directory", err)
	}
	return nil
}

// RemoveFile removes the entry at path. Callers guard the path first; this
// only classifies the failure.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewError(KindNotFound, path, "file disappeared before removal", err)
		}
		return NewError(KindIO, path, "failed to remove file", err)
	}
	return nil
}
