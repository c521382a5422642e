package fileops

import (
	"errors"
	"io/fs"
	"os"
)

// FileKind classifies a directory entry without following a final symlink.
type FileKind int

const (
	// FileMissing indicates nothing exists at the path.
	FileMissing FileKind = iota
	// FileRegular indicates a regular file.
	FileRegular
	// FileSymlink indicates a symbolic link, whatever it points to.
	FileSymlink
	// FileDirectory indicates a directory.
	FileDirectory
	// FileOther indicates a device, socket, named pipe or similar.
	FileOther
)

// String returns a human-readable description of the file kind
func (k FileKind) String() string {
	switch k {
	case FileMissing:
		return "non-existent"
	case FileRegular:
		return "regular file"
	case FileSymlink:
		return "symbolic link"
	case FileDirectory:
		return "directory"
	case FileOther:
		return "special file"
	default:
		return "unknown"
	}
}

// Metadata is the symlink-aware description of a sanitized path.
type Metadata struct {
	Path string
	Kind FileKind
	Mode fs.FileMode
	Size int64
}

// classify maps a file mode onto a FileKind.
func classify(mode fs.FileMode) FileKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return FileSymlink
	case mode.IsRegular():
		return FileRegular
	case mode.IsDir():
		return FileDirectory
	default:
		return FileOther
	}
}

// Inspect reads metadata for path with os.Lstat, so a symlink is reported as
// FileSymlink rather than as the type of its target.
//
// A missing path returns an error of kind KindNotFound wrapping fs.ErrNotExist;
// any other Lstat failure is also reported as KindNotFound since the entry
// cannot be classified.
func Inspect(path string) (Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Metadata{Path: path, Kind: FileMissing}, NewError(KindNotFound, path, "path does not exist", err)
		}
		return Metadata{Path: path, Kind: FileMissing}, NewError(KindNotFound, path, "cannot read metadata", err)
	}

	return Metadata{
		Path: path,
		Kind: classify(info.Mode()),
		Mode: info.Mode(),
		Size: info.Size(),
	}, nil
}

// IsSymlink checks if a given path is a symbolic link.
// This function uses lstat to examine the file without following symlinks.
func IsSymlink(path string) (bool, error) {
	md, err := Inspect(path)
	if err != nil {
		return false, err
	}
	return md.Kind == FileSymlink, nil
}
