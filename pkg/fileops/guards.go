package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BackupExtension is the extension, without the dot, that marks a backup artifact.
const BackupExtension = "bak"

// The Require* guards below operate on sanitized paths. subject names the
// argument in error messages ("source", "backup file", ...) so the caller can
// tell which guard was violated and on which argument.

// RequireNotSymlink fails with KindWrongFileType wrapping ErrSymlink when md
// describes a symbolic link. Run it before RequireRegularFile so a link that
// points at a regular file is refused rather than resolved.
func RequireNotSymlink(md Metadata, subject string) error {
	if md.Kind == FileSymlink {
		return NewError(KindWrongFileType, md.Path, fmt.Sprintf("refusing to use symlink as %s", subject), ErrSymlink)
	}
	return nil
}

// RequireRegularFile fails unless md describes a regular file.
//
// Inspect already fails for a missing path, so the FileMissing case only
// applies to callers that build Metadata themselves; it reports KindNotFound.
func RequireRegularFile(md Metadata, subject string) error {
	switch md.Kind {
	case FileRegular:
		return nil
	case FileMissing:
		return NewError(KindNotFound, md.Path, fmt.Sprintf("%s does not exist", subject), fs.ErrNotExist)
	case FileSymlink:
		return NewError(KindWrongFileType, md.Path, fmt.Sprintf("%s is not a regular file (%s)", subject, md.Kind), ErrSymlink)
	default:
		return NewError(KindWrongFileType, md.Path, fmt.Sprintf("%s is not a regular file (%s)", subject, md.Kind), nil)
	}
}

// Extension returns the final extension of path without the leading dot.
// A name whose only dot is its first character (".bak") has no extension.
func Extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}

// RequireExtension fails with KindExtensionMismatch unless the extension of
// path equals ext exactly. The comparison is case-sensitive.
func RequireExtension(path, ext, subject string) error {
	if Extension(path) != ext {
		return NewError(KindExtensionMismatch, path, fmt.Sprintf("%s must have a .%s extension", subject, ext), nil)
	}
	return nil
}

// RequireAbsent fails with KindAlreadyExists when anything, including a
// dangling symlink, exists at path.
//
// This check is advisory: the authoritative check is the exclusive create in
// CopyExclusive, which fails atomically if the path appears after this call.
func RequireAbsent(path, subject string) error {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return NewError(KindAlreadyExists, path, fmt.Sprintf("%s already exists", subject), fs.ErrExist)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return NewError(KindNotFound, path, fmt.Sprintf("cannot read metadata of %s", subject), err)
	}
}

// TrimBackupExtension removes exactly one trailing ".bak" from the final
// component of path and returns the remaining file name.
func TrimBackupExtension(path string) (string, error) {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "", NewError(KindExtensionMismatch, path, "backup path has no file name", nil)
	}

	name, ok := strings.CutSuffix(base, "."+BackupExtension)
	if !ok {
		return "", NewError(KindExtensionMismatch, path, fmt.Sprintf("backup file name does not end in .%s", BackupExtension), nil)
	}
	if name == "" {
		return "", NewError(KindExtensionMismatch, path, "backup file name has nothing before the extension", nil)
	}

	return name, nil
}
