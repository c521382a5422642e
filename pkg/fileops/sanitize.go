package fileops

import (
	"os"
	"path/filepath"
)

// getwd is swapped in tests to simulate a deleted working directory.
var getwd = os.Getwd

// Sanitize turns a caller-supplied path into an absolute, lexically cleaned path.
//
// "." and ".." segments are collapsed syntactically with filepath.Clean; the
// filesystem is never consulted and symlinks are never resolved, so a later
// Lstat still sees the entry the caller named. Relative paths are anchored to
// the current working directory.
//
// The result contains no "." or ".." segments, but it is not confined to any
// root: "a/../../etc/passwd" becomes the absolute path of etc/passwd one level
// above the working directory. Callers that need containment must check the
// result against their own root.
//
// Returns an error of kind KindPathResolution only when the working directory
// cannot be determined. Any string, including "", is accepted as a literal path.
//
// Usage example:
//
//	abs, err := fileops.Sanitize("notes/../report.txt")
//	if err != nil {
//	    return err
//	}
func Sanitize(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if filepath.IsAbs(cleaned) {
		return cleaned, nil
	}

	cwd, err := getwd()
	if err != nil {
		return "", NewError(KindPathResolution, path, "cannot determine current working directory", err)
	}

	// Join cleans again, removing any ".." that now meets the cwd prefix.
	return filepath.Join(cwd, cleaned), nil
}
