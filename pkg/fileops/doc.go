// Package fileops provides guarded single-file operations with defense-in-depth validation.
//
// The package is built from small pieces that callers compose in a fixed order:
//
// 1. **Sanitize**: Sanitize() - absolute, lexically cleaned path; ".." tricks resolved
// 2. **Inspect**: Inspect() - symlink-aware metadata (os.Lstat, the final link is not followed)
// 3. **Guards**: RequireNotSymlink(), RequireRegularFile(), RequireExtension(), RequireAbsent()
// 4. **Act**: CopyExclusive(), RemoveFile(), EnsureDirectoryExists()
//
// RequireNotSymlink must run before RequireRegularFile so that a link pointing at
// a regular file is refused instead of being treated as that file.
//
// # Example: Guarded Copy
//
//	src, err := fileops.Sanitize(rawSrc)
//	if err != nil {
//	    return err
//	}
//	md, err := fileops.Inspect(src)
//	if err != nil {
//	    return err
//	}
//	if err := fileops.RequireNotSymlink(md, "source"); err != nil {
//	    return err
//	}
//	if err := fileops.RequireRegularFile(md, "source"); err != nil {
//	    return err
//	}
//	if _, err := fileops.CopyExclusive(src, dest); err != nil {
//	    return err
//	}
//
// # Races
//
// RequireAbsent is a fast-path check. The destination is always created with
// O_EXCL, so a file that appears between the check and the create makes
// CopyExclusive fail with KindAlreadyExists instead of being overwritten. On
// unix the source is opened with O_NOFOLLOW and re-checked after opening.
//
// # Errors
//
// Every failure is an *Error carrying a Kind. Use KindOf or IsKind to branch on
// the failure class and errors.Is(err, ErrSymlink) to detect symlink refusals.
//
// Sanitize does not confine paths to a root directory. Callers that need
// containment must compare the sanitized path with their own root.
package fileops
