package core

import "safebak/pkg/fileops"

// Delete removes the regular file at path. Symlinks are refused before the
// regular-file check, so a link to a regular file is never resolved and its
// target is never removed.
func (r *Runner) Delete(path string) error {
	ev := Event{Op: OpDelete, Source: path}
	err := remove(&ev)
	r.record(ev, err)
	return err
}

func remove(ev *Event) error {
	path, err := fileops.Sanitize(ev.Source)
	if err != nil {
		return err
	}
	ev.Source = path

	if err := requireGuardedRegularFile(path, "file to delete"); err != nil {
		return err
	}

	return fileops.RemoveFile(path)
}
