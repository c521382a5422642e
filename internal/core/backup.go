package core

import (
	"path/filepath"

	"safebak/pkg/fileops"
)

// Backup copies the regular file source to a new file at destination, which
// must carry the .bak extension and must not exist yet.
//
// Missing parent directories of destination are created. Symlink sources are
// refused the same way delete and restore refuse them.
func (r *Runner) Backup(source, destination string) error {
	ev := Event{Op: OpBackup, Source: source, Destination: destination}
	n, err := backup(&ev)
	ev.Bytes = n
	r.record(ev, err)
	return err
}

func backup(ev *Event) (int64, error) {
	if err := sanitizePair(ev); err != nil {
		return 0, err
	}
	src, dest := ev.Source, ev.Destination

	if err := requireGuardedRegularFile(src, "backup source"); err != nil {
		return 0, err
	}
	if err := fileops.RequireExtension(dest, fileops.BackupExtension, "backup destination"); err != nil {
		return 0, err
	}
	if err := fileops.EnsureDirectoryExists(filepath.Dir(dest)); err != nil {
		return 0, err
	}
	if err := fileops.RequireAbsent(dest, "backup destination"); err != nil {
		return 0, err
	}

	return fileops.CopyExclusive(src, dest)
}
