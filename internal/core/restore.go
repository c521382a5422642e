package core

import (
	"path/filepath"

	"safebak/pkg/fileops"
)

// Restore copies the backup artifact backupPath into targetDir under its
// original name (the backup's file name minus one trailing ".bak") and returns
// the path of the restored file.
//
// targetDir and its missing ancestors are created. The restore fails if the
// backup is a symlink or not a regular file, or if the restored path exists.
func (r *Runner) Restore(backupPath, targetDir string) (string, error) {
	ev := Event{Op: OpRestore, Source: backupPath, Destination: targetDir}
	n, err := restore(&ev)
	ev.Bytes = n
	r.record(ev, err)
	if err != nil {
		return "", err
	}
	return ev.Destination, nil
}

func restore(ev *Event) (int64, error) {
	if err := sanitizePair(ev); err != nil {
		return 0, err
	}
	backupPath, targetDir := ev.Source, ev.Destination

	if err := requireGuardedRegularFile(backupPath, "backup file"); err != nil {
		return 0, err
	}
	if err := fileops.RequireExtension(backupPath, fileops.BackupExtension, "backup file"); err != nil {
		return 0, err
	}

	// Checked separately from the extension guard.
	name, err := fileops.TrimBackupExtension(backupPath)
	if err != nil {
		return 0, err
	}

	if err := fileops.EnsureDirectoryExists(targetDir); err != nil {
		return 0, err
	}

	dest := filepath.Join(targetDir, name)
	ev.Destination = dest
	if err := fileops.RequireAbsent(dest, "restore destination"); err != nil {
		return 0, err
	}

	return fileops.CopyExclusive(backupPath, dest)
}
