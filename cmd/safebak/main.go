// Package main is the entry point for the safebak CLI application.
//
// safebak performs guarded single-file operations:
//
//	safebak backup <SRC> <DEST>           copy SRC to a new DEST ending in .bak
//	safebak restore <BACKUP> <TARGET_DIR> copy BACKUP to TARGET_DIR/<name without .bak>
//	safebak delete <FILE>                 remove a regular file
//
// Each invocation loads configuration, opens the append-only log sink once,
// runs one subcommand and exits non-zero on any failure after printing the
// violated guard to stderr.
package main

import (
	"os"

	"safebak/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
