// Package core implements the guarded backup, restore and delete operations.
//
// Every operation follows the same shape:
//
//	Sanitize -> Validate (guards in a fixed order) -> Act (copy or remove) -> Record
//
// A failure at any step ends the call with that error; nothing is retried and
// nothing is rolled back. The only partial state an operation can leave behind
// is a destination file whose copy failed midway, which is reported in the
// returned error and the recorded event.
//
// Operations are synchronous and keep no state between calls, so a Runner can
// be shared freely.
package core

import "safebak/pkg/fileops"

// Runner executes guarded operations and reports each outcome to a Recorder.
type Runner struct {
	recorder Recorder
}

// NewRunner creates a Runner. A nil recorder discards events.
func NewRunner(recorder Recorder) *Runner {
	if recorder == nil {
		recorder = Discard
	}
	return &Runner{recorder: recorder}
}

// record finalizes ev with err and hands it to the recorder.
func (r *Runner) record(ev Event, err error) {
	ev.Err = err
	r.recorder.Record(ev)
}

// sanitizePair sanitizes both arguments of a two-path operation, replacing
// them in ev as they resolve.
func sanitizePair(ev *Event) error {
	src, err := fileops.Sanitize(ev.Source)
	if err != nil {
		return err
	}
	ev.Source = src

	dest, err := fileops.Sanitize(ev.Destination)
	if err != nil {
		return err
	}
	ev.Destination = dest
	return nil
}

// requireGuardedRegularFile inspects path and applies NotSymlink then RegularFile.
func requireGuardedRegularFile(path, subject string) error {
	md, err := fileops.Inspect(path)
	if err != nil {
		return err
	}
	if err := fileops.RequireNotSymlink(md, subject); err != nil {
		return err
	}
	return fileops.RequireRegularFile(md, subject)
}
