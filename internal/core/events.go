package core

// Operation names a guarded file operation.
type Operation string

const (
	OpBackup  Operation = "backup"
	OpRestore Operation = "restore"
	OpDelete  Operation = "delete"
)

// Event describes the outcome of one operation call.
//
// Source and Destination hold the sanitized paths once sanitization has
// succeeded, and the raw arguments otherwise. Destination is empty for delete.
type Event struct {
	Op          Operation
	Source      string
	Destination string
	Bytes       int64 // bytes copied; 0 for delete
	Err         error
}

// Succeeded reports whether the operation completed.
func (e Event) Succeeded() bool {
	return e.Err == nil
}

// Recorder receives exactly one Event per operation call. The sink behind it
// is owned by the caller; operations never open or close it.
type Recorder interface {
	Record(Event)
}

// RecorderFunc adapts a plain function to Recorder.
type RecorderFunc func(Event)

// Record calls f(e).
func (f RecorderFunc) Record(e Event) {
	f(e)
}

// Discard drops every event.
var Discard Recorder = RecorderFunc(func(Event) {})
