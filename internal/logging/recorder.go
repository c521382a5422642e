package logging

import (
	"safebak/internal/core"
	"safebak/pkg/fileops"
)

// EventRecorder writes one structured log line per operation outcome.
type EventRecorder struct {
	logger *AppLogger
}

// NewEventRecorder returns a core.Recorder backed by logger. A nil logger
// uses the process default.
func NewEventRecorder(logger *AppLogger) *EventRecorder {
	if logger == nil {
		logger = GetDefault()
	}
	return &EventRecorder{logger: logger}
}

var _ core.Recorder = (*EventRecorder)(nil)

// Record logs a success at info level and a failure at error level.
func (r *EventRecorder) Record(e core.Event) {
	keyvals := []interface{}{"op", string(e.Op), "source", e.Source}
	if e.Destination != "" {
		keyvals = append(keyvals, "destination", e.Destination)
	}

	if e.Succeeded() {
		if e.Op != core.OpDelete {
			keyvals = append(keyvals, "bytes", e.Bytes)
		}
		r.logger.Info(successMessage(e.Op), keyvals...)
		return
	}

	keyvals = append(keyvals, "kind", fileops.KindOf(e.Err).String(), "error", e.Err)
	r.logger.Error("Operation failed", keyvals...)
}

func successMessage(op core.Operation) string {
	switch op {
	case core.OpBackup:
		return "Backup completed"
	case core.OpRestore:
		return "Restore completed"
	case core.OpDelete:
		return "Deleted file"
	default:
		return "Operation completed"
	}
}
