package runlog

import (
	"fmt"
	"time"
)

// Store is a durable, file-backed, keyed record store: one row per source
// file, appended at pipeline completion and updated per field afterwards.
//
// The store is not concurrency-safe: UpdateField is a full read-modify-write
// over the whole file. The pipeline is single-threaded, so no locking is
// applied; a parallel caller must serialize access through a single writer.
type Store interface {
	EnsureInitialized() error
	Append(record Record) error
	UpdateField(key, field, value string) error
}

// Record is one run-log row, keyed by the source file basename.
type Record struct {
	Filename           string
	StartTime          time.Time
	EndTime            time.Time
	Status             string
	TextLength         int
	SummaryLength      int
	NotificationStatus string
}

// Notification status values.
const (
	NotifyNotSent = "not_sent"
	NotifySent    = "sent"
	NotifyFailed  = "failed"
	NotifyError   = "error"
)

// FieldNotFoundError reports an UpdateField call naming a column that does
// not exist in the header. Non-fatal to the caller's pipeline.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in run log header", e.Field)
}
