package service

import "fmt"

// IngestionFailedError reports a failed folder creation or attachment
// write during paste/drop handling. It aborts the remaining payloads of
// the event; items already inserted stay in place.
type IngestionFailedError struct {
	Document string
	Path     string
	Err      error
}

func (e *IngestionFailedError) Error() string {
	return fmt.Sprintf("ingest attachment %s for %s: %v", e.Path, e.Document, e.Err)
}

func (e *IngestionFailedError) Unwrap() error {
	return e.Err
}

// RenameSyncError reports a failed rename of a single attachment file.
// Failures are isolated per file so one bad file does not block siblings.
type RenameSyncError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *RenameSyncError) Error() string {
	return fmt.Sprintf("rename attachment %s to %s: %v", e.OldPath, e.NewPath, e.Err)
}

func (e *RenameSyncError) Unwrap() error {
	return e.Err
}
