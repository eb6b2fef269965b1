package jsonstore

import "fmt"

// CorruptDataError reports a data file that exists but cannot be
// parsed as a JSON array of tasks. The process should abort rather
// than overwrite the file.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data file %s: %s", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// NotFoundError reports an operation on a task ID that does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no todo found with ID %d", e.ID)
}

// ValidationError reports input rejected before any file write.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
