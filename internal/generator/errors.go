package generator

import (
	"fmt"
	"strings"
)

// UnknownFileTypeError reports a requested file type absent from the merged
// structure. Known carries the configured types for suggestion.
type UnknownFileTypeError struct {
	FileType string
	Known    []string
}

func (e *UnknownFileTypeError) Error() string {
	return fmt.Sprintf("file type %q not found in configuration\navailable types: %s",
		e.FileType, strings.Join(e.Known, ", "))
}

// ConflictError reports that a target path already exists. Overwriting
// requires caller-level confirmation outside this component.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("file already exists: %s", e.Path)
}

// WriteError reports an environment-level failure writing one file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// BatchWriteError reports a partial batch failure: files written before the
// failure stay in place, and both subsets are identified. Rollback policy
// belongs to the caller.
type BatchWriteError struct {
	Written []string
	Failed  string
	Err     error
}

func (e *BatchWriteError) Error() string {
	msg := fmt.Sprintf("failed to write %s: %v", e.Failed, e.Err)
	if len(e.Written) > 0 {
		msg += fmt.Sprintf("\nalready written (left in place):\n  %s", strings.Join(e.Written, "\n  "))
	}
	return msg
}

func (e *BatchWriteError) Unwrap() error { return e.Err }
