package ljmcheck

import (
	"errors"
	"fmt"
)

// Stages of a run, used to annotate fatal errors.
const (
	StageConfig     = "config"
	StageIgnoreList = "ignore list"
	StageHeader     = "header"
	StageManifest   = "manifest"
)

// Error is a fatal run error. It wraps the underlying error with the stage
// and input path it came from.
type Error struct {
	Err   error  // The original error
	Stage string // One of the Stage constants
	Path  string // Input being processed, may be empty
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func stageError(stage, path string, err error) error {
	return &Error{Err: err, Stage: stage, Path: path}
}

// AsMissingField reports whether err is, or wraps, a manifest element that
// lacks a required field.
func AsMissingField(err error) (*MissingFieldError, bool) {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing, true
	}
	return nil, false
}
