package domain

import (
	"errors"
	"fmt"
)

// ErrMissingColumns indicates the source header lacks one or more required columns.
var ErrMissingColumns = errors.New("missing required columns")

// DataError reports a source that could not be read, was malformed, or lacked
// required columns. It blocks the dashboard entirely.
type DataError struct {
	Source string
	Err    error
}

func (e *DataError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("data error: %v", e.Err)
	}
	return fmt.Sprintf("data error in %s: %v", e.Source, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// EmptyDatasetError reports a source that loaded cleanly but had no rows.
type EmptyDatasetError struct {
	Source string
}

func (e *EmptyDatasetError) Error() string {
	if e.Source == "" {
		return "dataset is empty"
	}
	return fmt.Sprintf("dataset from %s is empty", e.Source)
}

// IsDataError reports whether err wraps a *DataError.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

// IsEmptyDataset reports whether err wraps an *EmptyDatasetError.
func IsEmptyDataset(err error) bool {
	var ee *EmptyDatasetError
	return errors.As(err, &ee)
}
