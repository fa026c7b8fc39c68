package source

import "errors"

var (
	// ErrUnsupportedFormat is returned for files whose extension has no decoder.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoMatch is returned when a glob path matches no file.
	ErrNoMatch = errors.New("no file matches pattern")
	// ErrNoWorksheet is returned for workbooks without a readable sheet.
	ErrNoWorksheet = errors.New("no worksheet found")
)
