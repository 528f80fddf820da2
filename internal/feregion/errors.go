package feregion

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalCoordinate reports malformed or out-of-range coordinate input.
	ErrIllegalCoordinate = errors.New("illegal coordinate")

	// ErrIndexOutOfRange reports a region number outside [1, RegionCount] or a
	// lookup that landed outside its latitude tier.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDatasetFormat reports a missing or malformed dataset resource.
	ErrDatasetFormat = errors.New("dataset format")
)

// CoordinateError describes why a latitude or longitude was rejected.
type CoordinateError struct {
	Axis   string // "latitude" or "longitude"
	Input  string
	Reason string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("illegal %s %q: %s", e.Axis, e.Input, e.Reason)
}

func (e *CoordinateError) Unwrap() error { return ErrIllegalCoordinate }

// DatasetFormatError carries the resource name and, when known, the line at
// which parsing failed.
type DatasetFormatError struct {
	Resource string
	Line     int
	Err      error
}

func (e *DatasetFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dataset %s line %d: %v", e.Resource, e.Line, e.Err)
	}
	return fmt.Sprintf("dataset %s: %v", e.Resource, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *DatasetFormatError) Unwrap() []error { return []error{ErrDatasetFormat, e.Err} }

func formatErr(resource string, line int, format string, args ...any) error {
	return &DatasetFormatError{Resource: resource, Line: line, Err: fmt.Errorf(format, args...)}
}

func regionRangeErr(fenum, count int) error {
	return fmt.Errorf("%w: region number %d not in [1, %d]", ErrIndexOutOfRange, fenum, count)
}
