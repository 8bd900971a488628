package brush

import "errors"

var (
	// ErrInvalidInterval is returned for a snapping interval that is neither
	// a positive number nor a known calendar unit.
	ErrInvalidInterval = errors.New("brush: invalid brushing interval")

	// ErrNoInterval is returned when an x-axis resolution has no interval
	// to snap with.
	ErrNoInterval = errors.New("brush: no brushing interval")

	// ErrDegenerateSelection is returned when a selection resolves to
	// bounds with min >= max.
	ErrDegenerateSelection = errors.New("brush: degenerate selection")

	// ErrNoData is returned when an x-axis resolution has no points.
	ErrNoData = errors.New("brush: no data")
)
