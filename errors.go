package starrating

import "errors"

// Configuration errors returned by New and Config.Validate.
var (
	// ErrNilCallback is returned when no change callback is supplied.
	ErrNilCallback = errors.New("starrating: onChange callback is required")

	// ErrPointCount is returned for a star with fewer than 2 points.
	ErrPointCount = errors.New("starrating: point count must be at least 2")

	// ErrInnerRatio is returned for an inner radius ratio outside (0, 1].
	ErrInnerRatio = errors.New("starrating: inner radius ratio must be in (0, 1]")

	// ErrSpacing is returned for negative or non-finite spacing.
	ErrSpacing = errors.New("starrating: spacing must be a finite non-negative number")
)
