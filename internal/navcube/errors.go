package navcube

import "errors"

var (
	// ErrNoRegion is returned when no display region is supplied.
	ErrNoRegion = errors.New("navcube: no display region")
	// ErrEmptyRegion is returned when the region has a zero dimension.
	ErrEmptyRegion = errors.New("navcube: display region has zero width or height")
	// ErrNoCamera is returned when no external camera is supplied.
	ErrNoCamera = errors.New("navcube: no camera")
	// ErrClosed is returned by operations on a closed widget.
	ErrClosed = errors.New("navcube: widget closed")
)
