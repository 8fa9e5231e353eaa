package ggchart

import (
	"errors"
	"strconv"
)

// Sentinel errors for the ggchart package.
var (
	// ErrNilSurface is returned by New when no drawing surface is given.
	ErrNilSurface = errors.New("ggchart: nil surface")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("ggchart: invalid color")

	// ErrUnknownPosition is returned when a position name is not one of
	// top, bottom, left or right.
	ErrUnknownPosition = errors.New("ggchart: unknown position")
)

// StrokeError reports a failed gridline stroke during Draw.
type StrokeError struct {
	// Index is the tick whose gridline failed to render.
	Index int
	Err   error
}

func (e *StrokeError) Error() string {
	return "ggchart: stroke gridline " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *StrokeError) Unwrap() error { return e.Err }
