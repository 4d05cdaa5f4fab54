package core

import "errors"

// Configuration errors are rejected before any geometry is computed.
var (
	ErrUnknownFamily      = errors.New("unknown crystal family")
	ErrInvalidGridSize    = errors.New("grid size must be at least 1")
	ErrUnknownDisplayMode = errors.New("unknown void display mode")
	ErrUnknownVoidKind    = errors.New("unknown void kind")
	ErrUnknownCategory    = errors.New("unknown visibility category")
	ErrVoidIndex          = errors.New("void index out of range")
)

// Geometry errors never abort a scene build; the void falls back to a point marker.
var (
	ErrMalformedNeighborSet = errors.New("polyhedron needs 4 or 6 neighbors")
	ErrIncompletePairing    = errors.New("octahedron vertices could not be paired into 3 axes")
)
