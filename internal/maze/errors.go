package maze

import "errors"

var (
	// ErrInvalidPixelColor means a pixel is not part of the maze palette.
	ErrInvalidPixelColor = errors.New("invalid pixel color")

	// ErrMissingEndpoints means the image has no start or no end cell.
	ErrMissingEndpoints = errors.New("missing start or end cell")

	// ErrTooManyEndpoints means the image has more than one start or end cell.
	ErrTooManyEndpoints = errors.New("more than one start or end cell")

	// ErrIncompatibleDimensions means the image size differs from the expected grid size.
	ErrIncompatibleDimensions = errors.New("incompatible image dimensions")

	// ErrUnsolvable means no route connects start and end.
	ErrUnsolvable = errors.New("maze has no solution")
)
