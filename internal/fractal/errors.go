package fractal

import "errors"

// Domain errors for viewport operations.
var (
	// ErrInvalidSize indicates a raster resize with non-positive dimensions.
	ErrInvalidSize = errors.New("fractal: raster dimensions must be positive")

	// ErrNoSurface indicates an operation that needs a raster before SetSize.
	ErrNoSurface = errors.New("fractal: no raster allocated (call SetSize first)")

	// ErrEmptySelection indicates a zoom selection with zero area.
	ErrEmptySelection = errors.New("fractal: zoom selection has no area")

	// ErrInvalidWindow indicates inverted or degenerate window bounds.
	ErrInvalidWindow = errors.New("fractal: view window bounds are inverted or empty")

	// ErrUnknownRegion indicates a region name with no registered window.
	ErrUnknownRegion = errors.New("fractal: unknown region")
)
