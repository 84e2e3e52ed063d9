// Package explore provides the interactive terminal explorer.
//
// The package implements a Bubble Tea program around a
// [fractal.Viewport], drawing the raster with half-block cells (two
// pixels per terminal cell) and translating user input into viewport
// operations:
//
//   - drag a rectangle with the mouse to zoom into it
//   - right-click to reset to the default view
//   - arrows pan, z/x zoom around the center
//   - +/- change the iteration budget, p cycles palettes
//
// Every view change triggers a full synchronous recompute; the
// program redraws once the raster is complete.
package explore
