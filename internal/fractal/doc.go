// Package fractal implements the Mandelbrot escape-time engine.
//
// The package maps a rectangular view window of the complex plane onto
// a pixel raster and classifies every pixel with the escape-time
// algorithm:
//
//   - [Window]: the complex-plane region currently on screen
//   - [Viewport]: owns the window and the raster, recomputes on change
//   - [Escape]: the pure z = z² + c iteration kernel
//
// # Example
//
//	v := fractal.New()
//	_ = v.SetSize(640, 480)
//	_ = v.Zoom(image.Rect(0, 0, 320, 240))
//	img := v.Image()
//
// # Thread Safety
//
// Viewport instances are NOT thread-safe. Every mutating operation
// recomputes the raster synchronously before returning; pixel
// evaluation is fanned out across row chunks internally, but the
// result is byte-identical to a serial scan.
package fractal
