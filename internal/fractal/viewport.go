package fractal

import (
	"image"
	"runtime"
	"sync"

	"github.com/san-kum/fractview/internal/palette"
)

// DefaultMaxIterations is the escape-time budget used unless a caller
// tunes it. Higher budgets resolve more boundary detail at a linear
// cost in recompute time.
const DefaultMaxIterations = 100

// serialThreshold is the raster height below which the row fan-out is
// not worth the goroutine overhead.
const serialThreshold = 16

// Viewport owns the current view window and the output raster, and
// keeps the two consistent: every operation that changes either runs
// a full synchronous recompute before returning.
//
// A fresh Viewport has no raster; computation is a no-op until the
// first SetSize call.
type Viewport struct {
	window  Window
	img     *image.RGBA
	maxIter int
	workers int
	scheme  palette.Scheme
}

func New() *Viewport {
	return &Viewport{
		window:  DefaultWindow(),
		maxIter: DefaultMaxIterations,
		workers: runtime.NumCPU(),
		scheme:  palette.Spectrum,
	}
}

// SetSize allocates a fresh raster of exactly w×h pixels, discarding
// any previous raster, and repopulates every pixel from the current
// window. Rasters are never resized in place.
func (v *Viewport) SetSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return ErrInvalidSize
	}
	v.img = image.NewRGBA(image.Rect(0, 0, w, h))
	v.recompute()
	return nil
}

// Zoom replaces the window with the plane region under r, a selection
// in current raster pixel coordinates, then recomputes. Each axis is
// rescaled independently, so a non-square selection yields a window
// whose aspect follows the pixel selection rather than the plane.
//
// Callers are expected to filter out empty selections; a degenerate
// or pre-SetSize call fails with an error instead of corrupting the
// window.
func (v *Viewport) Zoom(r image.Rectangle) error {
	if v.img == nil {
		return ErrNoSurface
	}
	r = r.Canon()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return ErrEmptySelection
	}
	x0, y0 := v.planePoint(float64(r.Min.X), float64(r.Min.Y))
	x1, y1 := v.planePoint(float64(r.Max.X), float64(r.Max.Y))
	v.window = Window{XStart: x0, XEnd: x1, YStart: y0, YEnd: y1}
	v.recompute()
	return nil
}

// Reset restores the default window and recomputes. Raster dimensions
// are kept.
func (v *Viewport) Reset() {
	v.window = DefaultWindow()
	v.recompute()
}

// SetWindow replaces the window wholesale, e.g. to jump to a named
// region, and recomputes.
func (v *Viewport) SetWindow(w Window) error {
	if !w.Valid() {
		return ErrInvalidWindow
	}
	v.window = w
	v.recompute()
	return nil
}

// SetMaxIterations changes the escape-time budget and recomputes.
func (v *Viewport) SetMaxIterations(n int) {
	if n < 1 {
		n = 1
	}
	v.maxIter = n
	v.recompute()
}

// SetPalette changes the color scheme and recomputes.
func (v *Viewport) SetPalette(s palette.Scheme) {
	v.scheme = s
	v.recompute()
}

// SetWorkers caps the recompute fan-out. Values below 1 force the
// serial path. Worker count never affects raster content, only how
// the rows are divided.
func (v *Viewport) SetWorkers(n int) {
	v.workers = n
}

func (v *Viewport) Window() Window     { return v.window }
func (v *Viewport) MaxIterations() int { return v.maxIter }

// Image returns the current raster, or nil before the first SetSize.
// The raster is owned by the viewport and replaced wholesale on every
// recompute; callers must treat it as read-only.
func (v *Viewport) Image() *image.RGBA { return v.img }

// planePoint maps raster pixel coordinates to complex-plane
// coordinates under the current window. Both the per-pixel classify
// and the zoom rescale go through this single mapping.
func (v *Viewport) planePoint(px, py float64) (x, y float64) {
	b := v.img.Bounds()
	x = px*v.window.SpanX()/float64(b.Dx()) + v.window.XStart
	y = py*v.window.SpanY()/float64(b.Dy()) + v.window.YStart
	return x, y
}

func (v *Viewport) colorPixel(px, py int) {
	x0, y0 := v.planePoint(float64(px), float64(py))
	iterations := Escape(x0, y0, v.maxIter)
	v.img.SetRGBA(px, py, v.scheme(iterations, v.maxIter))
}

// recompute rewrites every raster pixel from the current window.
// No-op before the first SetSize. Rows are chunked across workers;
// pixels are independent and each goroutine writes only its own rows,
// so no locking is needed and the output matches the serial scan.
func (v *Viewport) recompute() {
	if v.img == nil {
		return
	}
	h := v.img.Bounds().Dy()
	if v.workers <= 1 || h < serialThreshold {
		v.computeRows(0, h)
		return
	}

	var wg sync.WaitGroup
	chunk := (h + v.workers - 1) / v.workers
	for start := 0; start < h; start += chunk {
		end := start + chunk
		if end > h {
			end = h
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			v.computeRows(start, end)
		}(start, end)
	}
	wg.Wait()
}

func (v *Viewport) computeRows(y0, y1 int) {
	w := v.img.Bounds().Dx()
	for py := y0; py < y1; py++ {
		for px := 0; px < w; px++ {
			v.colorPixel(px, py)
		}
	}
}

// Histogram counts pixels per iteration class for the current view.
// Index i holds the number of pixels that escaped after exactly i
// iterations; index maxIterations holds the presumed-inside pixels.
func (v *Viewport) Histogram() []int {
	if v.img == nil {
		return nil
	}
	counts := make([]int, v.maxIter+1)
	b := v.img.Bounds()
	for py := 0; py < b.Dy(); py++ {
		for px := 0; px < b.Dx(); px++ {
			x0, y0 := v.planePoint(float64(px), float64(py))
			counts[Escape(x0, y0, v.maxIter)]++
		}
	}
	return counts
}

// RowProfile returns the mean iteration count of each raster row, a
// cheap signal of where the view's detail concentrates.
func (v *Viewport) RowProfile() []float64 {
	if v.img == nil {
		return nil
	}
	b := v.img.Bounds()
	profile := make([]float64, b.Dy())
	for py := 0; py < b.Dy(); py++ {
		sum := 0
		for px := 0; px < b.Dx(); px++ {
			x0, y0 := v.planePoint(float64(px), float64(py))
			sum += Escape(x0, y0, v.maxIter)
		}
		profile[py] = float64(sum) / float64(b.Dx())
	}
	return profile
}
