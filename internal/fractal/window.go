package fractal

// Default window bounds cover the whole set with the classic framing.
const (
	DefaultXStart = -2.5
	DefaultXEnd   = 1.0
	DefaultYStart = -1.0
	DefaultYEnd   = 1.0
)

// Window is the rectangular region of the complex plane mapped onto
// the raster: [XStart,XEnd) on the real axis, [YStart,YEnd) on the
// imaginary axis. Valid windows satisfy XStart < XEnd and
// YStart < YEnd; operations replace a window wholesale and never
// mutate individual bounds.
type Window struct {
	XStart float64 `json:"x_start" yaml:"x_start"`
	XEnd   float64 `json:"x_end" yaml:"x_end"`
	YStart float64 `json:"y_start" yaml:"y_start"`
	YEnd   float64 `json:"y_end" yaml:"y_end"`
}

func DefaultWindow() Window {
	return Window{
		XStart: DefaultXStart,
		XEnd:   DefaultXEnd,
		YStart: DefaultYStart,
		YEnd:   DefaultYEnd,
	}
}

func (w Window) Valid() bool {
	return w.XStart < w.XEnd && w.YStart < w.YEnd
}

// SpanX returns the real-axis extent of the window.
func (w Window) SpanX() float64 { return w.XEnd - w.XStart }

// SpanY returns the imaginary-axis extent of the window.
func (w Window) SpanY() float64 { return w.YEnd - w.YStart }

// Contains reports whether o lies entirely within w.
func (w Window) Contains(o Window) bool {
	return o.XStart >= w.XStart && o.XEnd <= w.XEnd &&
		o.YStart >= w.YStart && o.YEnd <= w.YEnd
}
