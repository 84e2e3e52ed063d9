package palette

import (
	"fmt"
	"image/color"
	"sort"
)

// Scheme maps an escape-time iteration count to a pixel color.
// Counts equal to maxIterations are points presumed inside the set;
// every scheme renders those black.
type Scheme func(iterations, maxIterations int) color.RGBA

var schemes = map[string]Scheme{
	"spectrum":  Spectrum,
	"grayscale": Grayscale,
	"wheel":     Wheel,
	"fire":      Fire,
}

const DefaultName = "spectrum"

func Get(name string) (Scheme, error) {
	s, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette: %s (available: %v)", name, Names())
	}
	return s, nil
}

func Names() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spectrum sweeps the full hue circle once over the iteration budget:
// hue = iterations*360/maxIterations, full saturation, full value for
// escaped points. A hue of exactly 360 wraps to 0.
func Spectrum(iterations, maxIterations int) color.RGBA {
	hue := float64(iterations) * 360.0 / float64(maxIterations)
	if hue == 360.0 {
		hue = 0.0
	}
	value := 1.0
	if iterations >= maxIterations {
		value = 0.0
	}
	return FromHSV(hue, 1.0, value)
}

func Grayscale(iterations, maxIterations int) color.RGBA {
	if iterations >= maxIterations {
		return color.RGBA{A: 255}
	}
	m := uint8(255 * iterations / maxIterations)
	return color.RGBA{m, m, m, 255}
}

var wheel = []color.RGBA{
	{255, 0, 0, 255},
	{255, 255, 0, 255},
	{0, 255, 0, 255},
	{0, 255, 255, 255},
	{0, 0, 255, 255},
	{255, 0, 255, 255},
}

func Wheel(iterations, maxIterations int) color.RGBA {
	if iterations >= maxIterations {
		return color.RGBA{A: 255}
	}
	return wheel[iterations%len(wheel)]
}

func Fire(iterations, maxIterations int) color.RGBA {
	if iterations >= maxIterations {
		return color.RGBA{A: 255}
	}
	return color.RGBA{255, uint8(255 * iterations / maxIterations), 0, 255}
}

// FromHSV converts a hue in degrees [0,360) with saturation and value
// in [0,1] to an opaque RGBA color.
func FromHSV(h, s, v float64) color.RGBA {
	h = h / 60.0
	i := int(h) % 6
	f := h - float64(int(h))
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}
