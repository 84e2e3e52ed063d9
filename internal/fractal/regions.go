package fractal

import (
	"fmt"
	"sort"
)

// Classic landmarks in the Mandelbrot set, addressable by name from
// the CLI. "overview" is the default full-set framing.
var regions = map[string]Window{
	"overview": DefaultWindow(),

	// Seahorse Valley: dense filaments and repeating seahorse curls
	"seahorse-valley": {XStart: -0.8, XEnd: -0.7, YStart: 0.05, YEnd: 0.15},

	// Elephant Valley: large bulb with trunk-like tendrils
	"elephant-valley": {XStart: -1.85, XEnd: -1.75, YStart: -0.10, YEnd: -0.02},

	// Spiral Minibrot: small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {XStart: -0.7435, XEnd: -0.7420, YStart: 0.1310, YEnd: 0.1325},

	// Triple Spiral: threefold symmetric spiral structure
	"triple-spiral": {XStart: -0.7480, XEnd: -0.7450, YStart: 0.0950, YEnd: 0.0980},

	// Dragon Valley: deep, highly detailed spiral filaments
	"dragon-valley": {XStart: -0.7400, XEnd: -0.7350, YStart: 0.1800, YEnd: 0.1850},

	// Minibrot: self-similar Mandelbrot copy inside a spiral arm
	"minibrot": {XStart: -1.7390, XEnd: -1.7375, YStart: -0.0235, YEnd: -0.0220},
}

// Region looks up a named landmark window.
func Region(name string) (Window, error) {
	w, ok := regions[name]
	if !ok {
		return Window{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownRegion, name, RegionNames())
	}
	return w, nil
}

// RegionNames returns all landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
