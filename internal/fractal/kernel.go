package fractal

// Escape classifies the plane point (x0, y0) by iterating z = z² + c
// from z = 0 with c = x0 + i·y0, and returns the number of iterations
// taken to leave the bailout circle of radius 2 (squared magnitude 4).
// Points that survive the full budget return maxIterations and are
// presumed inside the set.
//
// The squares x2 and y2 are carried between steps so each turn costs
// two multiplications.
func Escape(x0, y0 float64, maxIterations int) int {
	var x, y, x2, y2 float64
	iteration := 0
	for x2+y2 <= 4 && iteration < maxIterations {
		y = 2*x*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		iteration++
	}
	return iteration
}
