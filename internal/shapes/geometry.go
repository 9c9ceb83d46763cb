package shapes

import "math"

// The compute functions are pure: no I/O, no shared state, identical inputs
// always yield bit-identical outputs. Inputs are assumed validated (positive,
// finite) by the HTTP boundary; no rounding is applied here.

// ComputeCircle returns the area and circumference of a circle.
func ComputeCircle(radius float64) CircleResponse {
	return CircleResponse{
		Area:          math.Pi * radius * radius,
		Circumference: 2 * math.Pi * radius,
	}
}

// ComputeRectangle returns the area and perimeter of a rectangle.
func ComputeRectangle(length, width float64) RectangleResponse {
	return RectangleResponse{
		Area:      length * width,
		Perimeter: 2 * (length + width),
	}
}

// ComputeTriangle returns the area of a triangle with a known base and
// height. Three-side and coordinate-based triangles are not supported.
func ComputeTriangle(base, height float64) TriangleResponse {
	return TriangleResponse{
		Area: 0.5 * base * height,
	}
}
