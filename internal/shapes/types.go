package shapes

// Request fields are pointers so a missing field can be told apart from an
// explicit zero; validation rejects both, with different messages.

// CircleRequest is the JSON body for POST /circle.
type CircleRequest struct {
	Radius *float64 `json:"radius" validate:"required,finite,gt=0"`
}

// CircleResponse carries the derived quantities for a circle.
type CircleResponse struct {
	Area          float64 `json:"area"`
	Circumference float64 `json:"circumference"`
}

// RectangleRequest is the JSON body for POST /rectangle.
type RectangleRequest struct {
	Length *float64 `json:"length" validate:"required,finite,gt=0"`
	Width  *float64 `json:"width" validate:"required,finite,gt=0"`
}

// RectangleResponse carries the derived quantities for a rectangle.
type RectangleResponse struct {
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

// TriangleRequest is the JSON body for POST /triangle.
type TriangleRequest struct {
	Base   *float64 `json:"base" validate:"required,finite,gt=0"`
	Height *float64 `json:"height" validate:"required,finite,gt=0"`
}

// TriangleResponse carries the derived quantity for a triangle.
type TriangleResponse struct {
	Area float64 `json:"area"`
}
