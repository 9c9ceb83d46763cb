package shapes

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 {
	return &v
}

func TestValidateRequestAcceptsPositiveInputs(t *testing.T) {
	tests := []struct {
		name string
		req  any
	}{
		{name: "circle", req: &CircleRequest{Radius: ptr(5)}},
		{name: "rectangle", req: &RectangleRequest{Length: ptr(4), Width: ptr(3)}},
		{name: "triangle", req: &TriangleRequest{Base: ptr(6), Height: ptr(4)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if ve := ValidateRequest(tc.req); ve != nil {
				t.Fatalf("expected no validation error, got %q", ve.Message)
			}
		})
	}
}

func TestValidateRequestRejectsInvalidInputs(t *testing.T) {
	tests := []struct {
		name        string
		req         any
		wantField   string
		wantMessage string
	}{
		{
			name:        "negative radius",
			req:         &CircleRequest{Radius: ptr(-1)},
			wantField:   "radius",
			wantMessage: "radius must be positive",
		},
		{
			name:        "zero radius",
			req:         &CircleRequest{Radius: ptr(0)},
			wantField:   "radius",
			wantMessage: "radius must be positive",
		},
		{
			name:        "missing radius",
			req:         &CircleRequest{},
			wantField:   "radius",
			wantMessage: "radius is required",
		},
		{
			name:        "infinite radius",
			req:         &CircleRequest{Radius: ptr(math.Inf(1))},
			wantField:   "radius",
			wantMessage: "radius must be a finite number",
		},
		{
			name:        "zero length",
			req:         &RectangleRequest{Length: ptr(0), Width: ptr(5)},
			wantField:   "length",
			wantMessage: "length must be positive",
		},
		{
			name:        "negative width",
			req:         &RectangleRequest{Length: ptr(4), Width: ptr(-3)},
			wantField:   "width",
			wantMessage: "width must be positive",
		},
		{
			name:        "missing height",
			req:         &TriangleRequest{Base: ptr(6)},
			wantField:   "height",
			wantMessage: "height is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ve := ValidateRequest(tc.req)
			if ve == nil {
				t.Fatal("expected a validation error")
			}
			if ve.Field != tc.wantField {
				t.Fatalf("expected field %q, got %q", tc.wantField, ve.Field)
			}
			if ve.Message != tc.wantMessage {
				t.Fatalf("expected message %q, got %q", tc.wantMessage, ve.Message)
			}
			if ve.Error() != tc.wantMessage {
				t.Fatalf("expected Error() %q, got %q", tc.wantMessage, ve.Error())
			}
		})
	}
}

// When several fields are invalid at once, the first field in struct
// declaration order wins.
func TestValidateRequestReportsFirstInvalidField(t *testing.T) {
	ve := ValidateRequest(&RectangleRequest{Length: ptr(0), Width: ptr(-1)})
	if ve == nil {
		t.Fatal("expected a validation error")
	}
	if ve.Field != "length" {
		t.Fatalf("expected first invalid field %q, got %q", "length", ve.Field)
	}

	ve = ValidateRequest(&TriangleRequest{})
	if ve == nil {
		t.Fatal("expected a validation error")
	}
	if ve.Field != "base" {
		t.Fatalf("expected first invalid field %q, got %q", "base", ve.Field)
	}
}
