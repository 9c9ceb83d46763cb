package shapes

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestComputeCircle(t *testing.T) {
	got := ComputeCircle(5)

	if want := 78.53981633974483; !almostEqual(got.Area, want) {
		t.Fatalf("expected area %v, got %v", want, got.Area)
	}
	if want := 31.41592653589793; !almostEqual(got.Circumference, want) {
		t.Fatalf("expected circumference %v, got %v", want, got.Circumference)
	}
}

func TestComputeCircleMatchesFormula(t *testing.T) {
	for _, r := range []float64{0.001, 1, 2.5, 1e6} {
		got := ComputeCircle(r)

		if want := math.Pi * r * r; got.Area != want {
			t.Fatalf("radius %v: expected area %v, got %v", r, want, got.Area)
		}
		if want := 2 * math.Pi * r; got.Circumference != want {
			t.Fatalf("radius %v: expected circumference %v, got %v", r, want, got.Circumference)
		}
	}
}

func TestComputeRectangle(t *testing.T) {
	got := ComputeRectangle(4, 3)

	if got.Area != 12 {
		t.Fatalf("expected area 12, got %v", got.Area)
	}
	if got.Perimeter != 14 {
		t.Fatalf("expected perimeter 14, got %v", got.Perimeter)
	}
}

func TestComputeTriangle(t *testing.T) {
	got := ComputeTriangle(6, 4)

	if got.Area != 12 {
		t.Fatalf("expected area 12, got %v", got.Area)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	if ComputeCircle(7.3) != ComputeCircle(7.3) {
		t.Fatal("expected identical circle results for identical input")
	}
	if ComputeRectangle(2.2, 9.9) != ComputeRectangle(2.2, 9.9) {
		t.Fatal("expected identical rectangle results for identical input")
	}
	if ComputeTriangle(0.5, 0.5) != ComputeTriangle(0.5, 0.5) {
		t.Fatal("expected identical triangle results for identical input")
	}
}
