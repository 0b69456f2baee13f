package vec

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func vectorsAlmostEqual(a, b Vector) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"3-4-5 triangle", New(3, 4), 5},
		{"unit x", New(1, 0), 1},
		{"zero", Zero, 0},
		{"negative components", New(-3, -4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); !almostEqual(got, tt.want) {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdditiveInverse(t *testing.T) {
	vectors := []Vector{New(1, 2), New(-3.5, 7), New(0.001, -0.002), Zero}

	for _, v := range vectors {
		got := v.Add(v.ScaleBy(-1))
		if !vectorsAlmostEqual(got, Zero) {
			t.Errorf("%v.Add(%v.ScaleBy(-1)) = %v, want zero", v, v, got)
		}
	}
}

func TestScaleComposition(t *testing.T) {
	v := New(2.5, -1.5)
	scalars := []struct{ k, j float64 }{{2, 3}, {-1, 4}, {0.5, 0.25}, {0, 7}}

	for _, s := range scalars {
		a := v.ScaleBy(s.k).ScaleBy(s.j)
		b := v.ScaleBy(s.k * s.j)
		if !vectorsAlmostEqual(a, b) {
			t.Errorf("ScaleBy(%v).ScaleBy(%v) = %v, want %v", s.k, s.j, a, b)
		}
	}
}

func TestDotProductSymmetry(t *testing.T) {
	v := New(3, -2)
	w := New(1.5, 4)

	if got, want := v.DotProduct(w), w.DotProduct(v); !almostEqual(got, want) {
		t.Errorf("dot product not symmetric: %v vs %v", got, want)
	}
	if got := v.DotProduct(w); !almostEqual(got, 3*1.5+(-2)*4) {
		t.Errorf("DotProduct = %v, want %v", got, 3*1.5+(-2)*4)
	}
}

func TestCrossProductAntisymmetry(t *testing.T) {
	v := New(3, -2)
	w := New(1.5, 4)

	if got, want := v.CrossProduct(w), -w.CrossProduct(v); !almostEqual(got, want) {
		t.Errorf("cross product not antisymmetric: %v vs %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	v := New(3, 4).Normalize()
	if !almostEqual(v.Length(), 1) {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !vectorsAlmostEqual(v, New(0.6, 0.8)) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8)", v)
	}

	// Zero vector must not produce NaN.
	z := Zero.Normalize()
	if !vectorsAlmostEqual(z, Zero) {
		t.Errorf("Zero.Normalize() = %v, want zero", z)
	}
}

func TestRotate(t *testing.T) {
	got := New(1, 0).Rotate(90)
	if !vectorsAlmostEqual(got, New(0, 1)) {
		t.Errorf("Rotate(90) = %v, want (0, 1)", got)
	}

	vectors := []Vector{New(1, 0), New(-2, 3), New(0.5, 0.5)}
	for _, v := range vectors {
		if got := v.Rotate(360); !vectorsAlmostEqual(got, v) {
			t.Errorf("%v.Rotate(360) = %v, want %v", v, got, v)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector
		want float64
	}{
		{"self", New(2, 3), New(2, 3), 0},
		{"quarter turn ccw", New(1, 0), New(0, 1), 90},
		{"quarter turn cw", New(0, 1), New(1, 0), -90},
		{"opposite", New(1, 0), New(-1, 0), 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AngleBetween(tt.w); !almostEqual(got, tt.want) {
				t.Errorf("AngleBetween = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	// Bounce off a horizontal surface: the normal-aligned component
	// flips sign, the tangential one is untouched.
	got := New(1, -1).Reflect(New(0, 1))
	if !vectorsAlmostEqual(got, New(1, 1)) {
		t.Errorf("Reflect = %v, want (1, 1)", got)
	}

	// Reflection conserves speed for unit normals.
	v := New(3, -4)
	normals := []Vector{New(0, 1), New(1, 0), New(1, 1).Normalize()}
	for _, n := range normals {
		r := v.Reflect(n)
		if !almostEqual(r.Length(), v.Length()) {
			t.Errorf("Reflect(%v) changed speed: %v -> %v", n, v.Length(), r.Length())
		}
	}
}

func TestProjectOn(t *testing.T) {
	// Projection onto a unit axis keeps only that component.
	got := New(3, 4).ProjectOn(New(1, 0))
	if !vectorsAlmostEqual(got, New(3, 0)) {
		t.Errorf("ProjectOn x axis = %v, want (3, 0)", got)
	}

	got = New(3, 4).ProjectOn(New(0, 1))
	if !vectorsAlmostEqual(got, New(0, 4)) {
		t.Errorf("ProjectOn y axis = %v, want (0, 4)", got)
	}
}
