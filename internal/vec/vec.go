// Package vec provides an immutable 2D vector value type for the
// simulation core. It contains no external dependencies to keep the
// physics pure and testable.
package vec

import "math"

// Vector is an immutable 2D vector. Every operation returns a new value;
// callers can freely share Vector values across goroutines.
type Vector struct {
	X, Y float64
}

// New creates a vector from its components.
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Zero is the zero vector.
var Zero = Vector{}

// ScaleBy returns the vector scaled component-wise by k.
func (v Vector) ScaleBy(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Add returns the component-wise sum.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Subtract returns the component-wise difference.
func (v Vector) Subtract(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Normalize returns the unit vector with the same direction.
// The zero vector normalizes to the zero vector rather than producing
// a non-finite result, so downstream physics stays total.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return v.ScaleBy(1 / l)
}

// DotProduct returns the scalar dot product.
func (v Vector) DotProduct(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// CrossProduct returns the scalar 2D cross product (z-component of the
// 3D cross product).
func (v Vector) CrossProduct(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// ProjectOn returns the projection of v along o, using the scalar amount
// DotProduct(o)/o.Length(). The divisor is the length, not the squared
// length, so the result is only the true geometric projection when o is
// a unit vector. Reflect relies on this: surface normals must be
// normalized before they are passed in.
func (v Vector) ProjectOn(o Vector) Vector {
	return o.ScaleBy(v.DotProduct(o) / o.Length())
}

// Reflect returns v mirrored across the surface with the given unit
// normal: v - 2*proj_normal(v). See ProjectOn for why normal must be a
// unit vector.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(v.ProjectOn(normal).ScaleBy(2))
}

// Rotate returns the vector rotated counter-clockwise by the given
// angle in degrees.
func (v Vector) Rotate(degrees float64) Vector {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// AngleBetween returns the signed angle from v to o in degrees,
// positive counter-clockwise.
func (v Vector) AngleBetween(o Vector) float64 {
	return math.Atan2(v.CrossProduct(o), v.DotProduct(o)) * 180 / math.Pi
}
