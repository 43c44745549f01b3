package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in continuous simulation space
type Point struct {
	X, Y float64
}

// Vector is a displacement, velocity or acceleration in simulation space
type Vector struct {
	X, Y float64
}

// NewPoint creates a point from two scalars
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewVector creates a vector from two scalars
func NewVector(dx, dy float64) Vector {
	return Vector{X: dx, Y: dy}
}

// Between returns the displacement that moves from onto to
func Between(from, to Point) Vector {
	return fromR2(r2.Sub(to.r2(), from.r2()))
}

// Add returns the point translated by v
func (p Point) Add(v Vector) Point {
	return Point(r2.Add(p.r2(), v.r2()))
}

// Sub returns the point translated by -v
func (p Point) Sub(v Vector) Point {
	return Point(r2.Sub(p.r2(), v.r2()))
}

// DistanceTo returns the Euclidean distance between two points
func (p Point) DistanceTo(q Point) float64 {
	return r2.Norm(r2.Sub(q.r2(), p.r2()))
}

// Finite reports whether both coordinates are finite
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Coord2 exposes the point to gonum spatial types
func (p Point) Coord2() r2.Vec {
	return p.r2()
}

func (p Point) r2() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Add returns the sum of two vectors
func (v Vector) Add(w Vector) Vector {
	return fromR2(r2.Add(v.r2(), w.r2()))
}

// Scale returns v multiplied by s
func (v Vector) Scale(s float64) Vector {
	return fromR2(r2.Scale(s, v.r2()))
}

// Length returns the Euclidean magnitude
func (v Vector) Length() float64 {
	return r2.Norm(v.r2())
}

// LengthSq returns the squared magnitude without sqrt
func (v Vector) LengthSq() float64 {
	return r2.Norm2(v.r2())
}

// Dot returns the scalar product
func (v Vector) Dot(w Vector) float64 {
	return r2.Dot(v.r2(), w.r2())
}

// WithX returns a copy of v with the X component replaced
// Used with 0 to cancel motion along one axis
func (v Vector) WithX(x float64) Vector {
	v.X = x
	return v
}

// WithY returns a copy of v with the Y component replaced
func (v Vector) WithY(y float64) Vector {
	v.Y = y
	return v
}

// IsZero reports whether both components are zero
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ClampLength limits the vector to maxLen while preserving direction
// Returns the vector unchanged if its length is <= maxLen
func (v Vector) ClampLength(maxLen float64) (Vector, bool) {
	length := v.Length()
	if length <= maxLen || length == 0 {
		return v, false
	}
	if maxLen <= 0 {
		return Vector{}, true
	}
	clamped := v.Scale(maxLen / length)
	// Rounding in the scale or the norm can leave the result an ulp or two above maxLen;
	// step both components toward zero until it fits
	for clamped.Length() > maxLen {
		clamped = NewVector(math.Nextafter(clamped.X, 0), math.Nextafter(clamped.Y, 0))
	}
	return clamped, true
}

func (v Vector) r2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func fromR2(r r2.Vec) Vector {
	return Vector{X: r.X, Y: r.Y}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
