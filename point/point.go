// Package point defines the foundational geometric primitive in the lyon library, the Point type.
// All other geometric types—path segments, edges, triangles—are built upon this type.
//
// # Overview
//
// The Point type represents a two-dimensional point with floating-point coordinates. It provides
// fundamental geometric operations such as translation, vector arithmetic, distance measurement
// and angle calculations. Points double as vectors where that reads naturally (Add, Sub,
// CrossProduct, DotProduct).
//
// # Notes
//
//   - Floating-point operations may introduce precision errors. Comparison operations accept an
//     epsilon via [options.WithEpsilon] for approximate comparisons; the default is exact.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jianantian/lyon/numeric"
	"github.com/jianantian/lyon/options"
)

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

// Add returns the sum of two points as if they were vectors.
// It performs component-wise addition:
//
//	(p.X + q.X, p.Y + q.Y)
func (p Point) Add(q Point) Point {
	return New(p.x+q.x, p.y+q.y)
}

// AngleFromXAxis returns the angle in radians between the vector represented
// by p and the positive x axis, as given by math.Atan2. The result is in the
// range [-π, π]. The zero vector yields 0.
func (p Point) AngleFromXAxis() float64 {
	return math.Atan2(p.y, p.x)
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.x * b.y - a.y * b.x
//
// This function is useful in computational geometry for determining relative orientation:
//   - A positive result indicates a counterclockwise turn (left turn),
//   - A negative result indicates a clockwise turn (right turn),
//   - A result of zero indicates that the points are collinear.
func (a Point) CrossProduct(b Point) float64 {
	return a.x*b.y - a.y*b.x
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q.
// This avoids the computational cost of a square root calculation and is useful in
// cases where only distance comparisons are needed.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	return (q.x-p.x)*(q.x-p.x) + (q.y-p.y)*(q.y-p.y)
}

// DistanceToPoint calculates the Euclidean (straight-line) distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// DotProduct calculates the dot product of the vectors represented by p and q,
// defined as p.x*q.x + p.y*q.y.
func (p Point) DotProduct(q Point) float64 {
	return (p.x * q.x) + (p.y * q.y)
}

// Eq determines whether the calling Point p is equal to another Point q.
//
// If [options.WithEpsilon] is provided, the comparison is approximate: the points are
// considered equal when both coordinate differences are within the epsilon threshold.
// Without it the comparison is exact.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) &&
		numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// IsFinite reports whether both coordinates are finite (neither NaN nor infinite).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.x) && !math.IsNaN(p.y) &&
		!math.IsInf(p.x, 0) && !math.IsInf(p.y, 0)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{
		X: p.x,
		Y: p.y,
	})
}

// Negate returns a new Point with both x and y coordinates negated.
// This operation is equivalent to reflecting the point across the origin
// and is useful in reversing the direction of a vector.
func (p Point) Negate() Point {
	return New(-p.x, -p.y)
}

// String returns a string representation of the Point p in the format "(x,y)",
// each coordinate printed with %f.
func (p Point) String() string {
	return fmt.Sprintf("(%f,%f)", p.x, p.y)
}

// Sub returns the vector from point q to point p.
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// Translate moves the Point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return New(p.x+delta.x, p.y+delta.y)
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}

// X returns the x-coordinate of the Point p.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point p.
func (p Point) Y() float64 {
	return p.y
}
