package geom

import "math"

// Point2 is a real-valued 2D coordinate in draft space.
type Point2 struct {
	X, Y float64
}

// Add returns the component-wise sum p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }

// Sub returns the component-wise difference p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point2) Scale(s float64) Point2 { return Point2{p.X * s, p.Y * s} }

// Length returns the Euclidean norm of p.
func (p Point2) Length() float64 { return math.Hypot(p.X, p.Y) }

// Point3 is a real-valued 3D coordinate in world space.
type Point3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns the component-wise difference p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Scale returns p scaled by s.
func (p Point3) Scale(s float64) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }

// Length returns the Euclidean norm of p.
func (p Point3) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

// Normalize returns p/|p|. The zero vector normalizes to itself, so the
// integrator's spring term for two coincident fragments (diff==0, as
// seam partners pulled together can become; see sim.Tick) is zero rather
// than NaN.
func (p Point3) Normalize() Point3 {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}
