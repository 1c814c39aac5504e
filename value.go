package fizzy

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrScalarCount is returned when a scalar sequence does not have exactly the
// number of components the target value type needs.
var ErrScalarCount = errors.New("fizzy: wrong scalar count")

// Value is implemented by every type that can be animated. A value flattens to
// a fixed number of float64 components and rebuilds itself from the same
// number of components, in the same order.
//
// The type parameter is the implementing type itself, so conversions are
// resolved at compile time:
//
//	func (p Point) FromScalars(s []float64) (Point, error)
type Value[V any] interface {
	// ScalarCount is the fixed number of components. It must not depend on
	// the receiver's contents.
	ScalarCount() int
	// AppendScalars appends the components of the receiver to dst.
	AppendScalars(dst []float64) []float64
	// FromScalars builds a value from exactly ScalarCount components.
	FromScalars(s []float64) (V, error)
}

// ScalarCount returns the number of components used by values of type V.
func ScalarCount[V Value[V]]() int {
	var zero V
	return zero.ScalarCount()
}

// Marshal flattens v into a new slice of ScalarCount components.
func Marshal[V Value[V]](v V) []float64 {
	return v.AppendScalars(make([]float64, 0, v.ScalarCount()))
}

// Unmarshal rebuilds a V from s. It fails with ErrScalarCount unless s has
// exactly ScalarCount[V]() components.
func Unmarshal[V Value[V]](s []float64) (V, error) {
	var zero V
	return zero.FromScalars(s)
}

func checkCount(typ string, want int, s []float64) error {
	if len(s) != want {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrScalarCount, typ, want, len(s))
	}
	return nil
}

// Scalar is a single animatable float (alpha, rotation, a progress value).
type Scalar float64

// ScalarCount implements Value.
func (Scalar) ScalarCount() int { return 1 }

// AppendScalars appends the value to dst.
func (v Scalar) AppendScalars(dst []float64) []float64 {
	return append(dst, float64(v))
}

// FromScalars builds a Scalar from one component.
func (Scalar) FromScalars(s []float64) (Scalar, error) {
	if err := checkCount("Scalar", 1, s); err != nil {
		return 0, err
	}
	return Scalar(s[0]), nil
}

// Point is a 2D position. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// ScalarCount implements Value.
func (Point) ScalarCount() int { return 2 }

// AppendScalars appends X then Y to dst.
func (p Point) AppendScalars(dst []float64) []float64 {
	return append(dst, p.X, p.Y)
}

// FromScalars builds a Point from [X, Y].
func (Point) FromScalars(s []float64) (Point, error) {
	if err := checkCount("Point", 2, s); err != nil {
		return Point{}, err
	}
	return Point{X: s[0], Y: s[1]}, nil
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size is a width/height pair. It also carries 2D scale factors.
type Size struct {
	Width, Height float64
}

// ScalarCount implements Value.
func (Size) ScalarCount() int { return 2 }

// AppendScalars appends Width then Height to dst.
func (z Size) AppendScalars(dst []float64) []float64 {
	return append(dst, z.Width, z.Height)
}

// FromScalars builds a Size from [Width, Height].
func (Size) FromScalars(s []float64) (Size, error) {
	if err := checkCount("Size", 2, s); err != nil {
		return Size{}, err
	}
	return Size{Width: s[0], Height: s[1]}, nil
}

// Rect is an axis-aligned rectangle. It flattens as its origin followed by its
// size: [X, Y, Width, Height].
type Rect struct {
	Origin Point
	Size   Size
}

// ScalarCount implements Value.
func (Rect) ScalarCount() int {
	return Point{}.ScalarCount() + Size{}.ScalarCount()
}

// AppendScalars appends the origin then the size to dst.
func (r Rect) AppendScalars(dst []float64) []float64 {
	return r.Size.AppendScalars(r.Origin.AppendScalars(dst))
}

// FromScalars builds a Rect from [X, Y, Width, Height].
func (r Rect) FromScalars(s []float64) (Rect, error) {
	if err := checkCount("Rect", r.ScalarCount(), s); err != nil {
		return Rect{}, err
	}
	n := Point{}.ScalarCount()
	origin, err := Point{}.FromScalars(s[:n])
	if err != nil {
		return Rect{}, err
	}
	size, err := Size{}.FromScalars(s[n:])
	if err != nil {
		return Rect{}, err
	}
	return Rect{Origin: origin, Size: size}, nil
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ScalarCount implements Value.
func (Color) ScalarCount() int { return 4 }

// AppendScalars appends R, G, B, A to dst.
func (c Color) AppendScalars(dst []float64) []float64 {
	return append(dst, c.R, c.G, c.B, c.A)
}

// FromScalars builds a Color from [R, G, B, A].
func (Color) FromScalars(s []float64) (Color, error) {
	if err := checkCount("Color", 4, s); err != nil {
		return Color{}, err
	}
	return Color{R: s[0], G: s[1], B: s[2], A: s[3]}, nil
}

// toRGBA premultiplies c for image.Fill.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
