package fizzy

import (
	"errors"
	"slices"
	"testing"
)

func roundTrip[V Value[V]](t *testing.T, v V) {
	t.Helper()
	s := Marshal(v)
	if len(s) != ScalarCount[V]() {
		t.Fatalf("Marshal(%v) has %d components, ScalarCount = %d", v, len(s), ScalarCount[V]())
	}
	got, err := Unmarshal[V](s)
	if err != nil {
		t.Fatalf("Unmarshal(%v): %v", s, err)
	}
	if any(got) != any(v) {
		t.Errorf("round trip = %v, want %v", got, v)
	}
}

func TestValueRoundTrip(t *testing.T) {
	roundTrip(t, Scalar(0))
	roundTrip(t, Scalar(-12.5))
	roundTrip(t, Point{X: 1.25, Y: -7})
	roundTrip(t, Size{Width: 640, Height: 480})
	roundTrip(t, Rect{Origin: Point{X: -3, Y: 9.75}, Size: Size{Width: 0.1, Height: 1e9}})
	roundTrip(t, Color{R: 0.2, G: 0.4, B: 0.6, A: 0.8})
}

func TestScalarCounts(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Scalar", ScalarCount[Scalar](), 1},
		{"Point", ScalarCount[Point](), 2},
		{"Size", ScalarCount[Size](), 2},
		{"Rect", ScalarCount[Rect](), 4},
		{"Color", ScalarCount[Color](), 4},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("ScalarCount[%s] = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestRectMarshalsOriginThenSize(t *testing.T) {
	r := Rect{Origin: Point{X: 3, Y: 4}, Size: Size{Width: 10, Height: 20}}

	s := Marshal(r)
	if want := []float64{3, 4, 10, 20}; !slices.Equal(s, want) {
		t.Fatalf("Marshal = %v, want %v", s, want)
	}

	back, err := Unmarshal[Rect](s)
	if err != nil {
		t.Fatal(err)
	}
	if back != r {
		t.Errorf("Unmarshal = %+v, want %+v", back, r)
	}
}

func TestUnmarshalWrongCount(t *testing.T) {
	if _, err := Unmarshal[Rect]([]float64{1, 2, 3}); !errors.Is(err, ErrScalarCount) {
		t.Errorf("short Rect: err = %v, want ErrScalarCount", err)
	}
	if _, err := Unmarshal[Point]([]float64{1, 2, 3}); !errors.Is(err, ErrScalarCount) {
		t.Errorf("long Point: err = %v, want ErrScalarCount", err)
	}
	if _, err := Unmarshal[Scalar](nil); !errors.Is(err, ErrScalarCount) {
		t.Errorf("nil Scalar: err = %v, want ErrScalarCount", err)
	}
}

func TestAppendScalarsAppends(t *testing.T) {
	dst := []float64{99}
	dst = Point{X: 1, Y: 2}.AppendScalars(dst)
	dst = Size{Width: 3, Height: 4}.AppendScalars(dst)
	if want := []float64{99, 1, 2, 3, 4}; !slices.Equal(dst, want) {
		t.Errorf("got %v, want %v", dst, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Origin: Point{X: 10, Y: 10}, Size: Size{Width: 20, Height: 10}}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{X: 15, Y: 15}, true},
		{Point{X: 10, Y: 10}, true},
		{Point{X: 30, Y: 20}, true},
		{Point{X: 31, Y: 15}, false},
		{Point{X: 15, Y: 9}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 2, A: 0.5}.toRGBA()
	if c.R != 127 || c.G != 63 || c.B != 255 || c.A != 127 {
		t.Errorf("toRGBA = %+v", c)
	}
}
