package fizzy

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween"
	"gopkg.in/yaml.v3"
)

func TestCurvePresetRoundTrip(t *testing.T) {
	for _, c := range []Curve{CurveCool, CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut} {
		x1, y1, x2, y2 := c.ControlPoints()
		got := CubicBezier(x1, y1, x2, y2)
		if got.Kind() != c.Kind() {
			t.Errorf("%v: points -> kind = %v", c.Kind(), got.Kind())
		}
	}
}

func TestCubicBezierClassifiesPresets(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           CurveKind
	}{
		{"exact cool", 0.25, 0.1, 0.25, 1, CurveKindCool},
		{"exact linear", 0, 0, 1, 1, CurveKindLinear},
		{"exact easeIn", 0.42, 0, 1, 1, CurveKindEaseIn},
		{"exact easeOut", 0, 0, 0.58, 1, CurveKindEaseOut},
		{"exact easeInOut", 0.42, 0, 0.58, 1, CurveKindEaseInOut},
		// float32 round trip of 0.42 is 0.41999998688697815
		{"float32 easeIn", float64(float32(0.42)), 0, 1, 1, CurveKindEaseIn},
		{"just outside tolerance", 0.42 + 2*CurveTolerance, 0, 1, 1, CurveKindCustom},
		{"custom", 0.5, 0, 0.2, 1, CurveKindCustom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CubicBezier(tt.x1, tt.y1, tt.x2, tt.y2).Kind(); got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicBezierSnapsToPresetPoints(t *testing.T) {
	c := CubicBezier(float64(float32(0.42)), 0, float64(float32(0.58)), 1)
	if c != CurveEaseInOut {
		t.Errorf("got %v, want exact easeInOut", c)
	}
}

func TestCurveAt(t *testing.T) {
	tests := []struct {
		curve Curve
		x     float64
		want  float64
	}{
		{CurveLinear, 0.3, 0.3},
		{CurveCool, 0.5, 0.8024},
		{CurveEaseIn, 0.5, 0.3154},
		{CurveEaseOut, 0.5, 0.6846},
		{CurveEaseInOut, 0.5, 0.5},
		{CurveEaseInOut, 0.25, 0.1292},
		{CubicBezier(0.5, 0, 0.2, 1), 0.5, 0.7466},
	}
	for _, tt := range tests {
		if got := tt.curve.At(tt.x); math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("%v.At(%v) = %v, want ~%v", tt.curve, tt.x, got, tt.want)
		}
	}
}

func TestCurveAtEndpoints(t *testing.T) {
	for _, c := range curvePresets {
		if got := c.At(0); got != 0 {
			t.Errorf("%v.At(0) = %v", c, got)
		}
		if got := c.At(1); got != 1 {
			t.Errorf("%v.At(1) = %v", c, got)
		}
		if got := c.At(-1); got != 0 {
			t.Errorf("%v.At(-1) = %v", c, got)
		}
	}
}

func TestCurveAtMonotonic(t *testing.T) {
	for _, c := range curvePresets {
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := c.At(float64(i) / 100)
			if v < prev-1e-9 {
				t.Fatalf("%v not monotonic at %d: %v < %v", c, i, v, prev)
			}
			prev = v
		}
	}
}

func TestCurveEaseDrivesGween(t *testing.T) {
	tw := gween.New(0, 100, 1, CurveEaseInOut.Ease())
	v, done := tw.Update(0.5)
	if done {
		t.Fatal("finished at halfway")
	}
	if math.Abs(float64(v)-50) > 0.01 {
		t.Errorf("halfway = %v, want ~50", v)
	}
	v, done = tw.Update(0.5)
	if !done || v != 100 {
		t.Errorf("end = %v (done=%v), want 100", v, done)
	}
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("EASEINOUT")
	if err != nil {
		t.Fatal(err)
	}
	if c != CurveEaseInOut {
		t.Errorf("got %v", c)
	}
	if _, err := ParseCurve("custom"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("custom: err = %v, want ErrUnknownCurve", err)
	}
	if _, err := ParseCurve("bouncy"); !errors.Is(err, ErrUnknownCurve) {
		t.Errorf("bouncy: err = %v, want ErrUnknownCurve", err)
	}
}

func TestCurveYAML(t *testing.T) {
	var v struct {
		A Curve `yaml:"a"`
		B Curve `yaml:"b"`
	}
	src := "a: easeOut\nb: [0.5, 0, 0.2, 1]\n"
	if err := yaml.Unmarshal([]byte(src), &v); err != nil {
		t.Fatal(err)
	}
	if v.A != CurveEaseOut {
		t.Errorf("a = %v", v.A)
	}
	if v.B.Kind() != CurveKindCustom {
		t.Errorf("b kind = %v", v.B.Kind())
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var back struct {
		A Curve `yaml:"a"`
		B Curve `yaml:"b"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-read %q: %v", out, err)
	}
	if back != v {
		t.Errorf("re-read %+v, want %+v", back, v)
	}
}

func TestCurveYAMLRejectsBadLists(t *testing.T) {
	var c Curve
	if err := yaml.Unmarshal([]byte("[1, 2, 3]"), &c); err == nil {
		t.Error("expected error for 3 control points")
	}
}

func TestCurveString(t *testing.T) {
	if got := CurveCool.String(); got != "cool" {
		t.Errorf("got %q", got)
	}
	if got := CubicBezier(0.5, 0, 0.2, 1).String(); got != "custom(0.5, 0, 0.2, 1)" {
		t.Errorf("got %q", got)
	}
}

func TestCurveXOutOfRangeRejected(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"both out", 1.5, 0, -0.5, 1},
		{"x1 negative", -0.1, 0, 0.5, 1},
		{"x2 above one", 0.2, 0, 1.01, 1},
		{"NaN", math.NaN(), 0, 0.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CubicBezier(tt.x1, tt.y1, tt.x2, tt.y2)
			err := Basic(Scalar(1), 1, c).Validate()
			if !errors.Is(err, ErrInvalidIntent) || !errors.Is(err, ErrCurveRange) {
				t.Errorf("err = %v, want ErrInvalidIntent wrapping ErrCurveRange", err)
			}
		})
	}

	// y may overshoot; only x is constrained.
	if err := Basic(Scalar(1), 1, CubicBezier(0.3, -0.5, 0.7, 1.5)).Validate(); err != nil {
		t.Errorf("overshooting y: %v", err)
	}

	var c Curve
	if err := yaml.Unmarshal([]byte("[1.5, 0, -0.5, 1]"), &c); !errors.Is(err, ErrCurveRange) {
		t.Errorf("yaml: err = %v, want ErrCurveRange", err)
	}
}
