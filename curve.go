package fizzy

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCurve is returned when a curve name is not one of the presets.
var ErrUnknownCurve = errors.New("fizzy: unknown curve")

// ErrCurveRange is returned for control points whose x coordinate lies
// outside [0, 1]. Such a curve is not a function of time.
var ErrCurveRange = errors.New("fizzy: curve x outside [0, 1]")

// CurveTolerance is the largest per-coordinate difference at which a control
// point tuple is still classified as a named preset.
const CurveTolerance = 1e-4

// CurveKind names a timing curve.
type CurveKind uint8

const (
	CurveKindCool      CurveKind = iota // (0.25, 0.1, 0.25, 1), the default
	CurveKindLinear                     // (0, 0, 1, 1)
	CurveKindEaseIn                     // (0.42, 0, 1, 1)
	CurveKindEaseOut                    // (0, 0, 0.58, 1)
	CurveKindEaseInOut                  // (0.42, 0, 0.58, 1)
	CurveKindCustom                     // any other control points
)

var curveKindNames = [...]string{
	CurveKindCool:      "cool",
	CurveKindLinear:    "linear",
	CurveKindEaseIn:    "easeIn",
	CurveKindEaseOut:   "easeOut",
	CurveKindEaseInOut: "easeInOut",
	CurveKindCustom:    "custom",
}

// String returns the preset name used by ParseCurve and YAML.
func (k CurveKind) String() string {
	if int(k) < len(curveKindNames) {
		return curveKindNames[k]
	}
	return fmt.Sprintf("CurveKind(%d)", k)
}

// Curve is a cubic-Bezier timing curve from (0,0) to (1,1), described by its
// two inner control points.
type Curve struct {
	kind           CurveKind
	x1, y1, x2, y2 float64
}

// Named presets.
var (
	CurveCool      = Curve{CurveKindCool, 0.25, 0.1, 0.25, 1}
	CurveLinear    = Curve{CurveKindLinear, 0, 0, 1, 1}
	CurveEaseIn    = Curve{CurveKindEaseIn, 0.42, 0, 1, 1}
	CurveEaseOut   = Curve{CurveKindEaseOut, 0, 0, 0.58, 1}
	CurveEaseInOut = Curve{CurveKindEaseInOut, 0.42, 0, 0.58, 1}

	// CurveDefault is used by Generic.
	CurveDefault = CurveCool
)

var curvePresets = [...]Curve{CurveCool, CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut}

// CubicBezier returns the curve with the given control points. Tuples within
// CurveTolerance of a preset are classified as that preset and take its exact
// control points; anything else is CurveKindCustom. x1 and x2 must lie in
// [0, 1] for the curve to be usable; Intent.Validate rejects it otherwise.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	c := Curve{CurveKindCustom, x1, y1, x2, y2}
	for _, p := range curvePresets {
		if c.Equal(p) {
			return p
		}
	}
	return c
}

// ParseCurve returns the preset with the given name. Matching is case
// insensitive.
func ParseCurve(name string) (Curve, error) {
	for _, p := range curvePresets {
		if strings.EqualFold(name, p.kind.String()) {
			return p, nil
		}
	}
	return Curve{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Kind reports which preset c is, or CurveKindCustom.
func (c Curve) Kind() CurveKind {
	return c.kind
}

// ControlPoints returns the curve's inner control points.
func (c Curve) ControlPoints() (x1, y1, x2, y2 float64) {
	return c.x1, c.y1, c.x2, c.y2
}

// Equal reports whether the control points of c and o are within
// CurveTolerance of each other.
func (c Curve) Equal(o Curve) bool {
	return near(c.x1, o.x1) && near(c.y1, o.y1) && near(c.x2, o.x2) && near(c.y2, o.y2)
}

// validate checks that both x control points lie in [0, 1].
func (c Curve) validate() error {
	if !(c.x1 >= 0 && c.x1 <= 1) || !(c.x2 >= 0 && c.x2 <= 1) {
		return fmt.Errorf("%w: %v", ErrCurveRange, c)
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= CurveTolerance
}

// String returns the preset name, or the control points of a custom curve.
func (c Curve) String() string {
	if c.kind == CurveKindCustom {
		return fmt.Sprintf("custom(%g, %g, %g, %g)", c.x1, c.y1, c.x2, c.y2)
	}
	return c.kind.String()
}

// At returns the eased progress for linear progress x in [0, 1].
func (c Curve) At(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case c.kind == CurveKindLinear:
		return x
	}
	return bezier(c.solveT(x), c.y1, c.y2)
}

// Ease adapts c to the gween easing signature.
func (c Curve) Ease() ease.TweenFunc {
	if c.kind == CurveKindLinear {
		return ease.Linear
	}
	return func(t, b, delta, d float32) float32 {
		if d <= 0 {
			return b + delta
		}
		return b + delta*float32(c.At(float64(t/d)))
	}
}

// bezier evaluates one coordinate of the curve with endpoints 0 and 1.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveT finds the curve parameter whose x coordinate is x. Newton steps first,
// bisection when the slope flattens out.
func (c Curve) solveT(x float64) float64 {
	t := x
	for range 8 {
		err := bezier(t, c.x1, c.x2) - x
		if math.Abs(err) < 1e-7 {
			return t
		}
		slope := bezierSlope(t, c.x1, c.x2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= err / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for range 64 {
		v := bezier(t, c.x1, c.x2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// IsZero reports whether c is the zero Curve, which intents replace with
// CurveDefault.
func (c Curve) IsZero() bool {
	return c == Curve{}
}

// MarshalYAML writes presets by name and custom curves as a 4-element list.
func (c Curve) MarshalYAML() (any, error) {
	if c.kind == CurveKindCustom {
		return []float64{c.x1, c.y1, c.x2, c.y2}, nil
	}
	return c.kind.String(), nil
}

// UnmarshalYAML accepts a preset name or a list of four control point values.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseCurve(value.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var pts []float64
		if err := value.Decode(&pts); err != nil {
			return fmt.Errorf("curve control points: %w", err)
		}
		if len(pts) != 4 {
			return fmt.Errorf("curve control points: want 4 values, got %d", len(pts))
		}
		parsed := CubicBezier(pts[0], pts[1], pts[2], pts[3])
		if err := parsed.validate(); err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("curve: line %d: expected a name or a list", value.Line)
	}
}
