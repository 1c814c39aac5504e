package fizzy

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidIntent is returned by Intent.Validate and when realizing an
// intent whose parameters the engine cannot run.
var ErrInvalidIntent = errors.New("fizzy: invalid intent")

// ErrUnknownKind is returned by ParseKind.
var ErrUnknownKind = errors.New("fizzy: unknown animation kind")

// Defaults used by the Generic constructors.
const (
	DefaultStiffness = 12.0
	DefaultSpeed     = 4.0
	DefaultDamping   = 0.998
)

// Kind selects how an intent moves its property.
type Kind uint8

const (
	KindBasic  Kind = iota // fixed duration along a timing curve
	KindSpring             // spring toward a target from an initial velocity
	KindDecay              // initial velocity decaying to rest
)

var kindNames = [...]string{
	KindBasic:  "basic",
	KindSpring: "spring",
	KindDecay:  "decay",
}

// String returns the name used by ParseKind and YAML.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(name, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Intent describes an animation before it is bound to a property. It is an
// immutable value: it holds only parameters, never an engine handle.
//
// Only the fields relevant to Kind are meaningful; the others are zero.
type Intent[V Value[V]] struct {
	kind      Kind
	to        V
	velocity  V
	duration  float32
	curve     Curve
	stiffness float64
	speed     float64
	damping   float64
}

// Basic moves to a target value over duration seconds, following curve. A zero
// Curve selects CurveDefault.
func Basic[V Value[V]](to V, duration float32, curve Curve) Intent[V] {
	if curve == (Curve{}) {
		curve = CurveDefault
	}
	return Intent[V]{kind: KindBasic, to: to, duration: duration, curve: curve}
}

// Spring moves to a target value on a spring, starting at velocity (units per
// second). Higher stiffness gives a bouncier spring; higher speed settles
// faster.
func Spring[V Value[V]](to, velocity V, stiffness, speed float64) Intent[V] {
	return Intent[V]{kind: KindSpring, to: to, velocity: velocity, stiffness: stiffness, speed: speed}
}

// Decay starts the property moving at velocity (units per second) and lets it
// slow down. damping is the fraction of velocity kept per millisecond.
func Decay[V Value[V]](velocity V, damping float64) Intent[V] {
	return Intent[V]{kind: KindDecay, velocity: velocity, damping: damping}
}

// Generic is a Basic intent along CurveCool.
func Generic[V Value[V]](to V, duration float32) Intent[V] {
	return Basic(to, duration, CurveCool)
}

// GenericSpring is a Spring intent with DefaultStiffness and DefaultSpeed.
func GenericSpring[V Value[V]](to, velocity V) Intent[V] {
	return Spring(to, velocity, DefaultStiffness, DefaultSpeed)
}

// GenericDecay is a Decay intent with DefaultDamping.
func GenericDecay[V Value[V]](velocity V) Intent[V] {
	return Decay(velocity, DefaultDamping)
}

// Kind reports which kind of motion in describes.
func (in Intent[V]) Kind() Kind { return in.kind }

// To returns the target value. Decay intents have none and return zero.
func (in Intent[V]) To() V { return in.to }

// Velocity returns the initial velocity in units per second.
func (in Intent[V]) Velocity() V { return in.velocity }

// Duration returns the length of a basic intent in seconds.
func (in Intent[V]) Duration() float32 { return in.duration }

// Curve returns the timing curve of a basic intent.
func (in Intent[V]) Curve() Curve { return in.curve }

// Stiffness returns the spring stiffness. Zero is critically damped.
func (in Intent[V]) Stiffness() float64 { return in.stiffness }

// Speed returns the spring speed. Higher values settle faster.
func (in Intent[V]) Speed() float64 { return in.speed }

// Damping returns the fraction of velocity a decay keeps per millisecond.
func (in Intent[V]) Damping() float64 { return in.damping }

// Validate reports whether the engine can run in.
func (in Intent[V]) Validate() error {
	switch in.kind {
	case KindBasic:
		d := float64(in.duration)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return fmt.Errorf("%w: duration %v", ErrInvalidIntent, in.duration)
		}
		if err := in.curve.validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidIntent, err)
		}
	case KindSpring:
		if !(in.speed > 0) || math.IsInf(in.speed, 0) {
			return fmt.Errorf("%w: spring speed %v", ErrInvalidIntent, in.speed)
		}
		if !(in.stiffness >= 0) || math.IsInf(in.stiffness, 0) {
			return fmt.Errorf("%w: spring stiffness %v", ErrInvalidIntent, in.stiffness)
		}
	case KindDecay:
		if !(in.damping > 0 && in.damping < 1) {
			return fmt.Errorf("%w: decay damping %v outside (0, 1)", ErrInvalidIntent, in.damping)
		}
	default:
		return fmt.Errorf("%w: kind %v", ErrInvalidIntent, in.kind)
	}
	return nil
}

// String describes in with its kind and parameters.
func (in Intent[V]) String() string {
	switch in.kind {
	case KindBasic:
		return fmt.Sprintf("basic(to=%v, duration=%vs, curve=%v)", in.to, in.duration, in.curve)
	case KindSpring:
		return fmt.Sprintf("spring(to=%v, velocity=%v, stiffness=%v, speed=%v)", in.to, in.velocity, in.stiffness, in.speed)
	case KindDecay:
		return fmt.Sprintf("decay(velocity=%v, damping=%v)", in.velocity, in.damping)
	}
	return in.kind.String()
}
