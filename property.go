package fizzy

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultThreshold is the distance below which a property counts as having
// reached its target, and the speed below which spring and decay motion stop.
const DefaultThreshold = 0.01

// Property binds an animatable value of type V on an owner of type O. Read and
// write are supplied by the integrator; the animator never touches the owner
// any other way.
//
// The owner is shared, not owned: it must outlive the animations started on
// it, or implement Disposer so they stop when it goes away.
type Property[O any, V Value[V]] struct {
	owner     *O
	name      string
	threshold float64
	read      func(*O) V
	write     func(*O, V)
}

// NewProperty binds read and write on owner. Both accessors are required.
func NewProperty[O any, V Value[V]](owner *O, read func(*O) V, write func(*O, V)) Property[O, V] {
	return Property[O, V]{
		owner:     owner,
		threshold: DefaultThreshold,
		read:      read,
		write:     write,
	}
}

// Named returns a copy of p with the given name. Names only appear in logs
// and State.
func (p Property[O, V]) Named(name string) Property[O, V] {
	p.name = name
	return p
}

// WithThreshold returns a copy of p with the given threshold. It must be
// positive; AnimateKeyed rejects anything else.
func (p Property[O, V]) WithThreshold(threshold float64) Property[O, V] {
	p.threshold = threshold
	return p
}

// Owner returns the bound owner.
func (p Property[O, V]) Owner() *O { return p.owner }

// Name returns the name used in logs and State.
func (p Property[O, V]) Name() string { return p.name }

// Threshold returns the distance and speed below which motion counts as
// settled.
func (p Property[O, V]) Threshold() float64 { return p.threshold }

// Get reads the current value.
func (p Property[O, V]) Get() V {
	return p.read(p.owner)
}

// Set writes v.
func (p Property[O, V]) Set(v V) {
	p.write(p.owner, v)
}

// Animate realizes in against p under a fresh unique key. The returned
// animation is not running until Start is called.
func (p Property[O, V]) Animate(a *Animator, in Intent[V]) (*Animation[V], error) {
	return p.AnimateKeyed(a, uuid.NewString(), in)
}

// AnimateKeyed realizes in against p under key. Starting it replaces any
// animation running on the same owner under the same key.
func (p Property[O, V]) AnimateKeyed(a *Animator, key string, in Intent[V]) (*Animation[V], error) {
	if p.owner == nil || p.read == nil || p.write == nil {
		return nil, fmt.Errorf("%w: property %q is not bound", ErrInvalidIntent, p.name)
	}
	if !(p.threshold > 0) || math.IsInf(p.threshold, 0) {
		return nil, fmt.Errorf("%w: property %q threshold %v", ErrInvalidIntent, p.name, p.threshold)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	t := &track{
		key:       key,
		owner:     p.owner,
		name:      p.name,
		kind:      in.Kind(),
		threshold: p.threshold,
		read: func() []float64 {
			return Marshal(p.read(p.owner))
		},
		write: func(s []float64) {
			v, err := Unmarshal[V](s)
			if err != nil {
				a.logger.Error("dropped property write", zap.String("name", p.name), zap.Error(err))
				return
			}
			p.write(p.owner, v)
		},
	}

	switch in.Kind() {
	case KindBasic:
		t.drv = newBasicDriver(Marshal(in.To()), in.Duration(), in.Curve())
	case KindSpring:
		t.drv = newSpringDriver(Marshal(in.To()), Marshal(in.Velocity()), in.Stiffness(), in.Speed(), p.threshold)
	case KindDecay:
		t.drv = newDecayDriver(Marshal(in.Velocity()), in.Damping(), p.threshold)
	}

	return newAnimation(a, t, in), nil
}

// Play realizes in against p and starts it.
func (p Property[O, V]) Play(a *Animator, in Intent[V]) (*Animation[V], error) {
	anim, err := p.Animate(a, in)
	if err != nil {
		return nil, err
	}
	anim.Start()
	return anim, nil
}
