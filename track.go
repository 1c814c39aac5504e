package fizzy

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// driver advances the components of one running animation. Implementations
// wrap the engine object for their kind: gween tweens for basic and decay
// motion, harmonica springs for spring motion.
type driver interface {
	// prime resets the driver to start from the given component values.
	prime(from []float64)
	// step advances by dt seconds, overwriting values and velocity in place,
	// and reports whether the motion has finished.
	step(dt float32, values, velocity []float64) bool
	// target returns the destination components, or nil when there is none.
	target() []float64
}

// track is a realized animation: a driver plus the marshalled read/write
// closures of the bound property and the callback slots.
type track struct {
	key       string
	owner     any
	name      string
	kind      Kind
	threshold float64

	read  func() []float64
	write func([]float64)
	drv   driver

	values   []float64
	velocity []float64
	elapsed  float32

	running   bool
	completed bool
	reached   bool
	// pass is the Animator pass counter at the last Start.
	pass uint64

	onApply    func()
	onComplete func(completed bool)
	onReached  func()
}

// prime reads the property's current value and restarts the driver from it.
func (t *track) prime() {
	t.values = t.read()
	if len(t.velocity) != len(t.values) {
		t.velocity = make([]float64, len(t.values))
	}
	t.drv.prime(t.values)
	t.elapsed = 0
	t.completed = false
	t.reached = false
}

// atTarget reports whether every component is within threshold of the
// driver's target. Drivers without a target never report true.
func (t *track) atTarget() bool {
	to := t.drv.target()
	if to == nil {
		return false
	}
	for i, v := range t.values {
		if math.Abs(to[i]-v) > t.threshold {
			return false
		}
	}
	return true
}

// --- basic ---

// tweenDriver runs one gween tween per component. It serves both basic
// motion (ease from the intent's curve) and decay motion (ease from the decay
// profile).
type tweenDriver struct {
	to       []float64
	duration float32
	fn       ease.TweenFunc
	tweens   []*gween.Tween

	// velocityAt, when set, gives the analytic velocity of component i at
	// elapsed seconds. Otherwise velocity is a finite difference.
	velocityAt func(i int, elapsed float32) float64
	elapsed    float32

	// retarget, when set, recomputes to and per-component easing at prime.
	retarget func(from []float64) ([]float64, []ease.TweenFunc, float32)
	fns      []ease.TweenFunc
}

func newBasicDriver(to []float64, duration float32, curve Curve) *tweenDriver {
	return &tweenDriver{to: to, duration: duration, fn: curve.Ease()}
}

func (d *tweenDriver) prime(from []float64) {
	if d.retarget != nil {
		d.to, d.fns, d.duration = d.retarget(from)
	}
	d.elapsed = 0
	d.tweens = d.tweens[:0]
	for i, v := range from {
		fn := d.fn
		if d.fns != nil {
			fn = d.fns[i]
		}
		d.tweens = append(d.tweens, gween.New(float32(v), float32(d.to[i]), d.duration, fn))
	}
}

func (d *tweenDriver) step(dt float32, values, velocity []float64) bool {
	d.elapsed += dt
	allDone := true
	for i, tw := range d.tweens {
		val, finished := tw.Update(dt)
		next := float64(val)
		if finished {
			next = d.to[i]
		}
		switch {
		case d.velocityAt != nil:
			velocity[i] = d.velocityAt(i, d.elapsed)
		case finished:
			velocity[i] = 0
		case dt > 0:
			velocity[i] = (next - values[i]) / float64(dt)
		}
		values[i] = next
		if !finished {
			allDone = false
		}
	}
	return allDone
}

func (d *tweenDriver) target() []float64 {
	if d.retarget != nil {
		return nil
	}
	return d.to
}

// --- decay ---

// newDecayDriver builds a tween driver that follows exponential velocity
// decay: v(t) = v0 * damping^(1000t), so x(t) = x0 + v0 * (e^(kt) - 1) / k
// with k = 1000 * ln(damping). Each component runs until its speed drops below
// threshold.
func newDecayDriver(velocity []float64, damping, threshold float64) *tweenDriver {
	k := 1000 * math.Log(damping)
	v0 := append([]float64(nil), velocity...)

	d := &tweenDriver{}
	d.velocityAt = func(i int, elapsed float32) float64 {
		dur := decayDuration(v0[i], k, threshold)
		if float64(elapsed) >= dur {
			return 0
		}
		return v0[i] * math.Exp(k*float64(elapsed))
	}
	d.retarget = func(from []float64) ([]float64, []ease.TweenFunc, float32) {
		to := make([]float64, len(from))
		fns := make([]ease.TweenFunc, len(from))
		var longest float64
		for i, x0 := range from {
			dur := decayDuration(v0[i], k, threshold)
			longest = max(longest, dur)
			to[i] = x0 + v0[i]*math.Expm1(k*dur)/k
			// Components that come to rest early hold their final value
			// until the slowest one stops.
			fns[i] = holdEase(decayEase(k, dur), dur)
		}
		return to, fns, float32(longest)
	}
	return d
}

// decayDuration is the time in seconds for speed |v0| to decay below
// threshold.
func decayDuration(v0, k, threshold float64) float64 {
	speed := math.Abs(v0)
	if speed <= threshold || threshold <= 0 {
		return 0
	}
	return math.Log(threshold/speed) / k
}

// decayEase maps elapsed time to the fraction of total decay distance covered
// by dur seconds.
func decayEase(k, dur float64) ease.TweenFunc {
	total := math.Expm1(k * dur)
	return func(t, b, c, d float32) float32 {
		if total == 0 {
			return b + c
		}
		return b + c*float32(math.Expm1(k*float64(t))/total)
	}
}

// holdEase runs fn over its own duration and then holds the end value.
func holdEase(fn ease.TweenFunc, own float64) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if float64(t) >= own {
			return b + c
		}
		return fn(t, b, c, float32(own))
	}
}

// --- spring ---

// springFrequency maps the intent's speed to an angular frequency in rad/s.
func springFrequency(speed float64) float64 {
	return 4 + speed
}

// springDampingRatio maps the intent's stiffness to a damping ratio. Zero
// stiffness is critically damped (no overshoot); larger values bounce more.
func springDampingRatio(stiffness float64) float64 {
	return 1 / (1 + stiffness/6)
}

// springDriver steps one harmonica spring per component toward the target.
type springDriver struct {
	to        []float64
	initial   []float64
	threshold float64
	omega     float64
	zeta      float64

	spring harmonica.Spring
	dt     float32
	primed bool
}

func newSpringDriver(to, velocity []float64, stiffness, speed, threshold float64) *springDriver {
	return &springDriver{
		to:        to,
		initial:   velocity,
		threshold: threshold,
		omega:     springFrequency(speed),
		zeta:      springDampingRatio(stiffness),
	}
}

func (d *springDriver) prime(from []float64) {
	d.primed = true
}

func (d *springDriver) step(dt float32, values, velocity []float64) bool {
	if d.primed {
		copy(velocity, d.initial)
		d.primed = false
	}
	if dt <= 0 {
		return false
	}
	// harmonica precomputes coefficients for a fixed time step.
	if dt != d.dt {
		d.spring = harmonica.NewSpring(float64(dt), d.omega, d.zeta)
		d.dt = dt
	}

	settled := true
	for i := range values {
		values[i], velocity[i] = d.spring.Update(values[i], velocity[i], d.to[i])
		if math.Abs(d.to[i]-values[i]) > d.threshold || math.Abs(velocity[i]) > d.threshold {
			settled = false
		}
	}
	if settled {
		copy(values, d.to)
		clear(velocity)
	}
	return settled
}

func (d *springDriver) target() []float64 {
	return d.to
}
