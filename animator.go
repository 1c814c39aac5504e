package fizzy

import (
	"slices"

	"go.uber.org/zap"
)

// Disposer is implemented by owners with an explicit end of life. Animations
// whose owner reports IsDisposed stop on the next Update and complete with
// false.
type Disposer interface {
	IsDisposed() bool
}

type trackKey struct {
	owner any
	key   string
}

// Animator runs realized animations. It keeps at most one animation per
// (owner, key) pair: registering a second one under the same pair replaces
// the first, which completes with false.
//
// Animator is not safe for concurrent use. Call Update once per frame from the
// game loop, the same goroutine that starts and cancels animations.
type Animator struct {
	tracks   []*track
	index    map[trackKey]*track
	updating bool
	// pass counts Update calls; tracks started during a pass skip it.
	pass   uint64
	logger *zap.Logger
}

// NewAnimator creates an empty animator that logs nothing.
func NewAnimator() *Animator {
	return &Animator{
		index:  make(map[trackKey]*track),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used for lifecycle events. A nil logger disables
// logging.
func (a *Animator) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	a.logger = l
}

// Len returns the number of running animations.
func (a *Animator) Len() int {
	return len(a.index)
}

// Has reports whether an animation is registered for owner under key.
func (a *Animator) Has(owner any, key string) bool {
	_, ok := a.index[trackKey{owner, key}]
	return ok
}

// Keys returns the keys of the running animations of owner, in the order they
// were started.
func (a *Animator) Keys(owner any) []string {
	var keys []string
	for _, t := range a.tracks {
		if t.running && t.owner == owner {
			keys = append(keys, t.key)
		}
	}
	return keys
}

// Remove stops the animation registered for owner under key without firing
// its completion callback. It reports whether one was registered.
func (a *Animator) Remove(owner any, key string) bool {
	t, ok := a.index[trackKey{owner, key}]
	if !ok {
		return false
	}
	a.detach(t)
	a.logger.Debug("animation cancelled", zap.String("key", key), zap.String("name", t.name))
	return true
}

// RemoveAll stops every animation of owner without firing completion
// callbacks and returns how many were stopped.
func (a *Animator) RemoveAll(owner any) int {
	n := 0
	for _, t := range a.tracks {
		if t.running && t.owner == owner {
			a.detach(t)
			n++
		}
	}
	if n > 0 {
		a.logger.Debug("animations cancelled", zap.Int("count", n))
	}
	return n
}

// add primes t from its property and registers it, replacing any animation
// already registered under the same owner and key.
func (a *Animator) add(t *track) {
	k := trackKey{t.owner, t.key}
	if old, ok := a.index[k]; ok {
		a.logger.Debug("animation replaced", zap.String("key", t.key), zap.String("name", t.name))
		a.finish(old, false)
	}
	t.prime()
	t.running = true
	t.pass = a.pass
	a.index[k] = t
	// A track restarted from its own callbacks may still hold its slot.
	if !slices.Contains(a.tracks, t) {
		a.tracks = append(a.tracks, t)
	}
	a.logger.Debug("animation started",
		zap.String("key", t.key),
		zap.String("name", t.name),
		zap.Stringer("kind", t.kind),
		zap.Float64s("from", t.values))
}

// detach unregisters t. The slot in tracks is compacted after the current
// Update, or immediately when no Update is in progress.
func (a *Animator) detach(t *track) {
	if !t.running {
		return
	}
	t.running = false
	k := trackKey{t.owner, t.key}
	if a.index[k] == t {
		delete(a.index, k)
	}
	if !a.updating {
		a.compact()
	}
}

func (a *Animator) finish(t *track, completed bool) {
	a.detach(t)
	t.completed = completed
	if t.onComplete != nil {
		t.onComplete(completed)
	}
}

func (a *Animator) compact() {
	a.tracks = slices.DeleteFunc(a.tracks, func(t *track) bool { return !t.running })
}

// Update advances every animation registered before the call by dt seconds.
// For each one it writes the new value into the property and then fires, in
// order, the apply callback, the reached-target callback (once per run), and
// the completion callback when the motion has finished. Animations started
// from callbacks begin moving on the next Update.
func (a *Animator) Update(dt float32) {
	if a.updating {
		return
	}
	a.updating = true
	a.pass++
	defer func() {
		a.updating = false
		a.compact()
	}()

	n := len(a.tracks)
	for i := 0; i < n; i++ {
		t := a.tracks[i]
		if !t.running || t.pass == a.pass {
			continue
		}
		if d, ok := t.owner.(Disposer); ok && d.IsDisposed() {
			a.logger.Debug("animation interrupted: owner disposed", zap.String("key", t.key), zap.String("name", t.name))
			a.finish(t, false)
			continue
		}

		done := t.drv.step(dt, t.values, t.velocity)
		t.elapsed += dt
		t.write(t.values)

		if t.onApply != nil {
			t.onApply()
			if !t.running {
				continue
			}
		}
		if !t.reached && t.atTarget() {
			t.reached = true
			if t.onReached != nil {
				t.onReached()
				if !t.running {
					continue
				}
			}
		}
		if done {
			a.logger.Debug("animation finished",
				zap.String("key", t.key),
				zap.String("name", t.name),
				zap.Float32("elapsed", t.elapsed))
			a.finish(t, true)
		}
	}
}
