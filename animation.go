package fizzy

// Animation is the handle returned by Property.Animate. Callback setters
// return the handle so calls chain:
//
//	anim.OnApply(redraw).
//		OnComplete(func(done bool) { ... }).
//		Start()
//
// The handle adds nothing on top of the Animator: one animation per key per
// owner, last start wins.
type Animation[V Value[V]] struct {
	t      *track
	intent Intent[V]

	start  func()
	cancel func()
}

func newAnimation[V Value[V]](a *Animator, t *track, in Intent[V]) *Animation[V] {
	return &Animation[V]{
		t:      t,
		intent: in,
		start: func() {
			if !t.running {
				a.add(t)
			}
		},
		cancel: func() {
			if t.running {
				a.Remove(t.owner, t.key)
			}
		},
	}
}

// Key returns the key the animation is registered under.
func (a *Animation[V]) Key() string {
	return a.t.key
}

// Intent returns the intent the animation was realized from.
func (a *Animation[V]) Intent() Intent[V] {
	return a.intent
}

// Running reports whether the animation is registered and moving.
func (a *Animation[V]) Running() bool {
	return a.t.running
}

// OnApply sets the callback fired after each frame's value is written.
func (a *Animation[V]) OnApply(fn func()) *Animation[V] {
	a.t.onApply = fn
	return a
}

// OnComplete sets the callback fired when the animation ends. completed is
// true when the motion ran to its end and false when it was interrupted by a
// replacement or by its owner being disposed. Cancel does not fire it.
func (a *Animation[V]) OnComplete(fn func(completed bool)) *Animation[V] {
	a.t.onComplete = fn
	return a
}

// OnReachedTarget sets the callback fired the first frame the value comes
// within the property's threshold of the target. Decay motion has no target
// and never fires it.
func (a *Animation[V]) OnReachedTarget(fn func()) *Animation[V] {
	a.t.onReached = fn
	return a
}

// Start registers the animation and begins moving on the next Update, from
// the property's current value. Starting a running animation does nothing;
// starting a finished or cancelled one runs it again.
func (a *Animation[V]) Start() {
	a.start()
}

// Cancel stops the animation where it is. Cancelling an animation that is not
// running does nothing.
func (a *Animation[V]) Cancel() {
	a.cancel()
}
