package fizzy

// State is a snapshot of an animation at an instant in time.
type State[V Value[V]] struct {
	Key  string
	Name string
	Kind Kind

	// Intent holds the parameters the animation was realized from: duration
	// and curve for basic motion, stiffness and speed for springs, damping for
	// decay.
	Intent Intent[V]

	// Elapsed is the running time in seconds since the last Start.
	Elapsed float32
	// Value is the last value written to the property. Before the first
	// Update after Start it is the value read at Start.
	Value V
	// Velocity is in units per second.
	Velocity V

	Running   bool
	Reached   bool
	Completed bool
}

// State returns a snapshot of a. Value and Velocity are zero if the animation
// has never been started.
func (a *Animation[V]) State() State[V] {
	s := State[V]{
		Key:       a.t.key,
		Name:      a.t.name,
		Kind:      a.t.kind,
		Intent:    a.intent,
		Elapsed:   a.t.elapsed,
		Running:   a.t.running,
		Reached:   a.t.reached,
		Completed: a.t.completed,
	}
	if v, err := Unmarshal[V](a.t.values); err == nil {
		s.Value = v
	}
	if v, err := Unmarshal[V](a.t.velocity); err == nil {
		s.Velocity = v
	}
	return s
}
