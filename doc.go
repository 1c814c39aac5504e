// Package fizzy is a typed animation layer for [Ebitengine] games.
//
// fizzy does not integrate physics itself. Timed motion runs on [gween]
// tweens and spring motion on [harmonica] springs; fizzy configures those
// engines from typed intents and drives any struct field through a pair of
// read/write closures.
//
// # Quick start
//
// Bind a property, describe the motion, start it, and advance the animator
// once per frame:
//
//	anim := fizzy.NewAnimator()
//	box := fizzy.NewNode("box", 40, 40)
//
//	a, err := fizzy.NodePosition(box).Animate(anim,
//		fizzy.GenericSpring(fizzy.Point{X: 200, Y: 120}, fizzy.Point{}))
//	if err != nil {
//		return err
//	}
//	a.OnComplete(func(done bool) { log.Println("settled:", done) }).Start()
//
//	// each frame:
//	anim.Update(dt)
//
// [Scene] bundles an Animator with a node list and draws the nodes; [Run]
// opens a window for it:
//
//	scene := fizzy.NewScene()
//	scene.Add(box)
//	fizzy.Run(scene, fizzy.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Values
//
// Anything implementing [Value] can be animated: [Scalar], [Point], [Size],
// [Rect] and [Color] ship with the package. A value flattens to a fixed
// number of float64 components and is rebuilt from them each frame; see
// [Marshal] and [Unmarshal].
//
// # Intents
//
// An [Intent] is an immutable description of motion before it is bound:
// [Basic] (target, duration, [Curve]), [Spring] (target, velocity,
// stiffness, speed) or [Decay] (velocity, damping). [Generic],
// [GenericSpring] and [GenericDecay] fill in defaults. Intents can also be
// loaded from YAML with [LoadPresets].
//
// # Animations
//
// [Property.Animate] realizes an intent under a fresh unique key and returns
// an [Animation] handle with chainable OnApply, OnComplete and
// OnReachedTarget hooks. Start and Cancel are idempotent. An owner holds at
// most one animation per key; starting another under the same key replaces
// it.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
package fizzy
