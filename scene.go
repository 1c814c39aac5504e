package fizzy

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene owns a flat list of nodes and the Animator that moves them.
type Scene struct {
	nodes    []*Node
	animator *Animator
	logger   *zap.Logger
	debug    bool

	// ClearColor fills the screen before nodes are drawn. A zero alpha skips
	// the fill.
	ClearColor Color

	updateFunc func() error
	sortBuf    []*Node
	hitBuf     []*Node
	white      *ebiten.Image
}

// NewScene creates an empty scene with its own Animator.
func NewScene() *Scene {
	return &Scene{
		animator: NewAnimator(),
		logger:   zap.NewNop(),
	}
}

// Animator returns the animator advanced by Step.
func (s *Scene) Animator() *Animator {
	return s.animator
}

// SetLogger sets the logger for the scene and its animator.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
	s.animator.SetLogger(l)
}

// SetDebugMode enables or disables debug mode. When enabled, a development
// logger is installed, adding a disposed node panics, and per-frame update
// stats are logged.
func (s *Scene) SetDebugMode(enabled bool) error {
	s.debug = enabled
	if !enabled {
		s.SetLogger(nil)
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	s.SetLogger(l.Named("fizzy"))
	return nil
}

// SetUpdateFunc sets a callback run at the start of every Step, before
// animations advance. An error from it ends Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Add appends node to the scene. Adding a node twice does nothing.
func (s *Scene) Add(node *Node) {
	if s.debug {
		debugCheckDisposed(node, "Add")
	}
	if slices.Contains(s.nodes, node) {
		return
	}
	s.nodes = append(s.nodes, node)
}

// Remove takes node out of the scene and cancels its animations.
func (s *Scene) Remove(node *Node) {
	i := slices.Index(s.nodes, node)
	if i < 0 {
		return
	}
	s.nodes = slices.Delete(s.nodes, i, i+1)
	s.animator.RemoveAll(node)
}

// Nodes returns the scene's nodes. The returned slice MUST NOT be mutated.
func (s *Scene) Nodes() []*Node {
	return s.nodes
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() error {
	return s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step runs the update callback, advances animations by dt seconds, and drops
// disposed nodes.
func (s *Scene) Step(dt float32) error {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	if s.debug {
		stats.callbackTime = time.Since(t0)
		stats.animations = s.animator.Len()
		t0 = time.Now()
	}

	s.animator.Update(dt)

	if s.debug {
		stats.animateTime = time.Since(t0)
	}

	before := len(s.nodes)
	s.nodes = slices.DeleteFunc(s.nodes, (*Node).IsDisposed)
	stats.pruned = before - len(s.nodes)

	if s.debug {
		s.debugLog(stats)
	}
	return nil
}

// Draw fills the screen with ClearColor and draws every visible node as a
// tinted quad, lowest ZIndex first. Nodes with equal ZIndex keep insertion
// order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	if s.white == nil {
		s.white = ebiten.NewImage(1, 1)
		s.white.Fill(ColorWhite.toRGBA())
	}

	s.sortBuf = append(s.sortBuf[:0], s.nodes...)
	slices.SortStableFunc(s.sortBuf, func(a, b *Node) int { return a.ZIndex - b.ZIndex })

	var op ebiten.DrawImageOptions
	for _, n := range s.sortBuf {
		if !n.Visible || n.disposed || n.Alpha <= 0 {
			continue
		}
		op.GeoM = n.transform()
		op.ColorScale.Reset()
		a := n.Color.A * n.Alpha
		op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
		screen.DrawImage(s.white, &op)
	}
}
