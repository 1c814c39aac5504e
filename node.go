package fizzy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic, fizzy is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a solid, tintable quad drawn by a Scene. It is the host object the
// Node* property constructors bind to; any other struct can be animated the
// same way with NewProperty.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Transform (local)
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	PivotX        float64 // normalized, 0.5 is the center
	PivotY        float64

	// Appearance
	Alpha   float64
	Color   Color
	Visible bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any

	geoM           ebiten.GeoM
	transformDirty bool
	disposed       bool
}

// NewNode creates a visible white node of the given size at the origin.
func NewNode(name string, width, height float64) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Width:          width,
		Height:         height,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Color:          ColorWhite,
		Visible:        true,
		transformDirty: true,
	}
}

// MarkDirty flags the cached transform for recomputation. Call it after
// changing transform fields directly; the Node* properties call it for you.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// Dispose marks the node as dead. A Scene drops it on its next Step and any
// animation bound to it stops, completing with false.
func (n *Node) Dispose() {
	n.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// Frame returns the node's unrotated bounds after scale and pivot.
func (n *Node) Frame() Rect {
	w := n.Width * n.ScaleX
	h := n.Height * n.ScaleY
	return Rect{
		Origin: Point{X: n.X - n.PivotX*w, Y: n.Y - n.PivotY*h},
		Size:   Size{Width: w, Height: h},
	}
}

// transform returns the matrix mapping the unit square to the node's quad,
// recomputing it only when the node is dirty.
func (n *Node) transform() ebiten.GeoM {
	if !n.transformDirty {
		return n.geoM
	}
	w := n.Width * n.ScaleX
	h := n.Height * n.ScaleY
	var m ebiten.GeoM
	m.Scale(w, h)
	m.Translate(-n.PivotX*w, -n.PivotY*h)
	if n.Rotation != 0 {
		m.Rotate(n.Rotation)
	}
	m.Translate(n.X, n.Y)
	n.geoM = m
	n.transformDirty = false
	return m
}

// --- bindings ---

// NodePosition binds node.X and node.Y.
func NodePosition(node *Node) Property[Node, Point] {
	return NewProperty(node,
		func(n *Node) Point { return Point{X: n.X, Y: n.Y} },
		func(n *Node, p Point) {
			n.X, n.Y = p.X, p.Y
			n.MarkDirty()
		},
	).Named(node.Name + ".position")
}

// NodeScale binds node.ScaleX and node.ScaleY.
func NodeScale(node *Node) Property[Node, Size] {
	return NewProperty(node,
		func(n *Node) Size { return Size{Width: n.ScaleX, Height: n.ScaleY} },
		func(n *Node, s Size) {
			n.ScaleX, n.ScaleY = s.Width, s.Height
			n.MarkDirty()
		},
	).Named(node.Name + ".scale").WithThreshold(0.001)
}

// NodeFrame binds position and size together as a Rect with X, Y as the
// origin and Width, Height as the size.
func NodeFrame(node *Node) Property[Node, Rect] {
	return NewProperty(node,
		func(n *Node) Rect {
			return Rect{Origin: Point{X: n.X, Y: n.Y}, Size: Size{Width: n.Width, Height: n.Height}}
		},
		func(n *Node, r Rect) {
			n.X, n.Y = r.Origin.X, r.Origin.Y
			n.Width, n.Height = r.Size.Width, r.Size.Height
			n.MarkDirty()
		},
	).Named(node.Name + ".frame")
}

// NodeAlpha binds node.Alpha.
func NodeAlpha(node *Node) Property[Node, Scalar] {
	return NewProperty(node,
		func(n *Node) Scalar { return Scalar(n.Alpha) },
		func(n *Node, v Scalar) { n.Alpha = float64(v) },
	).Named(node.Name + ".alpha").WithThreshold(0.001)
}

// NodeRotation binds node.Rotation, in radians.
func NodeRotation(node *Node) Property[Node, Scalar] {
	return NewProperty(node,
		func(n *Node) Scalar { return Scalar(n.Rotation) },
		func(n *Node, v Scalar) {
			n.Rotation = float64(v)
			n.MarkDirty()
		},
	).Named(node.Name + ".rotation").WithThreshold(0.001)
}

// NodeTint binds all four components of node.Color.
func NodeTint(node *Node) Property[Node, Color] {
	return NewProperty(node,
		func(n *Node) Color { return n.Color },
		func(n *Node, c Color) { n.Color = c },
	).Named(node.Name + ".tint").WithThreshold(0.001)
}
