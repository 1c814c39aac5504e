package fizzy

import "slices"

// NodeAt returns the topmost visible node whose Frame contains p, or nil.
// Nodes are tested in reverse painter order: highest ZIndex first, and among
// equal ZIndex the most recently added. Rotation is ignored.
func (s *Scene) NodeAt(p Point) *Node {
	s.hitBuf = append(s.hitBuf[:0], s.nodes...)
	slices.SortStableFunc(s.hitBuf, func(a, b *Node) int { return a.ZIndex - b.ZIndex })

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if !n.Visible || n.disposed {
			continue
		}
		if n.Frame().Contains(p) {
			return n
		}
	}
	return nil
}
