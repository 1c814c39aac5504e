package fizzy

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and animation metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	callbackTime time.Duration
	animateTime  time.Duration
	animations   int
	pruned       int
}

// debugLog reports one frame's stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		zap.Duration("callback", stats.callbackTime),
		zap.Duration("animate", stats.animateTime),
		zap.Int("animations", stats.animations),
		zap.Int("nodes", len(s.nodes)),
		zap.Int("pruned", stats.pruned))
	if stats.animations > debugMaxAnimations {
		s.logger.Warn("animation count exceeds threshold",
			zap.Int("animations", stats.animations),
			zap.Int("threshold", debugMaxAnimations))
	}
}

// debugMaxAnimations is the running-animation count above which debug mode
// warns every frame.
const debugMaxAnimations = 1000

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a scene operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("fizzy debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}
