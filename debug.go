package spark

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-update timing and particle counts.
// Only populated when System.debug is true.
type debugStats struct {
	updateTime time.Duration
	emitters   int
	particles  int
}

// debugLog prints update stats to stderr.
func (s *System) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[spark] t=%.3f | update: %v | emitters: %d | particles: %d\n",
		s.now, stats.updateTime, stats.emitters, stats.particles)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// emitter is used. Only called in debug mode.
func debugCheckDestroyed(e *Emitter, op string) {
	if e.destroyed {
		panic(fmt.Sprintf("spark debug: %s on destroyed emitter %q", op, e.Name))
	}
}

// debugSaturated warns on stderr when an emitter could not create every
// particle its generator asked for.
func debugSaturated(e *Emitter, requested, added int) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[spark] warning: emitter %q full (cap %d), dropped %d of %d particles\n",
		e.Name, e.buffer.Cap(), requested-added, requested)
}
