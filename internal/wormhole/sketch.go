// Package wormhole drives the progressive wormhole mesh: each tick paints the revealed
// part of the mesh and then advances the reveal by one segment.
package wormhole

import (
	"fmt"
	"log/slog"

	"sketchlab/internal/mesh"
	"sketchlab/internal/reveal"
)

// Sketch ties the mesh renderer to its reveal scheduler.
type Sketch struct {
	Mesh  *mesh.Mesh
	sched *reveal.Scheduler
	log   *slog.Logger
	ticks uint64
}

// New returns a sketch at the start of the reveal. log may be nil.
func New(m *mesh.Mesh, log *slog.Logger) *Sketch {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Sketch{
		Mesh:  m,
		sched: reveal.NewScheduler(m.Limits()),
		log:   log,
	}
}

// State returns the reveal state the next Tick will draw.
func (s *Sketch) State() reveal.State {
	return s.sched.State()
}

// Done reports whether the whole mesh is revealed.
func (s *Sketch) Done() bool {
	return s.sched.Done()
}

// Ticks is the number of Tick calls so far.
func (s *Sketch) Ticks() uint64 {
	return s.ticks
}

// Tick draws the current state onto dst, then advances the reveal unless complete.
// Drawing keeps going after completion so the finished mesh can still be orbited.
func (s *Sketch) Tick(dst mesh.Surface) {
	s.ticks++
	s.Mesh.Render(dst, s.sched.State())
	if s.sched.Done() {
		return
	}
	st, ev := s.sched.Step()
	switch ev {
	case reveal.EventPhase:
		s.log.Info("longitudinal lines drawn", "tick", s.ticks, "next", st.Phase)
	case reveal.EventComplete:
		s.log.Info("wormhole complete", "tick", s.ticks, "vertices", s.Mesh.VertexCount(st))
	case reveal.EventLine:
		s.log.Debug("line drawn", "phase", st.Phase, "line", st.Line-1)
	}
}

// Status is a one-line progress summary for overlays.
func (s *Sketch) Status() string {
	st := s.sched.State()
	return fmt.Sprintf("%s  %3.0f%%", st, 100*reveal.Progress(st, s.sched.Limits()))
}
