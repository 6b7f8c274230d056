// Package reveal schedules the progressive drawing of the wormhole mesh.
//
// The reveal runs in two phases. Longitudinal lines (constant longitude) are drawn first,
// one segment per tick, then circumferential lines (constant depth). A State is a plain
// value: Advance returns the next one and never touches shared storage, so the renderer
// can read a consistent snapshot every frame.
package reveal

import "fmt"

// Phase is the kind of line currently being drawn.
type Phase uint8

const (
	Longitudinal Phase = iota
	Circumferential
)

func (p Phase) String() string {
	switch p {
	case Longitudinal:
		return "longitudinal"
	case Circumferential:
		return "circumferential"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Limits are the mesh subdivisions the reveal walks over.
type Limits struct {
	Longitudes int // L
	Depths     int // D
}

// LineLimit is the last line index of phase p. Longitudinal lines exist per longitude,
// circumferential lines per depth.
func (l Limits) LineLimit(p Phase) int {
	if p == Longitudinal {
		return l.Longitudes
	}
	return l.Depths
}

// SegmentLimit is the last segment index of a line in phase p. A longitudinal line sweeps
// across depth steps and a circumferential line across longitude steps.
func (l Limits) SegmentLimit(p Phase) int {
	if p == Longitudinal {
		return l.Depths
	}
	return l.Longitudes
}

// PhaseTicks is the number of ticks phase p takes.
func (l Limits) PhaseTicks(p Phase) int {
	return (l.LineLimit(p) + 1) * (l.SegmentLimit(p) + 1)
}

// TotalTicks is the number of ticks from the initial state to completion.
func (l Limits) TotalTicks() int {
	return l.PhaseTicks(Longitudinal) + l.PhaseTicks(Circumferential)
}

// State is how much of the mesh has been revealed.
// Line and Segment index into the current phase. Once Complete is set the state is frozen
// at the last segment of the last circumferential line.
type State struct {
	Phase    Phase
	Line     int
	Segment  int
	Complete bool
}

// Start is the state before the first tick.
func Start() State {
	return State{Phase: Longitudinal}
}

// Final is the frozen state reached after TotalTicks ticks.
func Final(lim Limits) State {
	return State{
		Phase:    Circumferential,
		Line:     lim.LineLimit(Circumferential),
		Segment:  lim.SegmentLimit(Circumferential),
		Complete: true,
	}
}

func (s State) String() string {
	if s.Complete {
		return "complete"
	}
	return fmt.Sprintf("%s line=%d seg=%d", s.Phase, s.Line, s.Segment)
}

// Check reports an index outside the bounds of the state's phase.
func (s State) Check(lim Limits) error {
	if lim.Longitudes < 1 || lim.Depths < 1 {
		return fmt.Errorf("reveal: invalid limits %+v", lim)
	}
	if s.Phase != Longitudinal && s.Phase != Circumferential {
		return fmt.Errorf("reveal: unknown %s", s.Phase)
	}
	if s.Complete && s != Final(lim) {
		return fmt.Errorf("reveal: complete state %+v is not final", s)
	}
	if s.Line < 0 || s.Line > lim.LineLimit(s.Phase) {
		return fmt.Errorf("reveal: line %d outside [0,%d] in %s phase", s.Line, lim.LineLimit(s.Phase), s.Phase)
	}
	if s.Segment < 0 || s.Segment > lim.SegmentLimit(s.Phase) {
		return fmt.Errorf("reveal: segment %d outside [0,%d] in %s phase", s.Segment, lim.SegmentLimit(s.Phase), s.Phase)
	}
	return nil
}

// Advance returns the state one tick after s. A complete state is returned unchanged.
// It panics if s is out of bounds for lim, which can only come from a programming error.
func Advance(s State, lim Limits) State {
	if err := s.Check(lim); err != nil {
		panic(err)
	}
	if s.Complete {
		return s
	}

	s.Segment++
	if s.Segment > lim.SegmentLimit(s.Phase) {
		s.Segment = 0
		s.Line++
	}

	switch {
	case s.Phase == Longitudinal && s.Line > lim.LineLimit(Longitudinal):
		return State{Phase: Circumferential}
	case s.Phase == Circumferential && s.Line > lim.LineLimit(Circumferential):
		return Final(lim)
	}
	return s
}

// Elapsed is the number of ticks it takes to get from Start to s.
func Elapsed(s State, lim Limits) int {
	if s.Complete {
		return lim.TotalTicks()
	}
	n := s.Line*(lim.SegmentLimit(s.Phase)+1) + s.Segment
	if s.Phase == Circumferential {
		n += lim.PhaseTicks(Longitudinal)
	}
	return n
}

// Progress is Elapsed as a fraction of TotalTicks, in [0,1].
func Progress(s State, lim Limits) float32 {
	return float32(Elapsed(s, lim)) / float32(lim.TotalTicks())
}
