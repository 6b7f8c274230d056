package reveal

// Event describes what a Step changed beyond moving one segment forward.
type Event uint8

const (
	EventNone Event = iota
	EventLine       // a line was finished and the next one started
	EventPhase      // longitudinal lines are done, circumferential lines start
	EventComplete   // the whole mesh is drawn
)

// Scheduler owns the reveal state of one sketch and advances it once per tick.
type Scheduler struct {
	limits Limits
	state  State
}

// NewScheduler returns a scheduler at the start state. It panics on limits below 1.
func NewScheduler(lim Limits) *Scheduler {
	s := Start()
	if err := s.Check(lim); err != nil {
		panic(err)
	}
	return &Scheduler{limits: lim, state: s}
}

// Limits returns the subdivisions the scheduler walks over.
func (s *Scheduler) Limits() Limits {
	return s.limits
}

// State returns the current state.
func (s *Scheduler) State() State {
	return s.state
}

// Done reports whether the reveal is complete.
func (s *Scheduler) Done() bool {
	return s.state.Complete
}

// Step advances one tick and returns the new state along with what changed.
// Once complete, Step is a no-op returning EventNone.
func (s *Scheduler) Step() (State, Event) {
	prev := s.state
	next := Advance(prev, s.limits)
	s.state = next

	switch {
	case prev.Complete:
		return next, EventNone
	case next.Complete:
		return next, EventComplete
	case next.Phase != prev.Phase:
		return next, EventPhase
	case next.Line != prev.Line:
		return next, EventLine
	}
	return next, EventNone
}
