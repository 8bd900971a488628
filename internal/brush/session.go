package brush

import "sort"

// Session is the brushing state of a single chart.
//
// Sessions are mutated only from the host's event loop and are not safe
// for concurrent use.
type Session struct {
	target string

	brushed bool
	steps   Stack[Bounds]

	// original is the un-brushed view. rebased marks an original that was
	// promoted from a brushed view, which keeps overriding the natural
	// range after the history is exhausted.
	original Bounds
	rebased  bool

	// override is the view applied on top of the natural data range while
	// brushed.
	override Bounds

	current    Bounds
	hasCurrent bool
}

func newSession(target string, natural Bounds) *Session {
	return &Session{target: target, original: natural}
}

// Target returns the chart identity the session belongs to.
func (s *Session) Target() string { return s.target }

// Brushed reports whether a non-original view is active.
func (s *Session) Brushed() bool { return s.brushed }

// Original returns the bounds the session falls back to when its history
// is exhausted.
func (s *Session) Original() Bounds { return s.original }

// Current returns the most recently applied bounds.
func (s *Session) Current() (Bounds, bool) { return s.current, s.hasCurrent }

// Depth returns the number of history entries.
func (s *Session) Depth() int { return s.steps.Len() }

// View returns the bounds currently displayed: the brushed view, or the
// original when not brushed.
func (s *Session) View() Bounds {
	if s.brushed {
		return s.override.Fill(s.original)
	}
	return s.original
}

// PushStep records b as the state to return to on the next zoom-out. It
// does nothing unless the session is already brushed: the state before the
// first zoom is the original and is recovered by popping to empty.
func (s *Session) PushStep(b Bounds) {
	if !s.brushed {
		return
	}
	s.steps.Push(b)
}

// PopStep removes and returns the most recent history entry.
func (s *Session) PopStep() (Bounds, bool) {
	return s.steps.Pop()
}

// ZoomIn applies next as the new view. Invalid bounds are rejected and
// leave the session untouched.
func (s *Session) ZoomIn(next Bounds) bool {
	if !next.Valid() {
		return false
	}
	s.PushStep(s.override)
	s.brushed = true
	s.override = next
	s.setCurrent(next)
	return true
}

// ZoomOut steps back one level of history. With an empty history it
// restores the original view and clears the brushed flag. It reports false
// when nothing changed because the session was not brushed.
func (s *Session) ZoomOut() (Bounds, bool) {
	if !s.brushed {
		return s.original, false
	}
	if prev, ok := s.PopStep(); ok {
		s.override = prev
		s.setCurrent(prev)
		return prev, true
	}
	s.restoreOriginal()
	return s.original, true
}

// Reset drops the history and restores the original view.
func (s *Session) Reset() Bounds {
	s.steps.Clear()
	s.restoreOriginal()
	return s.original
}

// SetAsBase makes the displayed view the new original and drops the
// history. The view itself does not change.
func (s *Session) SetAsBase() Bounds {
	view := s.View()
	if s.brushed || s.rebased {
		s.rebased = true
	}
	s.original = view
	s.steps.Clear()
	s.brushed = false
	s.override = Bounds{}
	s.setCurrent(view)
	return view
}

func (s *Session) restoreOriginal() {
	s.brushed = false
	s.override = Bounds{}
	s.setCurrent(s.original)
}

func (s *Session) setCurrent(b Bounds) {
	s.current = b
	s.hasCurrent = true
}

// activeOverride returns the bounds that replace the natural axis ranges.
func (s *Session) activeOverride() (Bounds, bool) {
	switch {
	case s.brushed:
		return s.override, true
	case s.rebased:
		return s.original, true
	}
	return Bounds{}, false
}

// Registry holds the brushing sessions of all charts owned by a host,
// keyed by chart target identity.
type Registry struct {
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Ensure returns the session for target. A missing or un-brushed session
// is (re)created with natural as its original bounds, so the original
// tracks the chart's data until the first zoom. Brushed and rebased
// sessions are returned unchanged.
func (r *Registry) Ensure(target string, natural Bounds) *Session {
	if s, ok := r.sessions[target]; ok && (s.brushed || s.rebased) {
		return s
	}
	s := newSession(target, natural)
	r.sessions[target] = s
	return s
}

// Get returns the session for target if one exists.
func (r *Registry) Get(target string) (*Session, bool) {
	s, ok := r.sessions[target]
	return s, ok
}

// Delete forgets the session for target.
func (r *Registry) Delete(target string) {
	delete(r.sessions, target)
}

// Targets returns the identities of all sessions in sorted order.
func (r *Registry) Targets() []string {
	targets := make([]string, 0, len(r.sessions))
	for t := range r.sessions {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

func (r *Registry) Len() int {
	return len(r.sessions)
}
