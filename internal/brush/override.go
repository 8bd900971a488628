package brush

import "math"

// OverrideXRange substitutes the brushed x range for the natural one. The
// brushed range is intersected with the natural range.
func (s *Session) OverrideXRange(naturalMin, naturalMax float64) (float64, float64) {
	b, ok := s.activeOverride()
	if !ok || !b.HasX() {
		return naturalMin, naturalMax
	}
	return math.Max(naturalMin, b.X.Min), math.Min(naturalMax, b.X.Max)
}

// OverrideYRange returns the brushed y range, which replaces the natural
// range outright rather than being intersected with it.
func (s *Session) OverrideYRange() (Range, bool) {
	b, ok := s.activeOverride()
	if !ok || !b.HasY() {
		return Range{}, false
	}
	return b.Y, true
}
