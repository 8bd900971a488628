package brush

import (
	"fmt"

	"github.com/wandb/chartbrush/internal/observability"
)

// GestureState is the phase of a pointer gesture.
type GestureState int

const (
	StateIdle GestureState = iota
	StatePressed
	StateDragging
	StateResolving
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	case StateResolving:
		return "resolving"
	}
	return fmt.Sprintf("GestureState(%d)", int(s))
}

// Action is what a completed gesture did to the view.
type Action int

const (
	// ActionNone means the gesture had no effect.
	ActionNone Action = iota
	ActionZoomIn
	ActionZoomOut
	ActionReset
	ActionRebase
	// ActionRejected means a drag resolved to invalid bounds.
	ActionRejected
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionReset:
		return "reset"
	case ActionRebase:
		return "rebase"
	case ActionRejected:
		return "rejected"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Outcome reports the result of a gesture or programmatic zoom.
type Outcome struct {
	Action Action
	Bounds Bounds
	Err    error
}

// Changed reports whether the view moved.
func (o Outcome) Changed() bool {
	switch o.Action {
	case ActionZoomIn, ActionZoomOut, ActionReset:
		return true
	}
	return false
}

// Options configures a Controller.
type Options struct {
	// Enabled turns brushing on. A disabled controller ignores pointers.
	Enabled bool

	// History makes a click without drag step back out of the last zoom.
	History bool

	// ManualRedraw suppresses Redraw; the host redraws on its own.
	ManualRedraw bool

	// Redraw is the host's redraw entry point, called with the bounds now
	// in effect after every successful zoom.
	Redraw func(Bounds)

	// OnBrush is called after Redraw with the new bounds. It is never
	// called for rejected gestures.
	OnBrush func(Bounds)
}

// DefaultOptions enables brushing with click-to-zoom-out.
func DefaultOptions() Options {
	return Options{Enabled: true, History: true}
}

// Controller turns pointer gestures on one chart into zooms of its
// Session.
type Controller struct {
	session  *Session
	resolver Resolver
	opts     Options
	logger   *observability.CoreLogger

	state  GestureState
	origin Point
	cursor Point

	// brushing is the in-progress visual flag, cleared on pointer down.
	brushing bool
}

func NewController(
	session *Session,
	resolver Resolver,
	opts Options,
	logger *observability.CoreLogger,
) *Controller {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	return &Controller{
		session:  session,
		resolver: resolver,
		opts:     opts,
		logger:   logger.With("target", session.Target()),
	}
}

func (c *Controller) Session() *Session   { return c.session }
func (c *Controller) Resolver() Resolver  { return c.resolver }
func (c *Controller) State() GestureState { return c.state }
func (c *Controller) Enabled() bool       { return c.opts.Enabled }

// SetResolver replaces the resolver, e.g. after the interval changes.
func (c *Controller) SetResolver(r Resolver) {
	c.resolver = r
}

// Brushing reports whether a selection is visibly in progress.
func (c *Controller) Brushing() bool {
	return c.brushing
}

// Dragging reports whether a selection rectangle is being drawn.
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Selection returns the candidate rectangle of the current gesture.
func (c *Controller) Selection() (Selection, bool) {
	if c.state != StatePressed && c.state != StateDragging {
		return Selection{}, false
	}
	return NewSelection(c.origin, c.cursor), true
}

// PointerDown starts a gesture at p.
func (c *Controller) PointerDown(p Point) {
	if !c.opts.Enabled {
		return
	}
	c.state = StatePressed
	c.origin = p
	c.cursor = p
	c.brushing = false
}

// PointerMove grows the candidate rectangle. Moves outside a gesture, and
// moves that have not left the press position, are ignored.
func (c *Controller) PointerMove(p Point) {
	if c.state != StatePressed && c.state != StateDragging {
		return
	}
	if c.state == StatePressed && p == c.origin {
		return
	}
	c.state = StateDragging
	c.brushing = true
	c.cursor = p
}

// PointerUp finishes the gesture. A drag zooms into the resolved
// selection; a click zooms out when history is enabled.
func (c *Controller) PointerUp(p Point, v View) Outcome {
	switch c.state {
	case StatePressed, StateDragging:
	default:
		return Outcome{}
	}
	dragged := c.state == StateDragging
	if dragged {
		c.cursor = p
	}
	c.state = StateResolving
	defer func() {
		c.state = StateIdle
		c.brushing = false
	}()

	if !dragged {
		if !c.opts.History {
			return Outcome{}
		}
		return c.ZoomOut()
	}

	sel := NewSelection(c.origin, c.cursor).Cover(v.Cell)
	b, err := c.resolver.Resolve(sel, v)
	if err != nil {
		c.logger.Debug(fmt.Sprintf("brush: selection rejected: %v", err))
		return Outcome{Action: ActionRejected, Err: err}
	}
	return c.ZoomIn(b)
}

// ZoomIn applies b as a new zoom level.
func (c *Controller) ZoomIn(b Bounds) Outcome {
	if !c.session.ZoomIn(b) {
		c.logger.Debug("brush: rejected invalid bounds", "bounds", b.String())
		return Outcome{Action: ActionRejected, Bounds: b, Err: ErrDegenerateSelection}
	}
	return c.notify(Outcome{Action: ActionZoomIn, Bounds: b})
}

// ZoomOut steps back one zoom level.
func (c *Controller) ZoomOut() Outcome {
	b, changed := c.session.ZoomOut()
	if !changed {
		return Outcome{Bounds: b}
	}
	return c.notify(Outcome{Action: ActionZoomOut, Bounds: b})
}

// Reset discards the zoom history and restores the original view.
func (c *Controller) Reset() Outcome {
	wasBrushed := c.session.Brushed() || c.session.Depth() > 0
	b := c.session.Reset()
	if !wasBrushed {
		return Outcome{Bounds: b}
	}
	return c.notify(Outcome{Action: ActionReset, Bounds: b})
}

// SetAsBase makes the current view the original one. The view does not
// move, so neither Redraw nor OnBrush is called.
func (c *Controller) SetAsBase() Outcome {
	return Outcome{Action: ActionRebase, Bounds: c.session.SetAsBase()}
}

func (c *Controller) notify(o Outcome) Outcome {
	if !o.Bounds.Valid() {
		return Outcome{Action: ActionRejected, Bounds: o.Bounds, Err: ErrDegenerateSelection}
	}
	c.logger.Debug("brush: view changed", "action", o.Action.String(), "bounds", o.Bounds.String())
	if !c.opts.ManualRedraw && c.opts.Redraw != nil {
		c.opts.Redraw(o.Bounds)
	}
	if c.opts.OnBrush != nil {
		c.opts.OnBrush(o.Bounds)
	}
	return o
}
