package swipe

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"gioui.org/f32"
	"gioui.org/unit"
	"github.com/oklog/ulid/v2"
	"golang.org/x/exp/slices"
)

// Container is the host side of a swipeable panel.
type Container interface {
	// Rect returns the panel's resting rectangle, in the coordinate space of
	// the pointer events.
	Rect() image.Rectangle
	// RequestRedraw asks the host to draw a new frame.
	RequestRedraw()
	// RequestAnimationFrame asks the host to call Tick on the next frame.
	RequestAnimationFrame()
	// Dismiss is called once the panel has been swiped away completely.
	Dismiss()
}

// Session is the state of one gesture, from capture until the panel comes to
// rest.
type Session struct {
	ID      string
	Pointer PointerID
	Edge    Edge
	Offset  f32.Point
	// Velocity is the release velocity, in pixels per second. It is zero
	// until the pointer is released and after a cancellation.
	Velocity f32.Point
	// Target is the offset the panel settles toward after release.
	Target f32.Point
	// Dismissing is set if Target is the dismissed position.
	Dismissing bool
}

type listener struct {
	id string
	fn func(StateEvent)
}

// Controller turns pointer events into panel offsets and decides whether a
// released panel is dismissed or restored. All methods must be called from
// the goroutine that delivers pointer events and frames.
type Controller struct {
	cfg     Config
	metric  unit.Metric
	tracker Tracker

	container Container
	state     DragState
	session   *Session
	// rest is the offset of the panel while no session exists.
	rest     f32.Point
	progress float32
	// dismissed latches Dismiss for the most recent gesture.
	dismissed bool
	shadow    map[Edge]int

	listeners []listener
	log       *slog.Logger
}

// New returns a controller for cfg. metric converts cfg's dp values to
// pixels; its zero value maps one dp to one pixel.
func New(cfg Config, metric unit.Metric) *Controller {
	c := &Controller{
		shadow: make(map[Edge]int),
		log:    slog.New(slog.DiscardHandler),
	}
	c.metric = metric
	c.SetConfig(cfg)
	return c
}

func (c *Controller) px(v unit.Dp) float32 {
	ppd := c.metric.PxPerDp
	if ppd == 0 {
		ppd = 1
	}
	return float32(v) * ppd
}

// SetLogger sets the logger used for state transitions. A nil logger
// discards.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	c.log = l
}

// SetConfig replaces the controller's configuration. A gesture in progress
// keeps going; the new values apply to the gestures after it, except for
// Enabled, which takes effect immediately.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg.withDefaults()
	c.tracker.EdgeSize = c.px(c.cfg.EdgeSize)
	c.tracker.Window = c.cfg.VelocityWindow
}

func (c *Controller) Config() Config { return c.cfg }

// SetMetric updates the pixel density used to resolve dp values.
func (c *Controller) SetMetric(m unit.Metric) {
	if m == c.metric {
		return
	}
	c.metric = m
	c.tracker.EdgeSize = c.px(c.cfg.EdgeSize)
}

// SetEnabled enables or disables the controller. Disabling only blocks new
// gestures; one that is in progress completes normally.
func (c *Controller) SetEnabled(enabled bool) { c.cfg.Enabled = enabled }

func (c *Controller) Enabled() bool { return c.cfg.Enabled }

func (c *Controller) SetEdgeMask(m EdgeMask) { c.cfg.EdgeMask = m }

func (c *Controller) SetEdgeSize(size unit.Dp) {
	c.cfg.EdgeSize = size
	c.SetConfig(c.cfg)
}

func (c *Controller) SetScrimColor(col color.NRGBA) { c.cfg.ScrimColor = col }

// SetShadowExtent sets the thickness, in pixels, of the shadow drawn along
// edge. Swipes from edge travel the panel's extent plus this thickness
// before the panel counts as gone.
func (c *Controller) SetShadowExtent(edge Edge, px int) {
	c.shadow[edge] = max(px, 0)
}

func (c *Controller) ShadowExtent(edge Edge) int { return c.shadow[edge] }

// Attach connects the controller to the container of its panel.
func (c *Controller) Attach(ct Container) {
	c.container = ct
}

// Detach disconnects the controller from its container and abandons any
// gesture in progress without dismissing the panel.
func (c *Controller) Detach() {
	c.container = nil
	c.tracker.Reset()
	if c.session != nil {
		sess := c.session
		c.session = nil
		c.rest = f32.Point{}
		c.progress = 0
		c.setState(StateIdle, sess, false)
	}
}

// Reset returns a panel that has come to rest back to its resting position.
// It has no effect while a gesture is in progress.
func (c *Controller) Reset() {
	if c.session != nil {
		return
	}
	c.rest = f32.Point{}
	c.progress = 0
	c.dismissed = false
}

func (c *Controller) State() DragState { return c.state }

// Progress reports how far the panel has moved toward being dismissed, from
// 0 (in place) to 1 (gone).
func (c *Controller) Progress() float32 { return c.progress }

// Offset returns the panel's current displacement from its resting
// rectangle.
func (c *Controller) Offset() f32.Point {
	if c.session != nil {
		return c.session.Offset
	}
	return c.rest
}

// Session returns a copy of the current gesture's state, if there is one.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Subscribe registers fn to be called on every state transition and returns
// an ID for Unsubscribe.
func (c *Controller) Subscribe(fn func(StateEvent)) string {
	id := ulid.Make().String()
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return id
}

// Unsubscribe removes the listener registered under id and reports whether
// it existed.
func (c *Controller) Unsubscribe(id string) bool {
	i := slices.IndexFunc(c.listeners, func(l listener) bool { return l.id == id })
	if i == -1 {
		return false
	}
	c.listeners = slices.Delete(c.listeners, i, i+1)
	return true
}

// setState transitions to s and notifies listeners. sess is the gesture
// that caused the transition, if any.
func (c *Controller) setState(s DragState, sess *Session, dismissed bool) {
	if s == c.state {
		return
	}
	old := c.state
	c.state = s
	ev := StateEvent{
		State:     s,
		Progress:  c.progress,
		Dismissed: dismissed,
	}
	var sid string
	if sess != nil {
		sid = sess.ID
		ev.Edge = sess.Edge
		ev.Dismissing = s == StateSettling && sess.Dismissing
	}
	c.log.Debug("swipe state changed",
		"from", old,
		"to", s,
		"session", sid,
		"edge", ev.Edge,
		"progress", c.progress)

	// Listeners may unsubscribe from within the callback.
	for _, l := range slices.Clone(c.listeners) {
		l.fn(ev)
	}
}

// ShouldIntercept reports whether ev belongs to a swipe and should be
// withheld from the panel's content. A press inside an edge band captures
// the pointer; every later event of that gesture is intercepted. Disabled
// controllers intercept nothing.
func (c *Controller) ShouldIntercept(ev PointerEvent) bool {
	if !c.cfg.Enabled {
		return false
	}
	if c.session != nil {
		return c.state == StateDragging
	}
	if ev.Phase != Down || c.state != StateIdle {
		return false
	}
	return c.capture(ev)
}

func (c *Controller) capture(ev PointerEvent) bool {
	if c.container == nil {
		return false
	}
	c.tracker.Down(ev.Pointer, ev.Position, ev.Time)
	edge, ok := c.tracker.TryCapture(ev.Position, c.container.Rect(), c.cfg.EdgeMask).Get()
	if !ok {
		c.tracker.Reset()
		return false
	}
	c.session = &Session{
		ID:      ulid.Make().String(),
		Pointer: ev.Pointer,
		Edge:    edge,
	}
	c.rest = f32.Point{}
	c.progress = 0
	c.dismissed = false
	c.setState(StateDragging, c.session, false)
	return true
}

// HandleEvent processes ev. Moves of the captured pointer drag the panel;
// its release or a cancellation starts settling. Events of other pointers
// and events without a captured pointer are dropped. It reports whether the
// event was consumed, which is always the case while the controller is
// enabled or a drag is in progress.
func (c *Controller) HandleEvent(ev PointerEvent) bool {
	if c.session == nil || c.state != StateDragging {
		if !c.cfg.Enabled {
			return false
		}
		if ev.Phase == Down && c.state == StateIdle {
			c.capture(ev)
		}
		return true
	}

	switch ev.Phase {
	case Move:
		if d, ok := c.tracker.Move(ev.Pointer, ev.Position, ev.Time); ok {
			c.drag(d)
		}
	case Up:
		if v, ok := c.tracker.Release(ev.Pointer, ev.Position, ev.Time); ok {
			c.release(v)
		}
	case Cancel:
		c.tracker.Cancel()
		c.release(f32.Point{})
	}
	return true
}

func extent(edge Edge, r image.Rectangle) float32 {
	if edge.Vertical() {
		return float32(r.Dy())
	}
	return float32(r.Dx())
}

func axis(edge Edge, p f32.Point) float32 {
	if edge.Vertical() {
		return p.Y
	}
	return p.X
}

func onAxis(edge Edge, v float32) f32.Point {
	if edge.Vertical() {
		return f32.Pt(0, v)
	}
	return f32.Pt(v, 0)
}

// fullExtent is the distance a panel travels from rest to dismissal.
func (c *Controller) fullExtent(edge Edge) float32 {
	return extent(edge, c.container.Rect()) + float32(c.shadow[edge])
}

func (c *Controller) drag(d f32.Point) {
	s := c.session
	ext := extent(s.Edge, c.container.Rect())
	s.Offset = onAxis(s.Edge, Clamp(s.Edge, axis(s.Edge, s.Offset)+axis(s.Edge, d), ext))
	c.updateProgress()
	c.container.RequestRedraw()
}

func (c *Controller) updateProgress() {
	s := c.session
	full := c.fullExtent(s.Edge)
	c.progress = Progress(axis(s.Edge, s.Offset), full)
}

// Progress returns |offset| / full, clamped to [0, 1]. full is the distance
// at which the panel is gone: its extent plus its shadow's thickness.
func Progress(offset, full float32) float32 {
	if full <= 0 {
		return 0
	}
	return clamp(float32(math.Abs(float64(offset)))/full, 0, 1)
}

// ReleaseTarget decides where a panel released with the given velocity
// (along the edge's axis) and progress settles. A velocity above threshold
// wins over the position: flinging toward dismissal returns the dismissed
// offset, flinging back returns 0. Slower releases are dismissed once the
// panel is at least half way.
func ReleaseTarget(edge Edge, velocity, progress, threshold, full float32) float32 {
	opening := velocity * edge.sign()
	switch {
	case opening > threshold:
		return edge.sign() * full
	case opening < -threshold:
		return 0
	case progress >= 0.5:
		return edge.sign() * full
	default:
		return 0
	}
}

func (c *Controller) release(v f32.Point) {
	s := c.session
	s.Velocity = v
	full := c.fullExtent(s.Edge)
	target := ReleaseTarget(s.Edge, axis(s.Edge, v), c.progress, c.px(c.cfg.MinFlingVelocity), full)
	s.Target = onAxis(s.Edge, target)
	s.Dismissing = target != 0
	c.startSettling()
}

func (c *Controller) startSettling() {
	c.setState(StateSettling, c.session, false)
	c.container.RequestRedraw()
	c.container.RequestAnimationFrame()
}

// ScrollToFinish animates the panel off screen along the first enabled edge
// and dismisses it, as if it had been flung away. It reports whether the
// animation started; it doesn't while a gesture is in progress, nor for a
// panel that has already been dismissed and not Reset since.
func (c *Controller) ScrollToFinish() bool {
	if c.container == nil || c.state != StateIdle || c.dismissed {
		return false
	}
	edges := c.cfg.EdgeMask.Edges()
	if len(edges) == 0 {
		return false
	}
	r := c.container.Rect()
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return false
	}
	edge := edges[0]
	c.session = &Session{
		ID:         ulid.Make().String(),
		Edge:       edge,
		Offset:     c.rest,
		Target:     onAxis(edge, edge.sign()*c.fullExtent(edge)),
		Dismissing: true,
	}
	c.dismissed = false
	c.updateProgress()
	c.startSettling()
	return true
}

// Tick advances the settle animation by dt. It reports whether the panel is
// still moving, in which case the host must call Tick again on the next
// frame. When the panel arrives at a dismissal target, Container.Dismiss is
// called, once per gesture.
func (c *Controller) Tick(dt time.Duration) bool {
	if c.state != StateSettling || c.session == nil {
		return false
	}
	if dt <= 0 {
		return true
	}
	s := c.session
	cur := axis(s.Edge, s.Offset)
	target := axis(s.Edge, s.Target)
	step := c.px(c.cfg.SettleSpeed) * float32(dt.Seconds())
	remaining := target - cur

	arrived := float32(math.Abs(float64(remaining))) <= step
	if arrived {
		cur = target
	} else if remaining > 0 {
		cur += step
	} else {
		cur -= step
	}
	s.Offset = onAxis(s.Edge, cur)
	c.updateProgress()
	c.container.RequestRedraw()
	if !arrived {
		return true
	}

	dismiss := s.Dismissing && !c.dismissed
	if dismiss {
		c.dismissed = true
	}
	c.rest = s.Offset
	c.session = nil
	c.setState(StateIdle, s, dismiss)
	if dismiss {
		c.container.Dismiss()
	}
	return false
}

// PanelRect returns the panel's current rectangle.
func (c *Controller) PanelRect() image.Rectangle {
	if c.container == nil {
		return image.Rectangle{}
	}
	off := c.Offset()
	return c.container.Rect().Add(image.Pt(int(math.Round(float64(off.X))), int(math.Round(float64(off.Y)))))
}

// Bands returns the areas in which a press starts a swipe. It is empty while
// the controller is disabled, detached or busy with a gesture.
func (c *Controller) Bands() []image.Rectangle {
	if !c.cfg.Enabled || c.container == nil || c.state != StateIdle {
		return nil
	}
	r := c.container.Rect()
	var out []image.Rectangle
	for _, e := range c.cfg.EdgeMask.Edges() {
		if b := Band(e, r, c.tracker.EdgeSize); !b.Empty() {
			out = append(out, b)
		}
	}
	return out
}

// Shadows returns the shadow strips for the panel's current rectangle.
func (c *Controller) Shadows() []ShadowSpec {
	return Shadows(c.PanelRect(), c.cfg.EdgeMask, c.shadow)
}

// Scrim returns the scrim covering bounds, if one should be drawn.
func (c *Controller) Scrim(bounds image.Rectangle) (ScrimSpec, bool) {
	return Scrim(c.cfg.ScrimColor, c.progress, c.state, bounds, c.PanelRect())
}
