package widget

import (
	"context"
	"image"
	rtrace "runtime/trace"
	"time"

	"honnef.co/go/swipeback/gesture"
	"honnef.co/go/swipeback/layout"
	"honnef.co/go/swipeback/swipe"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// SwipeBack hosts a panel that can be dismissed by swiping it away from one
// of its edges. It feeds the window's pointer events to its Controller and
// drives the settle animation from frame timestamps.
type SwipeBack struct {
	Controller *swipe.Controller

	gesture gesture.Swipe
	rect    image.Rectangle

	invalidate bool
	dismissed  bool

	lastUpdate time.Time
	tickAt     time.Time
}

func NewSwipeBack(cfg swipe.Config) *SwipeBack {
	sb := &SwipeBack{}
	sb.Controller = swipe.New(cfg, unit.Metric{})
	sb.Controller.Attach(sb)
	return sb
}

func (sb *SwipeBack) Rect() image.Rectangle { return sb.rect }
func (sb *SwipeBack) RequestRedraw()        { sb.invalidate = true }

func (sb *SwipeBack) RequestAnimationFrame() {
	sb.invalidate = true
	sb.tickAt = time.Time{}
}

func (sb *SwipeBack) Dismiss() { sb.dismissed = true }

// Dismissed reports whether the panel was swiped away since the last call.
func (sb *SwipeBack) Dismissed() bool {
	d := sb.dismissed
	sb.dismissed = false
	return d
}

// Update processes pointer events and advances the settle animation. It may
// be called more than once per frame.
func (sb *SwipeBack) Update(gtx layout.Context) {
	sb.rect = image.Rectangle{Max: gtx.Constraints.Max}
	if gtx.Now.Equal(sb.lastUpdate) && !gtx.Now.IsZero() {
		return
	}
	sb.lastUpdate = gtx.Now

	c := sb.Controller
	c.SetMetric(gtx.Metric)
	if gtx.Queue != nil {
		for _, ev := range sb.gesture.Update(gtx.Queue) {
			if ev.Phase == swipe.Down {
				c.ShouldIntercept(ev)
			} else {
				c.HandleEvent(ev)
			}
		}
	}

	if c.State() == swipe.StateSettling {
		var dt time.Duration
		if !sb.tickAt.IsZero() {
			dt = gtx.Now.Sub(sb.tickAt)
		}
		sb.tickAt = gtx.Now
		if !c.Tick(dt) {
			sb.tickAt = time.Time{}
		}
	}

	if sb.invalidate {
		op.InvalidateOp{}.Add(gtx.Ops)
		sb.invalidate = false
	}
}

// Layout draws w at the panel's current offset and registers the areas that
// start swipes on top of it.
func (sb *SwipeBack) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.SwipeBack.Layout").End()

	sb.Update(gtx)
	c := sb.Controller

	panel := c.PanelRect()
	stack := op.Offset(panel.Min).Push(gtx.Ops)
	cstack := clip.Rect{Max: panel.Size()}.Push(gtx.Ops)
	w(gtx)
	cstack.Pop()
	stack.Pop()

	switch c.State() {
	case swipe.StateIdle:
		sb.gesture.Add(gtx.Ops, c.Bands()...)
	case swipe.StateDragging:
		sb.gesture.Add(gtx.Ops, sb.rect)
	}

	return layout.Dimensions{Size: gtx.Constraints.Max}
}
