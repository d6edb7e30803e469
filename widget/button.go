package widget

import (
	"context"
	"image"
	rtrace "runtime/trace"

	"honnef.co/go/swipeback/gesture"
	"honnef.co/go/swipeback/layout"

	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Clickable represents a clickable area.
type Clickable struct {
	click gesture.Click
	// clicks is for saved clicks to support Clicked.
	clicks    []Click
	requested []Click
}

// Click represents a click.
type Click struct {
	Button    pointer.Buttons
	Modifiers key.Modifiers
	NumClicks int
}

// Click executes a simple programmatic click.
func (b *Clickable) Click(btn pointer.Buttons) {
	b.requested = append(b.requested, Click{
		Button:    btn,
		NumClicks: 1,
	})
}

// Clicked reports whether there are pending clicks. If so, Clicked removes
// the earliest click.
func (b *Clickable) Clicked(gtx layout.Context) (Click, bool) {
	if len(b.clicks) == 0 {
		b.clicks = b.Update(gtx)
	}
	if len(b.clicks) == 0 {
		return Click{}, false
	}
	c := b.clicks[0]
	b.clicks = b.clicks[1:]
	return c, true
}

// Hovered reports whether a pointer is over the element.
func (b *Clickable) Hovered() bool {
	return b.click.Hovered()
}

// Pressed reports whether a pointer is pressing the element.
func (b *Clickable) Pressed(btn pointer.Buttons) bool {
	return b.click.Pressed(btn)
}

func (b *Clickable) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Clickable.Layout").End()

	b.clicks = append(b.clicks, b.Update(gtx)...)
	m := op.Record(gtx.Ops)
	dims := w(gtx)
	c := m.Stop()
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	semantic.EnabledOp(gtx.Queue != nil).Add(gtx.Ops)
	b.click.Add(gtx.Ops)
	c.Add(gtx.Ops)
	return dims
}

// Update processes events and returns the resulting clicks, if any.
func (b *Clickable) Update(gtx layout.Context) []Click {
	clicks := append([]Click(nil), b.requested...)
	b.requested = b.requested[:0]
	if gtx.Queue == nil {
		return clicks
	}

	for _, e := range b.click.Update(gtx.Queue) {
		if e.Kind == gesture.KindClick {
			clicks = append(clicks, Click{
				Button:    e.Button,
				Modifiers: e.Modifiers,
				NumClicks: e.NumClicks,
			})
		}
	}
	return clicks
}

// PrimaryClickable is like Clickable but ignores clicks of buttons other
// than the primary one.
type PrimaryClickable struct {
	Clickable
}

func (b *PrimaryClickable) Clicked(gtx layout.Context) bool {
	for {
		clk, ok := b.Clickable.Clicked(gtx)
		if !ok {
			return false
		}
		if clk.Button == pointer.ButtonPrimary {
			return true
		}
	}
}

func (b *PrimaryClickable) Click()        { b.Clickable.Click(pointer.ButtonPrimary) }
func (b *PrimaryClickable) Pressed() bool { return b.Clickable.Pressed(pointer.ButtonPrimary) }
