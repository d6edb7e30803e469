package widget

import (
	"context"
	rtrace "runtime/trace"

	"honnef.co/go/swipeback/layout"

	"gioui.org/io/semantic"
)

type Bool struct {
	Value bool

	clk PrimaryClickable
}

func (b *Bool) Get() bool  { return b.Value }
func (b *Bool) Set(v bool) { b.Value = v }

// Update the widget state and report whether Value was changed.
func (b *Bool) Update(gtx layout.Context) bool {
	changed := false
	for b.clk.Clicked(gtx) {
		b.Value = !b.Value
		changed = true
	}
	return changed
}

func (b *Bool) Hovered() bool { return b.clk.Hovered() }

func (b *Bool) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.Bool.Layout").End()

	b.Update(gtx)
	return b.clk.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		semantic.SelectedOp(b.Value).Add(gtx.Ops)
		return w(gtx)
	})
}

// BackedBit is a boolean stored in one bit of a bit set, such as a
// swipe.EdgeMask.
type BackedBit[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct {
	Bits *T
	Bit  int

	clk PrimaryClickable
}

func (bit *BackedBit[T]) Get() bool {
	return *bit.Bits&(1<<bit.Bit) != 0
}

func (bit *BackedBit[T]) Set(b bool) {
	if b {
		*bit.Bits |= 1 << bit.Bit
	} else {
		*bit.Bits &^= 1 << bit.Bit
	}
}

func (bit *BackedBit[T]) Hovered() bool { return bit.clk.Hovered() }

// Update toggles the bit for every click and reports whether it changed.
func (bit *BackedBit[T]) Update(gtx layout.Context) bool {
	changed := false
	for bit.clk.Clicked(gtx) {
		bit.Set(!bit.Get())
		changed = !changed
	}
	return changed
}

func (bit *BackedBit[T]) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "widget.BackedBit.Layout").End()

	bit.Update(gtx)
	return bit.clk.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		semantic.SelectedOp(bit.Get()).Add(gtx.Ops)
		return w(gtx)
	})
}

type Boolean interface {
	Set(bool)
	Get() bool
	Update(layout.Context) bool
	Layout(layout.Context, layout.Widget) layout.Dimensions
}
