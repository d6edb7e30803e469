package theme

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	myclip "honnef.co/go/swipeback/clip"
	"honnef.co/go/swipeback/layout"
	"honnef.co/go/swipeback/widget"

	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// SwipeBackStyle draws a swipeable panel over the content it was opened
// from. While the panel moves, the content is dimmed by a scrim that fades
// out as the panel leaves, and the panel casts a shadow along its edges.
type SwipeBackStyle struct {
	State *widget.SwipeBack
	// Shadows caches the shadow drawables. It may be shared between panels.
	Shadows *Shadows

	ShadowWidth unit.Dp
	ShadowColor color.NRGBA
}

func SwipeBack(th *Theme, state *widget.SwipeBack, shadows *Shadows) SwipeBackStyle {
	return SwipeBackStyle{
		State:       state,
		Shadows:     shadows,
		ShadowWidth: 8,
		ShadowColor: th.Palette.Shadow,
	}
}

// Layout draws background, then the scrim and shadows, then panel at its
// current offset. Both widgets get the full constraints.
func (sb SwipeBackStyle) Layout(gtx layout.Context, background, panel layout.Widget) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.SwipeBackStyle.Layout").End()

	c := sb.State.Controller
	thickness := gtx.Dp(sb.ShadowWidth)
	for _, e := range c.Config().EdgeMask.Edges() {
		c.SetShadowExtent(e, thickness)
	}
	sb.State.Update(gtx)

	bounds := image.Rectangle{Max: gtx.Constraints.Max}
	defer clip.Rect(bounds).Push(gtx.Ops).Pop()

	// The content behind is hidden while the panel covers it.
	if !bounds.In(c.PanelRect()) {
		background(gtx)
	}
	if spec, ok := c.Scrim(bounds); ok {
		hole := myclip.Hole{Outer: myclip.FromRect(spec.Bounds), Inner: myclip.FromRect(spec.Hole)}
		paint.FillShape(gtx.Ops, spec.Color, hole.Op(gtx.Ops))
	}
	if sb.Shadows != nil {
		sb.Shadows.Draw(gtx.Ops, c.Shadows(), sb.ShadowColor)
	}

	return sb.State.Layout(gtx, panel)
}
