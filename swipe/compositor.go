package swipe

import (
	"image"
	"image/color"

	"honnef.co/go/swipeback/f32color"
)

// ShadowSpec places an edge shadow drawable.
type ShadowSpec struct {
	Edge   Edge
	Bounds image.Rectangle
}

// ScrimSpec describes the scrim dimming the content behind the panel. It
// covers Bounds except for Hole, the panel's current rectangle.
type ScrimSpec struct {
	Color   color.NRGBA
	Opacity float32
	Bounds  image.Rectangle
	Hole    image.Rectangle
}

// Shadows returns one shadow strip per edge in mask, flush against the
// outside of panel. thickness maps edges to the intrinsic thickness of their
// drawables; edges without a positive thickness get no strip.
func Shadows(panel image.Rectangle, mask EdgeMask, thickness map[Edge]int) []ShadowSpec {
	var out []ShadowSpec
	for _, e := range mask.Edges() {
		t := thickness[e]
		if t <= 0 {
			continue
		}
		var r image.Rectangle
		switch e {
		case EdgeLeft:
			r = image.Rect(panel.Min.X-t, panel.Min.Y, panel.Min.X, panel.Max.Y)
		case EdgeRight:
			r = image.Rect(panel.Max.X, panel.Min.Y, panel.Max.X+t, panel.Max.Y)
		case EdgeBottom:
			r = image.Rect(panel.Min.X, panel.Max.Y, panel.Max.X, panel.Max.Y+t)
		}
		out = append(out, ShadowSpec{Edge: e, Bounds: r})
	}
	return out
}

// ScrimOpacity maps progress to the scrim's opacity: fully opaque while the
// panel is in place, transparent once it is gone.
func ScrimOpacity(progress float32) float32 {
	return 1 - clamp(progress, 0, 1)
}

// Scrim computes the scrim for the given progress. ok is false when no
// scrim should be drawn, which is the case while idle and once the scrim
// has faded out completely.
func Scrim(base color.NRGBA, progress float32, state DragState, bounds, panel image.Rectangle) (spec ScrimSpec, ok bool) {
	if state == StateIdle {
		return ScrimSpec{}, false
	}
	opacity := ScrimOpacity(progress)
	if opacity <= 0 {
		return ScrimSpec{}, false
	}
	return ScrimSpec{
		Color:   f32color.MulAlpha(base, opacity),
		Opacity: opacity,
		Bounds:  bounds,
		Hole:    panel.Intersect(bounds),
	}, true
}
