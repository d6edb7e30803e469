package theme

import (
	"image"
	"image/color"
	"testing"

	"honnef.co/go/swipeback/swipe"

	"gioui.org/op"
)

func TestShadowImage(t *testing.T) {
	c := color.NRGBA{A: 0xFF}
	tests := []struct {
		edge swipe.Edge
		size image.Point
		// dark and light are pixels next to and away from the panel.
		dark, light image.Point
	}{
		{swipe.EdgeLeft, image.Pt(16, 1), image.Pt(15, 0), image.Pt(0, 0)},
		{swipe.EdgeRight, image.Pt(16, 1), image.Pt(0, 0), image.Pt(15, 0)},
		{swipe.EdgeBottom, image.Pt(1, 16), image.Pt(0, 0), image.Pt(0, 15)},
	}
	for _, tt := range tests {
		img := ShadowImage(tt.edge, 16, c)
		if img == nil {
			t.Fatalf("ShadowImage(%s) returned nil", tt.edge)
		}
		if got := img.Bounds().Size(); got != tt.size {
			t.Errorf("ShadowImage(%s) has size %v, want %v", tt.edge, got, tt.size)
		}
		dark := img.NRGBAAt(tt.dark.X, tt.dark.Y).A
		light := img.NRGBAAt(tt.light.X, tt.light.Y).A
		if dark <= light {
			t.Errorf("ShadowImage(%s): alpha %d next to the panel, %d away from it; want darker next to it", tt.edge, dark, light)
		}
	}

	if img := ShadowImage(swipe.EdgeLeft, 0, c); img != nil {
		t.Errorf("ShadowImage with zero thickness=%v, want nil", img.Bounds())
	}
}

func TestShadowsCache(t *testing.T) {
	var s Shadows
	ops := new(op.Ops)
	c := color.NRGBA{A: 0x66}
	specs := []swipe.ShadowSpec{
		{Edge: swipe.EdgeLeft, Bounds: image.Rect(-10, 0, 0, 600)},
		{Edge: swipe.EdgeRight, Bounds: image.Rect(300, 0, 310, 600)},
		{Edge: swipe.EdgeBottom, Bounds: image.Rect(0, 600, 300, 610)},
	}
	s.Draw(ops, specs, c)
	s.Draw(ops, specs, c)
	if s.Len() != 3 {
		t.Errorf("cached %d shadows, want 3", s.Len())
	}
	s.Draw(ops, specs[:1], color.NRGBA{A: 0x33})
	if s.Len() != 4 {
		t.Errorf("cached %d shadows after changing the color, want 4", s.Len())
	}

	for i := 1; i <= maxCachedShadows; i++ {
		s.Draw(ops, []swipe.ShadowSpec{{Edge: swipe.EdgeLeft, Bounds: image.Rect(-i, 0, 0, 600)}}, c)
	}
	if s.Len() > maxCachedShadows {
		t.Errorf("cached %d shadows, want at most %d", s.Len(), maxCachedShadows)
	}
}
