package clip

import (
	"image"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
)

type FRect struct {
	Min f32.Point
	Max f32.Point
}

// FromRect converts an integer rectangle.
func FromRect(r image.Rectangle) FRect {
	return FRect{
		Min: f32.Pt(float32(r.Min.X), float32(r.Min.Y)),
		Max: f32.Pt(float32(r.Max.X), float32(r.Max.Y)),
	}
}

func (r FRect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r FRect) Path(ops *op.Ops) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	r.IntoPath(&p)
	return p.End()
}

func (r FRect) IntoPath(p *clip.Path) {
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.LineTo(r.Min)
}

// IntoPathR is like IntoPath but winds the other way.
func (r FRect) IntoPathR(p *clip.Path) {
	p.MoveTo(r.Min)
	p.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	p.LineTo(r.Max)
	p.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Min)
}

func (r FRect) Op(ops *op.Ops) clip.Op {
	return clip.Outline{Path: r.Path(ops)}.Op()
}

// Hole is the area of Outer that isn't covered by Inner. Inner may extend
// past Outer or be empty.
type Hole struct {
	Outer FRect
	Inner FRect
}

func (h Hole) Op(ops *op.Ops) clip.Op {
	var p clip.Path
	p.Begin(ops)
	h.Outer.IntoPath(&p)
	if inner := h.inner(); !inner.Empty() {
		inner.IntoPathR(&p)
	}
	p.Close()
	return clip.Outline{Path: p.End()}.Op()
}

// inner clips Inner to Outer so the reversed path never leaves the outer
// one.
func (h Hole) inner() FRect {
	return FRect{
		Min: f32.Pt(max(h.Inner.Min.X, h.Outer.Min.X), max(h.Inner.Min.Y, h.Outer.Min.Y)),
		Max: f32.Pt(min(h.Inner.Max.X, h.Outer.Max.X), min(h.Inner.Max.Y, h.Outer.Max.Y)),
	}
}
