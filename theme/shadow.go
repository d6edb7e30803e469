package theme

import (
	"image"
	"image/color"
	"math"

	"honnef.co/go/swipeback/f32color"
	"honnef.co/go/swipeback/swipe"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/disintegration/imaging"
)

// shadowResolution is the width of the gradient that shadows of all
// thicknesses are resampled from.
const shadowResolution = 64

type shadowKey struct {
	edge      swipe.Edge
	thickness int
	color     color.NRGBA
}

// Entries are keyed by edge, pixel thickness and color. Display scale changes
// and config reloads add new keys without retiring old ones, so the cache is
// dropped wholesale once it fills up.
const maxCachedShadows = 32

// Shadows caches the drawables of edge shadows. The zero value is ready to
// use.
type Shadows struct {
	ops map[shadowKey]paint.ImageOp
}

// ShadowImage renders the shadow cast by a panel onto the strip beyond its
// edge. The image is one pixel long along the edge and thickness pixels
// across it; it is darkest where it touches the panel.
func ShadowImage(edge swipe.Edge, thickness int, c color.NRGBA) *image.NRGBA {
	if thickness <= 0 {
		return nil
	}

	// Shadow left of the panel, fading out toward the left.
	base := imaging.New(shadowResolution, 1, color.NRGBA{})
	for x := 0; x < shadowResolution; x++ {
		d := float64(x+1) / shadowResolution
		base.SetNRGBA(x, 0, f32color.MulAlpha(c, float32(math.Pow(d, 2))))
	}
	img := imaging.Resize(base, thickness, 1, imaging.Lanczos)

	switch edge {
	case swipe.EdgeLeft:
		return img
	case swipe.EdgeRight:
		return imaging.FlipH(img)
	case swipe.EdgeBottom:
		return imaging.Rotate90(img)
	default:
		return nil
	}
}

func (s *Shadows) imageOp(edge swipe.Edge, thickness int, c color.NRGBA) (paint.ImageOp, bool) {
	key := shadowKey{edge, thickness, c}
	if iop, ok := s.ops[key]; ok {
		return iop, true
	}
	img := ShadowImage(edge, thickness, c)
	if img == nil {
		return paint.ImageOp{}, false
	}
	if s.ops == nil || len(s.ops) >= maxCachedShadows {
		s.ops = make(map[shadowKey]paint.ImageOp)
	}
	iop := paint.NewImageOp(img)
	s.ops[key] = iop
	return iop, true
}

// Draw paints the shadow strips in specs, stretching each cached drawable
// along its edge.
func (s *Shadows) Draw(ops *op.Ops, specs []swipe.ShadowSpec, c color.NRGBA) {
	for _, spec := range specs {
		b := spec.Bounds
		if b.Empty() {
			continue
		}
		thickness := b.Dx()
		if spec.Edge.Vertical() {
			thickness = b.Dy()
		}
		imgOp, ok := s.imageOp(spec.Edge, thickness, c)
		if !ok {
			continue
		}

		sz := imgOp.Size()
		scale := f32.Pt(float32(b.Dx())/float32(sz.X), float32(b.Dy())/float32(sz.Y))
		tr := f32.Affine2D{}.
			Scale(f32.Point{}, scale).
			Offset(f32.Pt(float32(b.Min.X), float32(b.Min.Y)))

		cstack := clip.Rect(b).Push(ops)
		tstack := op.Affine(tr).Push(ops)
		imgOp.Filter = paint.FilterLinear
		imgOp.Add(ops)
		paint.PaintOp{}.Add(ops)
		tstack.Pop()
		cstack.Pop()
	}
}

// Len returns the number of cached drawables.
func (s *Shadows) Len() int { return len(s.ops) }
