package theme

import (
	"image/color"

	"honnef.co/go/swipeback/clip"
	"honnef.co/go/swipeback/f32color"
)

type frect = clip.FRect

func rgba(c uint32) color.NRGBA {
	return f32color.RGBA(c)
}

func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	} else {
		return v
	}
}
