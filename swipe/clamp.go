package swipe

import (
	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Clamp limits a proposed panel offset to the range legal for swipes from
// edge. The panel may move away from its resting position by at most extent
// pixels and never in the opposite direction. Extent is the panel's width
// for horizontal edges and its height for EdgeBottom.
func Clamp(edge Edge, offset, extent float32) float32 {
	if extent <= 0 {
		return 0
	}
	switch edge {
	case EdgeLeft:
		return clamp(offset, 0, extent)
	case EdgeRight, EdgeBottom:
		return clamp(offset, -extent, 0)
	default:
		return 0
	}
}
