// Package swipe implements the state machine behind edge-swipe-to-dismiss
// panels: edge detection, pointer tracking, offset clamping, the release
// decision, the settle animation and the visuals derived from them.
//
// The package is independent of any toolkit. Hosts feed it PointerEvents,
// call Tick once per frame while it is settling, and implement Container.
package swipe

import (
	"strings"
)

// Edge identifies the side of the panel a swipe started from.
type Edge uint8

const (
	EdgeLeft   Edge = 1 << 0
	EdgeRight  Edge = 1 << 1
	EdgeBottom Edge = 1 << 3
)

// EdgeMask is a set of edges that may start a swipe.
type EdgeMask uint8

const EdgeAll = EdgeMask(EdgeLeft | EdgeRight | EdgeBottom)

// edgePriority is the order in which edges are tested during capture.
var edgePriority = [...]Edge{EdgeLeft, EdgeRight, EdgeBottom}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// Vertical reports whether swipes from e move the panel along the Y axis.
func (e Edge) Vertical() bool {
	return e == EdgeBottom
}

// sign is the direction, along the edge's axis, in which the panel opens.
func (e Edge) sign() float32 {
	if e == EdgeLeft {
		return 1
	}
	return -1
}

func (m EdgeMask) Has(e Edge) bool {
	return m&EdgeMask(e) != 0
}

// Edges returns the edges in m in capture priority order.
func (m EdgeMask) Edges() []Edge {
	var out []Edge
	for _, e := range edgePriority {
		if m.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

func (m EdgeMask) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	for _, e := range m.Edges() {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "|")
}

// ParseEdge parses the names produced by Edge.String.
func ParseEdge(s string) (Edge, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return EdgeLeft, true
	case "right":
		return EdgeRight, true
	case "bottom":
		return EdgeBottom, true
	default:
		return 0, false
	}
}
