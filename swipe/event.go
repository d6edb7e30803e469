package swipe

import (
	"fmt"
	"time"

	"gioui.org/f32"
)

type Phase uint8

const (
	Down Phase = iota + 1
	Move
	Up
	Cancel
)

func (p Phase) String() string {
	switch p {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

type PointerID uint16

// PointerEvent is a single sample from the host's pointer stream. Positions
// are in the same coordinate space as Container.Rect.
type PointerEvent struct {
	Phase    Phase
	Pointer  PointerID
	Position f32.Point
	// Time is the event's timestamp, relative to an arbitrary host epoch.
	Time time.Duration
}

// DragState is the state of the controller's single gesture.
type DragState uint8

const (
	// StateIdle means no gesture is in progress.
	StateIdle DragState = iota
	// StateDragging means a pointer is captured and moving the panel.
	StateDragging
	// StateSettling means the pointer was released and the panel is
	// animating toward its resting or dismissed position.
	StateSettling
)

func (s DragState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return fmt.Sprintf("DragState(%d)", s)
	}
}

// StateEvent is emitted to subscribers once per state transition.
type StateEvent struct {
	State    DragState
	Progress float32
	// Edge is the edge of the gesture that caused the transition.
	Edge Edge
	// Dismissing is set on StateSettling events whose target is the
	// dismissed position.
	Dismissing bool
	// Dismissed is set on the StateIdle event that completed a dismissal.
	Dismissed bool
}
