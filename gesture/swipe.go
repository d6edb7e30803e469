package gesture

import (
	"image"

	"honnef.co/go/swipeback/swipe"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Swipe delivers the pointer stream of edge swipes as swipe.PointerEvents.
// It only receives presses that land in the areas it was added with, and
// grabs the pointer on press so that the rest of the gesture isn't shared
// with the content underneath.
type Swipe struct{}

// Add registers the gesture for presses inside any of areas.
func (s *Swipe) Add(ops *op.Ops, areas ...image.Rectangle) {
	for _, r := range areas {
		if r.Empty() {
			continue
		}
		stack := clip.Rect(r).Push(ops)
		pointer.InputOp{
			Tag:   s,
			Grab:  true,
			Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		}.Add(ops)
		stack.Pop()
	}
}

// Update returns the pointer events received since the last call.
func (s *Swipe) Update(q event.Queue) []swipe.PointerEvent {
	var events []swipe.PointerEvent
	for _, evt := range q.Events(s) {
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		ev, ok := FromPointer(e)
		if !ok {
			continue
		}
		events = append(events, ev)
	}
	return events
}

// FromPointer converts a Gio pointer event. Only presses of the primary
// mouse button start swipes; events that play no part in a swipe are
// rejected.
func FromPointer(e pointer.Event) (swipe.PointerEvent, bool) {
	var phase swipe.Phase
	switch e.Kind {
	case pointer.Press:
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			return swipe.PointerEvent{}, false
		}
		phase = swipe.Down
	case pointer.Drag:
		phase = swipe.Move
	case pointer.Release:
		phase = swipe.Up
	case pointer.Cancel:
		phase = swipe.Cancel
	default:
		return swipe.PointerEvent{}, false
	}
	return swipe.PointerEvent{
		Phase:    phase,
		Pointer:  swipe.PointerID(e.PointerID),
		Position: e.Position,
		Time:     e.Time,
	}, true
}
