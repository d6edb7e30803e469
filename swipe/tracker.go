package swipe

import (
	"image"
	"math"
	"time"

	"honnef.co/go/swipeback/container"

	"gioui.org/f32"
)

// DefaultVelocityWindow is how much pointer history is used to estimate the
// release velocity.
const DefaultVelocityWindow = 100 * time.Millisecond

const maxSamples = 20

type sample struct {
	at  time.Duration
	pos f32.Point
}

// Tracker follows a single pointer from press to release. It decides
// whether the press started in an edge band, reports movement deltas of the
// captured pointer and estimates its velocity on release.
//
// Events of any pointer other than the one that was pressed first are
// ignored until the gesture ends.
type Tracker struct {
	// EdgeSize is the width, in pixels, of the band along each edge in which
	// a press can start a swipe.
	EdgeSize float32
	// Window bounds the pointer history used for velocity estimation. Zero
	// means DefaultVelocityWindow.
	Window time.Duration

	tracking bool
	captured bool
	pointer  PointerID
	downAt   f32.Point
	last     f32.Point

	samples [maxSamples]sample
	// head is the index the next sample will be written to.
	head int
	n    int
}

// Down records the press of pointer id. It doesn't capture the pointer;
// call TryCapture for that. Presses are ignored while a pointer is
// captured.
func (t *Tracker) Down(id PointerID, pos f32.Point, at time.Duration) {
	if t.captured {
		return
	}
	t.tracking = true
	t.pointer = id
	t.downAt = pos
	t.last = pos
	t.head, t.n = 0, 0
	t.addSample(at, pos)
}

// Tracking reports whether a press has been recorded and not yet released.
func (t *Tracker) Tracking() bool { return t.tracking }

// Captured reports whether the tracked pointer has been captured.
func (t *Tracker) Captured() bool { return t.captured }

// Pointer returns the id of the tracked pointer.
func (t *Tracker) Pointer() PointerID { return t.pointer }

// DownAt returns the position of the most recent press.
func (t *Tracker) DownAt() f32.Point { return t.downAt }

// TryCapture captures the tracked pointer if pos lies in the band of one of
// the edges in mask. Edges are tried in the order left, right, bottom and
// the first match wins. Panels without area can't be captured.
func (t *Tracker) TryCapture(pos f32.Point, panel image.Rectangle, mask EdgeMask) container.Option[Edge] {
	if !t.tracking || t.captured {
		return container.None[Edge]()
	}
	if panel.Dx() <= 0 || panel.Dy() <= 0 {
		return container.None[Edge]()
	}
	for _, e := range edgePriority {
		if mask.Has(e) && inBand(e, pos, panel, t.EdgeSize) {
			t.captured = true
			return container.Some(e)
		}
	}
	return container.None[Edge]()
}

// Band returns the area along edge e of panel in which a press starts a
// swipe, widened to whole pixels.
func Band(e Edge, panel image.Rectangle, size float32) image.Rectangle {
	n := int(math.Ceil(float64(size)))
	var r image.Rectangle
	switch e {
	case EdgeLeft:
		r = image.Rect(panel.Min.X, panel.Min.Y, panel.Min.X+n, panel.Max.Y)
	case EdgeRight:
		r = image.Rect(panel.Max.X-n, panel.Min.Y, panel.Max.X, panel.Max.Y)
	case EdgeBottom:
		r = image.Rect(panel.Min.X, panel.Max.Y-n, panel.Max.X, panel.Max.Y)
	}
	return r.Intersect(panel)
}

func inBand(e Edge, pos f32.Point, panel image.Rectangle, size float32) bool {
	minX, minY := float32(panel.Min.X), float32(panel.Min.Y)
	maxX, maxY := float32(panel.Max.X), float32(panel.Max.Y)
	inX := pos.X >= minX && pos.X < maxX
	inY := pos.Y >= minY && pos.Y < maxY
	switch e {
	case EdgeLeft:
		return inY && pos.X >= minX && pos.X < minX+size
	case EdgeRight:
		return inY && pos.X < maxX && pos.X >= maxX-size
	case EdgeBottom:
		return inX && pos.Y < maxY && pos.Y >= maxY-size
	default:
		return false
	}
}

// Move returns the movement of the captured pointer since its previous
// press or move. ok is false if id isn't the captured pointer.
func (t *Tracker) Move(id PointerID, pos f32.Point, at time.Duration) (delta f32.Point, ok bool) {
	if !t.captured || id != t.pointer {
		return f32.Point{}, false
	}
	delta = pos.Sub(t.last)
	t.last = pos
	t.addSample(at, pos)
	return delta, true
}

// Release ends tracking of the captured pointer and returns its velocity in
// pixels per second. ok is false if id isn't the captured pointer, in which
// case nothing changes.
func (t *Tracker) Release(id PointerID, pos f32.Point, at time.Duration) (velocity f32.Point, ok bool) {
	if !t.captured || id != t.pointer {
		return f32.Point{}, false
	}
	t.addSample(at, pos)
	velocity = t.Velocity()
	t.Reset()
	return velocity, true
}

// Cancel ends tracking without producing a velocity.
func (t *Tracker) Cancel() {
	t.Reset()
}

// Reset forgets the tracked pointer.
func (t *Tracker) Reset() {
	*t = Tracker{EdgeSize: t.EdgeSize, Window: t.Window}
}

func (t *Tracker) addSample(at time.Duration, pos f32.Point) {
	t.samples[t.head] = sample{at: at, pos: pos}
	t.head = (t.head + 1) % maxSamples
	if t.n < maxSamples {
		t.n++
	}
}

// nthNewest returns the i-th most recent sample, 0 being the newest.
func (t *Tracker) nthNewest(i int) sample {
	return t.samples[(t.head-1-i+2*maxSamples)%maxSamples]
}

// Velocity estimates the current velocity of the tracked pointer, in pixels
// per second, from the samples inside the trailing window.
func (t *Tracker) Velocity() f32.Point {
	if t.n < 2 {
		return f32.Point{}
	}
	window := t.Window
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	newest := t.nthNewest(0)
	oldest := newest
	for i := 1; i < t.n; i++ {
		s := t.nthNewest(i)
		if newest.at-s.at > window {
			break
		}
		oldest = s
	}
	dt := (newest.at - oldest.at).Seconds()
	if dt <= 0 {
		return f32.Point{}
	}
	return newest.pos.Sub(oldest.pos).Mul(float32(1 / dt))
}
