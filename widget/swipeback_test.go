package widget

import (
	"image"
	"testing"
	"time"

	"honnef.co/go/swipeback/layout"
	"honnef.co/go/swipeback/swipe"

	"gioui.org/op"
	"gioui.org/unit"
)

func testContext(now time.Time) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(300, 600)),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Now:         now,
	}
}

func TestSwipeBackSettlesOverFrames(t *testing.T) {
	sb := NewSwipeBack(swipe.DefaultConfig())
	now := time.Unix(0, 0)
	empty := func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{Size: gtx.Constraints.Max} }

	dims := sb.Layout(testContext(now), empty)
	if want := image.Pt(300, 600); dims.Size != want {
		t.Fatalf("Layout returned size %v, want %v", dims.Size, want)
	}
	if got, want := sb.Rect(), image.Rect(0, 0, 300, 600); got != want {
		t.Fatalf("Rect()=%v, want %v", got, want)
	}

	if !sb.Controller.ScrollToFinish() {
		t.Fatal("ScrollToFinish didn't start")
	}
	frames := 0
	for sb.Controller.State() != swipe.StateIdle {
		now = now.Add(16 * time.Millisecond)
		sb.Layout(testContext(now), empty)
		frames++
		if frames > 1000 {
			t.Fatal("panel didn't settle")
		}
		if sb.Dismissed() && sb.Controller.State() != swipe.StateIdle {
			t.Fatal("dismissed before coming to rest")
		}
	}
	// 300px at 1500px/s takes 200ms, plus the frame that primes the clock.
	if frames < 13 || frames > 15 {
		t.Errorf("settled after %d frames, want about 14", frames)
	}
	if got := sb.Controller.PanelRect(); got.Min.X != 300 {
		t.Errorf("panel at %v after dismissal, want it moved off by 300px", got)
	}
}

func TestSwipeBackDismissedConsumes(t *testing.T) {
	sb := NewSwipeBack(swipe.DefaultConfig())
	sb.Dismiss()
	if !sb.Dismissed() {
		t.Error("Dismissed()=false after Dismiss, want true")
	}
	if sb.Dismissed() {
		t.Error("Dismissed()=true on second call, want false")
	}
}

func TestSwipeBackUpdateOncePerFrame(t *testing.T) {
	sb := NewSwipeBack(swipe.DefaultConfig())
	now := time.Unix(0, 0)
	sb.Update(testContext(now))
	sb.Controller.ScrollToFinish()

	now = now.Add(16 * time.Millisecond)
	sb.Update(testContext(now))
	now = now.Add(16 * time.Millisecond)
	sb.Update(testContext(now))
	off := sb.Controller.Offset()
	sb.Update(testContext(now))
	if got := sb.Controller.Offset(); got != off {
		t.Errorf("second Update in the same frame moved the panel from %v to %v", off, got)
	}
}
