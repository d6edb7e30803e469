package theme

import (
	"testing"
	"time"

	"honnef.co/go/swipeback/layout"

	"gioui.org/op"
)

func TestAnimation(t *testing.T) {
	start := time.Unix(100, 0)
	gtx := layout.Context{Ops: new(op.Ops), Now: start}

	var anim Animation[float32]
	if got := anim.Value(gtx); got != 0 || !anim.Done() {
		t.Fatalf("zero Animation: Value=%v Done=%t, want 0 and done", got, anim.Done())
	}

	anim.Start(gtx, 300, 0, 100*time.Millisecond, EaseOut(1))
	tests := []struct {
		at   time.Duration
		want float32
	}{
		{0, 300},
		{50 * time.Millisecond, 150},
		{100 * time.Millisecond, 0},
		{time.Second, 0},
	}
	for _, tt := range tests {
		gtx.Now = start.Add(tt.at)
		if got := anim.Value(gtx); got != tt.want {
			t.Errorf("Value at %s=%v, want %v", tt.at, got, tt.want)
		}
	}
	if !anim.Done() {
		t.Error("animation not done after its duration")
	}
}

func TestEaseOut(t *testing.T) {
	for _, p := range []int{1, 2, 3, 5} {
		f := EaseOut(p)
		if f(0) != 0 || f(1) != 1 {
			t.Errorf("EaseOut(%d): f(0)=%v f(1)=%v, want 0 and 1", p, f(0), f(1))
		}
		if p > 1 && f(0.5) <= 0.5 {
			t.Errorf("EaseOut(%d)(0.5)=%v, want more than 0.5", p, f(0.5))
		}
	}
}
