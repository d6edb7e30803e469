package widget

import (
	"testing"
	"time"

	"honnef.co/go/swipeback/swipe"

	"gioui.org/io/pointer"
)

func TestBackedBit(t *testing.T) {
	mask := swipe.EdgeMask(swipe.EdgeLeft)
	right := BackedBit[swipe.EdgeMask]{Bits: &mask, Bit: 1}
	gtx := testContext(time.Unix(0, 0))

	if right.Get() {
		t.Fatalf("bit 1 of %s is set", mask)
	}
	right.clk.Click()
	if !right.Update(gtx) {
		t.Error("Update after one click reported no change")
	}
	if want := swipe.EdgeMask(swipe.EdgeLeft | swipe.EdgeRight); mask != want {
		t.Errorf("mask=%s, want %s", mask, want)
	}

	right.clk.Click()
	right.clk.Click()
	if right.Update(gtx) {
		t.Error("Update after two clicks reported a change")
	}
	if !right.Get() {
		t.Error("two clicks didn't leave the bit set")
	}

	right.Set(false)
	if mask != swipe.EdgeMask(swipe.EdgeLeft) {
		t.Errorf("Set(false) left mask=%s", mask)
	}
}

func TestPrimaryClickableIgnoresSecondary(t *testing.T) {
	var b PrimaryClickable
	gtx := testContext(time.Unix(0, 0))
	b.Clickable.Click(pointer.ButtonSecondary)
	if b.Clicked(gtx) {
		t.Error("secondary click was reported")
	}
	b.Click()
	if !b.Clicked(gtx) {
		t.Error("primary click wasn't reported")
	}
	if b.Clicked(gtx) {
		t.Error("click was reported twice")
	}
}
