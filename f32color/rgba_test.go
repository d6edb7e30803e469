// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestMulAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 0x99}
	tests := []struct {
		alpha float32
		want  uint8
	}{
		{1, 0x99},
		{0.5, 77},
		{0, 0},
		{-1, 0},
		{2, 0x99},
	}
	for _, tt := range tests {
		got := MulAlpha(c, tt.alpha)
		if got.A != tt.want {
			t.Errorf("MulAlpha(%v, %v).A=%d, want %d", c, tt.alpha, got.A, tt.want)
		}
		if got.R != c.R || got.G != c.G || got.B != c.B {
			t.Errorf("MulAlpha(%v, %v) changed the color channels: %v", c, tt.alpha, got)
		}
	}
}

func TestNotation(t *testing.T) {
	want := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x99}
	if got := ARGB(0x99112233); got != want {
		t.Errorf("ARGB(0x99112233)=%v, want %v", got, want)
	}
	if got := RGBA(0x11223399); got != want {
		t.Errorf("RGBA(0x11223399)=%v, want %v", got, want)
	}
}

func TestMix(t *testing.T) {
	black := color.NRGBA{A: 0xFF}
	white := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if got := Mix(white, black, 1); got != white {
		t.Errorf("Mix(white, black, 1)=%v, want %v", got, white)
	}
	if got := Mix(white, black, 0); got != black {
		t.Errorf("Mix(white, black, 0)=%v, want %v", got, black)
	}
	if got := Mix(white, black, 0.5); got.R != 128 || got.A != 0xFF {
		t.Errorf("Mix(white, black, 0.5)=%v, want gray 128", got)
	}
}
