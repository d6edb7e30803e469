package container

import "testing"

func TestOption(t *testing.T) {
	none := None[int]()
	if v, ok := none.Get(); ok || v != 0 {
		t.Errorf("None.Get()=(%d, %t), want (0, false)", v, ok)
	}
	if got := none.GetOr(7); got != 7 {
		t.Errorf("None.GetOr(7)=%d, want 7", got)
	}
	if got := none.String(); got != "None" {
		t.Errorf("None.String()=%q, want %q", got, "None")
	}

	some := Some(3)
	if !some.Set() || some.MustGet() != 3 || some.GetOr(7) != 3 {
		t.Errorf("Some(3) behaves like %v", some)
	}
	if got := some.String(); got != "Some(3)" {
		t.Errorf("Some(3).String()=%q, want %q", got, "Some(3)")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on None didn't panic")
		}
	}()
	none.MustGet()
}
