package lvgl

import "testing"

func TestBase_Invalidate(t *testing.T) {
	calls := 0
	b := NewBase(func() { calls++ })

	b.Invalidate()
	b.Invalidate()

	if calls != 2 {
		t.Errorf("invalidate hook called %d times, want 2", calls)
	}
}

func TestBase_NilHook(t *testing.T) {
	b := NewBase(nil)

	// Must not panic.
	b.Invalidate()
	b.OnStyleChanged()
	b.OnCleanup()
}

func TestBase_OnStyleChangedInvalidates(t *testing.T) {
	calls := 0
	b := NewBase(func() { calls++ })

	b.OnStyleChanged()

	if calls != 1 {
		t.Errorf("OnStyleChanged invalidated %d times, want 1", calls)
	}
}
