package holevec

import "testing"

// The slice views must reconcile two independent discontinuities: the
// logical hole split and the physical wraparound of the ring. The
// tests below construct each physical shape deterministically and
// verify the views against plainly-built expected regions. Physical
// preconditions are asserted through the inner buffer's own views so a
// regression in the construction cannot silently weaken a test.

// physicalRuns reports the ring's raw front/back run lengths.
func physicalRuns[T any](v *HoleVec[T]) (frontLen, backLen int) {
	front, back := v.buf.Slices()
	return len(front), len(back)
}

func TestSlicesUnwrapped(t *testing.T) {
	// Growth linearizes the ring, leaving head at zero: after region
	// first, before region following, one physical run.
	v := New[int]()
	v.PushAfterHole(102)
	v.PushAfterHole(101) // after = [101 102]
	for i := 1; i <= 7; i++ {
		v.PushBeforeHole(i) // 9th push grows and linearizes
	}

	frontLen, backLen := physicalRuns(v)
	if backLen != 0 {
		t.Fatalf("expected unwrapped ring, back run has %d elements", backLen)
	}
	if v.LenAfterHole() >= frontLen {
		t.Fatalf("hole boundary not strictly inside the front run: after %d, front %d",
			v.LenAfterHole(), frontLen)
	}

	checkRegions(t, v, []int{1, 2, 3, 4, 5, 6, 7}, []int{101, 102})

	a, b, c := v.Slices()
	if len(a) != 7 || len(b) != 0 || len(c) != 2 {
		t.Errorf("view lengths = %d/%d/%d, want 7/0/2", len(a), len(b), len(c))
	}
}

func TestSlicesWrappedBoundaryAtSplit(t *testing.T) {
	// Pushing on both sides of a fresh ring wraps the after region to
	// the top of the allocation; the hole boundary coincides with the
	// physical split.
	v := WithCapacity[int](8)
	v.PushBeforeHole(1)
	v.PushBeforeHole(2)
	v.PushAfterHole(102)
	v.PushAfterHole(101) // after = [101 102] at the top of storage

	frontLen, backLen := physicalRuns(v)
	if backLen == 0 {
		t.Fatal("expected wrapped ring")
	}
	if frontLen != v.LenAfterHole() {
		t.Fatalf("expected hole boundary at the physical split: after %d, front %d",
			v.LenAfterHole(), frontLen)
	}

	checkRegions(t, v, []int{1, 2}, []int{101, 102})

	a, b, c := v.Slices()
	if len(a) != 0 || len(b) != 2 || len(c) != 2 {
		t.Errorf("view lengths = %d/%d/%d, want 0/2/2", len(a), len(b), len(c))
	}
}

func TestSlicesWrappedBoundaryInBackRun(t *testing.T) {
	// After growth linearizes (after region at offset 0), one more
	// after-hole push wraps to the top of storage: the after region
	// spans the physical split and the hole boundary falls inside the
	// back run.
	v := New[int]()
	v.PushAfterHole(103)
	v.PushAfterHole(102)
	for i := 1; i <= 7; i++ {
		v.PushBeforeHole(i) // grows and linearizes
	}
	v.PushAfterHole(101) // wraps: after = [101 102 103]

	frontLen, _ := physicalRuns(v)
	if frontLen == 0 || v.LenAfterHole() <= frontLen {
		t.Fatalf("hole boundary not inside the back run: after %d, front %d",
			v.LenAfterHole(), frontLen)
	}

	checkRegions(t, v, []int{1, 2, 3, 4, 5, 6, 7}, []int{101, 102, 103})

	a, b, c := v.Slices()
	if len(a) != 7 || len(b) != 1 || len(c) != 2 {
		t.Errorf("view lengths = %d/%d/%d, want 7/1/2", len(a), len(b), len(c))
	}
}

func TestSlicesWrappedBoundaryInFrontRun(t *testing.T) {
	// After growth, shift the hole boundary off the run start with a
	// relocation, then push before-hole elements until the before
	// region itself wraps past the top of storage. The hole boundary
	// then falls strictly inside the front run.
	v := New[int]()
	v.PushAfterHole(102)
	v.PushAfterHole(101) // after = [101 102]
	for i := 1; i <= 7; i++ {
		v.PushBeforeHole(i) // grows to capacity 16, linearizes
	}
	v.MoveHoleRight(1) // before = [1..7 101], after = [102]
	for i := 8; i <= 14; i++ {
		v.PushBeforeHole(i) // last push wraps the before region
	}

	frontLen, backLen := physicalRuns(v)
	if backLen == 0 {
		t.Fatal("expected wrapped ring")
	}
	if v.LenAfterHole() >= frontLen {
		t.Fatalf("hole boundary not strictly inside the front run: after %d, front %d",
			v.LenAfterHole(), frontLen)
	}

	wantBefore := []int{1, 2, 3, 4, 5, 6, 7, 101, 8, 9, 10, 11, 12, 13, 14}
	checkRegions(t, v, wantBefore, []int{102})

	a, b, c := v.Slices()
	if len(a) != 14 || len(b) != 1 || len(c) != 1 {
		t.Errorf("view lengths = %d/%d/%d, want 14/1/1", len(a), len(b), len(c))
	}
}

func TestSlicesEmptyAndOneSided(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v := New[int]()
		a, b, c := v.Slices()
		if len(a)+len(b)+len(c) != 0 {
			t.Errorf("empty container produced views %v/%v/%v", a, b, c)
		}
	})

	t.Run("before only", func(t *testing.T) {
		v := New[int]()
		for i := 1; i <= 3; i++ {
			v.PushBeforeHole(i)
		}
		checkRegions(t, v, []int{1, 2, 3}, nil)
		if a, b := v.SlicesAfterHole(); len(a)+len(b) != 0 {
			t.Errorf("after-hole views %v/%v, want empty", a, b)
		}
	})

	t.Run("after only", func(t *testing.T) {
		v := New[int]()
		for i := 3; i >= 1; i-- {
			v.PushAfterHole(i)
		}
		checkRegions(t, v, nil, []int{1, 2, 3})
		if a, b := v.SlicesBeforeHole(); len(a)+len(b) != 0 {
			t.Errorf("before-hole views %v/%v, want empty", a, b)
		}
	})
}

func TestSlicesAreViews(t *testing.T) {
	// The views alias the container's storage rather than copying it.
	v := New[int]()
	v.PushBeforeHole(1)
	v.PushBeforeHole(2)
	v.PushAfterHole(3)

	a, _, _ := v.Slices()
	if len(a) == 0 {
		t.Fatal("expected a non-empty before view")
	}
	a[0] = 99
	b1, _ := v.SlicesBeforeHole()
	if b1[0] != 99 {
		t.Error("Slices returned a copy, not a view")
	}
}
