package holevec

import "github.com/TethysSvensson/hole-vec/internal/deque"

// HoleVec is an ordered sequence with one movable hole. The hole
// splits the sequence into a before-hole prefix and an after-hole
// suffix; pushes and pops act on the element adjacent to the hole.
//
// The zero value is an empty container with the hole at position 0,
// ready to use.
//
// Storage layout: the after-hole region lives at the front of the
// underlying circular buffer with the element adjacent to the hole
// first, and the before-hole region lives at the back with the element
// adjacent to the hole last. Relocating the hole is then a rotation of
// the buffer, and both pushes land on a buffer end.
type HoleVec[T any] struct {
	buf     deque.Deque[T]
	holePos int // number of elements before the hole
}

// New creates an empty container with no allocated storage.
func New[T any]() *HoleVec[T] {
	return &HoleVec[T]{}
}

// WithCapacity creates an empty container with room for at least n
// elements before the first reallocation.
func WithCapacity[T any](n int) *HoleVec[T] {
	v := &HoleVec[T]{}
	v.buf.Reserve(n)
	return v
}

// Len returns the total number of elements, hole excluded.
func (v *HoleVec[T]) Len() int { return v.buf.Len() }

// IsEmpty reports whether the container holds no elements.
func (v *HoleVec[T]) IsEmpty() bool { return v.buf.IsEmpty() }

// Cap returns the current storage capacity.
func (v *HoleVec[T]) Cap() int { return v.buf.Cap() }

// LenBeforeHole returns the number of elements before the hole.
func (v *HoleVec[T]) LenBeforeHole() int { return v.holePos }

// LenAfterHole returns the number of elements after the hole.
func (v *HoleVec[T]) LenAfterHole() int { return v.buf.Len() - v.holePos }

// PushBeforeHole appends value at the end of the before-hole region,
// immediately left of the hole. Amortized O(1).
func (v *HoleVec[T]) PushBeforeHole(value T) {
	v.buf.PushBack(value)
	v.holePos++
}

// PushAfterHole inserts value at the start of the after-hole region,
// immediately right of the hole. Amortized O(1).
func (v *HoleVec[T]) PushAfterHole(value T) {
	v.buf.PushFront(value)
}

// PopBeforeHole removes and returns the element immediately left of
// the hole. Returns ok=false and leaves the container unchanged when
// the before-hole region is empty.
func (v *HoleVec[T]) PopBeforeHole() (T, bool) {
	if v.holePos == 0 {
		var zero T
		return zero, false
	}
	v.holePos--
	value, _ := v.buf.PopBack()
	return value, true
}

// PopAfterHole removes and returns the element immediately right of
// the hole. Returns ok=false and leaves the container unchanged when
// the after-hole region is empty.
func (v *HoleVec[T]) PopAfterHole() (T, bool) {
	if v.LenAfterHole() == 0 {
		var zero T
		return zero, false
	}
	value, _ := v.buf.PopFront()
	return value, true
}

// PeekBeforeHole returns the element immediately left of the hole
// without removing it.
func (v *HoleVec[T]) PeekBeforeHole() (T, bool) {
	if v.holePos == 0 {
		var zero T
		return zero, false
	}
	return v.buf.Back()
}

// PeekAfterHole returns the element immediately right of the hole
// without removing it.
func (v *HoleVec[T]) PeekAfterHole() (T, bool) {
	if v.LenAfterHole() == 0 {
		var zero T
		return zero, false
	}
	return v.buf.Front()
}

// MoveHoleRight shifts amount elements from the start of the
// after-hole region to the end of the before-hole region, preserving
// their relative order. O(amount). Panics if amount is negative or
// exceeds LenAfterHole; no mutation happens on a failed check.
func (v *HoleVec[T]) MoveHoleRight(amount int) {
	if amount < 0 || amount > v.LenAfterHole() {
		panic("holevec: move amount exceeds after-hole region")
	}
	v.holePos += amount
	v.buf.RotateLeft(amount)
}

// MoveHoleLeft shifts amount elements from the end of the before-hole
// region to the start of the after-hole region, preserving their
// relative order. O(amount). Panics if amount is negative or exceeds
// LenBeforeHole; no mutation happens on a failed check.
func (v *HoleVec[T]) MoveHoleLeft(amount int) {
	if amount < 0 || amount > v.holePos {
		panic("holevec: move amount exceeds before-hole region")
	}
	v.holePos -= amount
	v.buf.RotateRight(amount)
}

// SetHolePosition relocates the hole so that pos elements precede it.
// O(|pos - LenBeforeHole()|). Panics if pos is outside [0, Len()].
func (v *HoleVec[T]) SetHolePosition(pos int) {
	if pos < 0 || pos > v.Len() {
		panic("holevec: hole position out of range")
	}
	if pos > v.holePos {
		v.MoveHoleRight(pos - v.holePos)
	} else {
		v.MoveHoleLeft(v.holePos - pos)
	}
}

// Clear removes all elements and resets the hole to position 0,
// keeping the allocated storage.
func (v *HoleVec[T]) Clear() {
	v.buf.Clear()
	v.holePos = 0
}

// Clone returns a container with the same elements, hole position, and
// capacity. Elements are shallow-copied.
func (v *HoleVec[T]) Clone() *HoleVec[T] {
	return &HoleVec[T]{buf: *v.buf.Clone(), holePos: v.holePos}
}
