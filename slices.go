package holevec

// The underlying circular buffer reports its contents as two physical
// runs split purely by storage wraparound. The after-hole region
// occupies the buffer front and the before-hole region the buffer
// back, but hole relocation rotates elements between the two sides, so
// the physical split point and the logical hole boundary are
// independent. The functions below locate the hole boundary inside
// whichever physical run contains it, producing at most three
// contiguous views with no copying.

// Slices returns the logical sequence as three contiguous views whose
// concatenation is the before-hole region followed by the after-hole
// region. O(1), no copy. The views share the container's storage and
// are invalidated by any mutating call.
func (v *HoleVec[T]) Slices() ([]T, []T, []T) {
	front, back := v.buf.Slices()
	if n := v.LenAfterHole(); n <= len(front) {
		// The whole after-hole region sits inside the physical front
		// run; the rest of that run starts the before-hole region.
		return front[n:], back, front[:n]
	}
	// The hole boundary sits inside the physical back run: the
	// before-hole region is its tail, the after-hole region spills
	// from the front run into its head.
	split := len(back) - v.holePos
	return back[split:], front, back[:split]
}

// SlicesBeforeHole returns the before-hole region as two contiguous
// views whose concatenation is the region in order. O(1), no copy.
func (v *HoleVec[T]) SlicesBeforeHole() ([]T, []T) {
	front, back := v.buf.Slices()
	if n := v.LenAfterHole(); n <= len(front) {
		return front[n:], back
	}
	return back[len(back)-v.holePos:], nil
}

// SlicesAfterHole returns the after-hole region as two contiguous
// views whose concatenation is the region in order. O(1), no copy.
func (v *HoleVec[T]) SlicesAfterHole() ([]T, []T) {
	front, back := v.buf.Slices()
	if n := v.LenAfterHole(); n <= len(front) {
		return front[:n], nil
	}
	return front, back[:len(back)-v.holePos]
}
