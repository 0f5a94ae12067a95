// Package holevec provides a sequence container with a single movable
// hole: a logical insertion cursor sitting between a before-hole region
// and an after-hole region. Elements push and pop next to the hole in
// amortized O(1), and the hole relocates in time proportional to the
// distance moved, without reallocating storage for the move.
//
// This is the classic gap-buffer technique, useful wherever a
// cursor-like insertion point travels through a large ordered
// collection and most edits land near the cursor (text editors,
// incremental parsers, undo logs).
//
// The hole is pure bookkeeping: it occupies no storage slot and holds
// no element. The logical sequence is always the before-hole region
// followed by the after-hole region, and is reachable without copying
// as at most three contiguous views via Slices.
//
// Basic usage:
//
//	v := holevec.New[int]()
//	v.PushBeforeHole(1)
//	v.PushBeforeHole(2)
//	v.PushAfterHole(3)  // sequence is [1 2 | 3]
//	v.MoveHoleLeft(1)   // sequence is [1 | 2 3]
//	x, _ := v.PopAfterHole() // x == 2
//
// A HoleVec is not safe for concurrent use. Slice views borrow the
// container's storage and are invalidated by any mutating call.
package holevec
