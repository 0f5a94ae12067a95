// Package deque provides a growable double-ended queue backed by a
// circular buffer. Push and pop at either end run in amortized O(1),
// rotation of k elements runs in O(k) without allocating, and the
// current contents are always reachable as at most two contiguous
// views into the single backing allocation.
package deque

import "math/bits"

// minCapacity is the smallest non-zero buffer size. Capacities are
// kept at powers of two so index wrapping is a mask operation.
const minCapacity = 8

// Deque is a generic double-ended queue over a circular buffer.
// The zero value is an empty deque ready to use.
//
// A Deque must not be accessed concurrently with a mutating call;
// callers needing shared access must synchronize externally.
type Deque[T any] struct {
	buf  []T
	head int // index of the first logical element
	size int
}

// New creates an empty deque with no allocated storage.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// WithCapacity creates an empty deque with room for at least n
// elements before the first reallocation.
func WithCapacity[T any](n int) *Deque[T] {
	d := &Deque[T]{}
	d.Reserve(n)
	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// Cap returns the current storage capacity.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.size == 0 }

// PushBack appends v after the last element.
func (d *Deque[T]) PushBack(v T) {
	if d.size == len(d.buf) {
		d.resize(d.size + 1)
	}
	d.buf[(d.head+d.size)&(len(d.buf)-1)] = v
	d.size++
}

// PushFront inserts v before the first element.
func (d *Deque[T]) PushFront(v T) {
	if d.size == len(d.buf) {
		d.resize(d.size + 1)
	}
	d.head = (d.head - 1) & (len(d.buf) - 1)
	d.buf[d.head] = v
	d.size++
}

// PopBack removes and returns the last element.
// Returns ok=false and leaves the deque unchanged when empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := (d.head + d.size - 1) & (len(d.buf) - 1)
	v := d.buf[i]
	d.buf[i] = zero // release for GC
	d.size--
	return v, true
}

// PopFront removes and returns the first element.
// Returns ok=false and leaves the deque unchanged when empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero // release for GC
	d.head = (d.head + 1) & (len(d.buf) - 1)
	d.size--
	return v, true
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}
	return d.buf[(d.head+d.size-1)&(len(d.buf)-1)], true
}

// RotateLeft moves the first k elements to the back, preserving their
// relative order. O(k); never allocates. Panics if k is negative or
// exceeds Len.
func (d *Deque[T]) RotateLeft(k int) {
	if k < 0 || k > d.size {
		panic("deque: rotate count out of range")
	}
	if k == 0 || k == d.size {
		return
	}
	mask := len(d.buf) - 1
	if d.size == len(d.buf) {
		// Full ring: rotation is a head adjustment.
		d.head = (d.head + k) & mask
		return
	}
	var zero T
	for i := 0; i < k; i++ {
		d.buf[(d.head+d.size)&mask] = d.buf[d.head]
		d.buf[d.head] = zero
		d.head = (d.head + 1) & mask
	}
}

// RotateRight moves the last k elements to the front, preserving their
// relative order. O(k); never allocates. Panics if k is negative or
// exceeds Len.
func (d *Deque[T]) RotateRight(k int) {
	if k < 0 || k > d.size {
		panic("deque: rotate count out of range")
	}
	if k == 0 || k == d.size {
		return
	}
	mask := len(d.buf) - 1
	if d.size == len(d.buf) {
		d.head = (d.head - k) & mask
		return
	}
	var zero T
	for i := 0; i < k; i++ {
		d.head = (d.head - 1) & mask
		last := (d.head + d.size) & mask
		d.buf[d.head] = d.buf[last]
		d.buf[last] = zero
	}
}

// Slices returns the contents as two contiguous views into the backing
// buffer; concatenating front then back yields the logical sequence.
// back is nil unless the sequence currently wraps past the end of the
// allocation. The views share storage with the deque and are
// invalidated by any mutating call.
func (d *Deque[T]) Slices() (front, back []T) {
	if d.size == 0 {
		return nil, nil
	}
	end := d.head + d.size
	if end <= len(d.buf) {
		return d.buf[d.head:end], nil
	}
	return d.buf[d.head:], d.buf[:end-len(d.buf)]
}

// Clear removes all elements but keeps the allocated storage.
func (d *Deque[T]) Clear() {
	front, back := d.Slices()
	clear(front)
	clear(back)
	d.head, d.size = 0, 0
}

// Clone returns a deque with the same elements and capacity.
// Elements are shallow-copied.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{size: d.size}
	if len(d.buf) == 0 {
		return c
	}
	c.buf = make([]T, len(d.buf))
	front, back := d.Slices()
	n := copy(c.buf, front)
	copy(c.buf[n:], back)
	return c
}

// Reserve grows the storage so at least n elements fit without further
// reallocation. It never shrinks.
func (d *Deque[T]) Reserve(n int) {
	if n > len(d.buf) {
		d.resize(n)
	}
}

// resize reallocates to the smallest valid capacity holding at least n
// elements, linearizing the contents at offset zero.
func (d *Deque[T]) resize(n int) {
	newCap := max(n, minCapacity)
	if newCap&(newCap-1) != 0 {
		newCap = 1 << bits.Len(uint(newCap))
	}
	buf := make([]T, newCap)
	front, back := d.Slices()
	m := copy(buf, front)
	copy(buf[m:], back)
	d.buf = buf
	d.head = 0
}
