package rawvec

import "github.com/rawbytedev/rawvec/internal/common"

// RawBuffer owns storage for a fixed number of element slots and
// nothing else: it never constructs, copies, or destroys elements.
// Which slots hold live values is the owning container's bookkeeping.
//
// A RawBuffer is exclusively owned. It must not be copied; transfer
// ownership with MoveFrom or exchange it with Swap.
type RawBuffer[T any] struct {
	slots []T
}

// NewRawBuffer allocates storage for capacity slots. Zero capacity
// allocates nothing and leaves the buffer with nil storage.
func NewRawBuffer[T any](capacity int) RawBuffer[T] {
	if capacity == 0 {
		return RawBuffer[T]{}
	}
	return RawBuffer[T]{slots: make([]T, capacity)}
}

// Cap returns the number of reserved slots.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the slot at index i. The slot may be vacant; whether it
// holds a live element is the caller's concern.
func (b *RawBuffer[T]) At(i int) *T {
	common.CheckIndex("RawBuffer.At", i, len(b.slots))
	return &b.slots[i]
}

// From returns the slots starting at offset. offset may equal Cap, in
// which case the result is empty.
func (b *RawBuffer[T]) From(offset int) []T {
	common.CheckOffset("RawBuffer.From", offset, len(b.slots))
	return b.slots[offset:]
}

// Swap exchanges storage with other in constant time.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases b's own storage and takes ownership of other's,
// leaving other empty. Live elements in b must already be destroyed.
func (b *RawBuffer[T]) MoveFrom(other *RawBuffer[T]) {
	if b == other {
		return
	}
	b.slots = other.slots
	other.slots = nil
}

// Release drops the storage. Live elements must already be destroyed;
// a no-op on an empty buffer.
func (b *RawBuffer[T]) Release() {
	b.slots = nil
}
