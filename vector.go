package rawvec

import (
	"fmt"

	"github.com/rawbytedev/rawvec/internal/common"
)

// Vector is a growable contiguous sequence with an explicit
// size/capacity split: slots [0,Len) of the owned RawBuffer hold live
// elements, slots [Len,Cap) are vacant. Element lifecycle follows the
// vector's Ops policy; relocation during growth moves elements only
// when the policy guarantees the move cannot fail, and copies
// otherwise, so a failed growth never leaves the sequence torn.
//
// A Vector is a single-owner value: it is not safe for concurrent
// mutation and must not be copied by struct assignment. Duplicate
// with Clone, transfer with Take or MoveFrom.
type Vector[T any] struct {
	data RawBuffer[T]
	size int
	ops  Ops[T]
}

// New returns an empty vector for plainly-assignable element types.
func New[T any]() *Vector[T] {
	return &Vector[T]{ops: DefaultOps[T]()}
}

// NewWith returns an empty vector using the given lifecycle policy.
func NewWith[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewSized returns a vector of n zero-valued elements with capacity
// exactly n.
func NewSized[T any](n int) *Vector[T] {
	v := New[T]()
	v.data = NewRawBuffer[T](n)
	v.size = n
	return v
}

// NewSizedWith is NewSized under a lifecycle policy, running the New
// hook for every element. If the hook fails, every element
// constructed so far is destroyed and the error is returned.
func NewSizedWith[T any](n int, ops Ops[T]) (*Vector[T], error) {
	v := NewWith[T](ops)
	if n == 0 {
		return v, nil
	}
	data := NewRawBuffer[T](n)
	for i := 0; i < n; i++ {
		e, err := ops.newElem()
		if err != nil {
			destroyRange(&ops, &data, 0, i)
			data.Release()
			return nil, fmt.Errorf("rawvec: construct element %d: %w", i, err)
		}
		*data.At(i) = e
	}
	v.data.MoveFrom(&data)
	v.size = n
	return v, nil
}

// Take move-constructs a vector from src, leaving src empty with no
// capacity. No element is constructed or destroyed.
func Take[T any](src *Vector[T]) *Vector[T] {
	v := NewWith[T](src.ops)
	v.data.MoveFrom(&src.data)
	v.size = src.size
	src.size = 0
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of reserved slots.
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// At returns the element at index i. Panics when i is out of range.
func (v *Vector[T]) At(i int) T {
	common.CheckIndex("At", i, v.size)
	return *v.data.At(i)
}

// Set overwrites the element at index i by plain assignment. No
// lifecycle hook runs; hook-managed types should Destroy the old
// value themselves if it owns resources.
func (v *Vector[T]) Set(i int, x T) {
	common.CheckIndex("Set", i, v.size)
	*v.data.At(i) = x
}

// Clone copy-constructs a new vector with capacity equal to Len,
// under the same lifecycle policy. The receiver is left unmodified
// even when a Copy hook fails midway.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := NewWith[T](v.ops)
	if v.size == 0 {
		return out, nil
	}
	data := NewRawBuffer[T](v.size)
	for i := 0; i < v.size; i++ {
		e, err := v.ops.copyElem(v.data.At(i))
		if err != nil {
			destroyRange(&v.ops, &data, 0, i)
			data.Release()
			return nil, fmt.Errorf("rawvec: copy element %d: %w", i, err)
		}
		*data.At(i) = e
	}
	out.data.MoveFrom(&data)
	out.size = v.size
	return out, nil
}

// CopyFrom replaces the receiver's contents with a copy of src's,
// leaving src unmodified. The receiver keeps its own lifecycle
// policy either way. When src does not fit in the current capacity
// the copy is built aside and swapped in, so a failure leaves the
// receiver untouched. The in-place path overwrites the common prefix
// first, then destroys the surplus or copy-constructs the missing
// tail; a failure there keeps the vector valid but the prefix may
// already hold copied values.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.Cap() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		ops := v.ops
		v.Swap(tmp)
		// Swap traded policies too; tmp keeps the receiver's old one,
		// which is what its old contents were built under, and the
		// receiver gets its own back
		v.ops = ops
		tmp.dispose()
		return nil
	}
	n := min(v.size, src.size)
	for i := 0; i < n; i++ {
		e, err := v.ops.copyElem(src.data.At(i))
		if err != nil {
			return fmt.Errorf("rawvec: copy element %d: %w", i, err)
		}
		v.ops.destroyElem(v.data.At(i))
		*v.data.At(i) = e
	}
	if src.size < v.size {
		destroyRange(&v.ops, &v.data, src.size, v.size)
	} else {
		for i := v.size; i < src.size; i++ {
			e, err := v.ops.copyElem(src.data.At(i))
			if err != nil {
				destroyRange(&v.ops, &v.data, v.size, i)
				return fmt.Errorf("rawvec: copy element %d: %w", i, err)
			}
			*v.data.At(i) = e
		}
	}
	v.size = src.size
	return nil
}

// MoveFrom releases the receiver's contents and takes ownership of
// src's buffer and size; src is left empty with no capacity. No
// element is constructed, copied or moved during the transfer.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.dispose()
	v.data.MoveFrom(&src.data)
	v.size = src.size
	v.ops = src.ops
	src.size = 0
}

// Swap exchanges contents (buffer, size and policy) with other in
// constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// Clear destroys all live elements, keeping capacity.
func (v *Vector[T]) Clear() {
	destroyRange(&v.ops, &v.data, 0, v.size)
	v.size = 0
}

// Reserve grows capacity to at least n, relocating the live elements
// into a fresh buffer. A no-op when n does not exceed the current
// capacity. On failure the vector is unchanged, except for move-only
// types with a failable Move, where already-moved slots stay vacated
// (a failed move has no rollback path).
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	nd := NewRawBuffer[T](n)
	if err := v.relocate(&nd, -1); err != nil {
		nd.Release()
		return err
	}
	v.adopt(&nd)
	return nil
}

// Resize grows or shrinks the live count to n. Growth reserves
// capacity then default-constructs the new tail; shrinking destroys
// the surplus elements. A construction failure destroys the partial
// tail and leaves the original elements in place (capacity may have
// grown already).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("rawvec: Resize: negative count %d", n))
	}
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			e, err := v.ops.newElem()
			if err != nil {
				destroyRange(&v.ops, &v.data, v.size, i)
				return fmt.Errorf("rawvec: construct element %d: %w", i, err)
			}
			*v.data.At(i) = e
		}
	} else {
		destroyRange(&v.ops, &v.data, n, v.size)
	}
	v.size = n
	return nil
}

// Emplace constructs a new element at index i, shifting later
// elements one slot right and preserving their order. i may equal Len
// to append. Returns the index of the inserted element.
//
// When the vector is full it grows into a fresh buffer with the new
// element constructed there first, so any failure leaves the original
// contents untouched (same caveat as Reserve for failable move-only
// types). With spare capacity the shift happens in place; a Move hook
// failure mid-shift leaves the vector valid but with the elements
// from i onward in an unspecified arrangement. This weaker guarantee
// on the in-place path is deliberate: upgrading it would cost an
// extra relocation per insert.
func (v *Vector[T]) Emplace(i int, ctor func() (T, error)) (int, error) {
	common.CheckOffset("Emplace", i, v.size)
	if v.size == v.data.Cap() {
		if err := v.emplaceRelocate(i, ctor); err != nil {
			return 0, err
		}
	} else if err := v.emplaceInPlace(i, ctor); err != nil {
		return 0, err
	}
	v.size++
	return i, nil
}

// EmplaceBack constructs a new element at the end and returns its
// index.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (int, error) {
	return v.Emplace(v.size, ctor)
}

// PushBack appends x. The value is taken as given; no lifecycle hook
// runs for it.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.Emplace(v.size, func() (T, error) { return x, nil })
	return err
}

// Insert copy-inserts *x at index i through the Copy hook, leaving *x
// intact. Move-only types must use InsertMove. Returns the index of
// the inserted element.
func (v *Vector[T]) Insert(i int, x T) (int, error) {
	return v.Emplace(i, func() (T, error) { return v.ops.copyElem(&x) })
}

// InsertMove moves *x into the vector at index i, vacating *x.
func (v *Vector[T]) InsertMove(i int, x *T) (int, error) {
	return v.Emplace(i, func() (T, error) { return v.ops.moveElem(x) })
}

// PopBack destroys the last element. A no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.ops.destroyElem(v.data.At(v.size - 1))
	v.size--
}

// Erase destroys the element at index i, shifting later elements one
// slot left and preserving their order. Returns the index now holding
// the element that followed the removed one. A Move hook failure
// mid-shift leaves the vector valid but with the elements from i
// onward in an unspecified arrangement (the removed element is
// already destroyed by then).
func (v *Vector[T]) Erase(i int) (int, error) {
	common.CheckIndex("Erase", i, v.size)
	v.ops.destroyElem(v.data.At(i))
	for j := i; j < v.size-1; j++ {
		e, err := v.ops.moveElem(v.data.At(j + 1))
		if err != nil {
			return 0, fmt.Errorf("rawvec: shift element %d: %w", j+1, err)
		}
		*v.data.At(j) = e
	}
	if i < v.size-1 {
		// the final move vacated the last slot; zero it so the GC can
		// reclaim whatever a non-zero vacated value still references
		var zero T
		*v.data.At(v.size - 1) = zero
	}
	v.size--
	return i, nil
}

func (v *Vector[T]) emplaceRelocate(i int, ctor func() (T, error)) error {
	nd := NewRawBuffer[T](common.GrowCap(v.data.Cap()))
	e, err := ctor()
	if err != nil {
		nd.Release()
		return err
	}
	*nd.At(i) = e
	if err := v.relocate(&nd, i); err != nil {
		v.ops.destroyElem(nd.At(i))
		nd.Release()
		return err
	}
	v.adopt(&nd)
	return nil
}

func (v *Vector[T]) emplaceInPlace(i int, ctor func() (T, error)) error {
	if i == v.size {
		e, err := ctor()
		if err != nil {
			return err
		}
		*v.data.At(i) = e
		return nil
	}
	// Build the new element aside, move the current last element into
	// the vacant slot at the end, shift [i,size-1) one slot right,
	// then land the new element in the freed slot. At no intermediate
	// step does any value exist twice or get destroyed twice.
	tmp, err := ctor()
	if err != nil {
		return err
	}
	last, err := v.ops.moveElem(v.data.At(v.size - 1))
	if err != nil {
		v.ops.destroyElem(&tmp)
		return fmt.Errorf("rawvec: shift element %d: %w", v.size-1, err)
	}
	*v.data.At(v.size) = last
	for j := v.size - 1; j > i; j-- {
		e, err := v.ops.moveElem(v.data.At(j - 1))
		if err != nil {
			v.ops.destroyElem(v.data.At(v.size))
			v.ops.destroyElem(&tmp)
			return fmt.Errorf("rawvec: shift element %d: %w", j-1, err)
		}
		*v.data.At(j) = e
	}
	*v.data.At(i) = tmp
	return nil
}

// relocate transfers the live elements into dst, skipping dst slot
// gap when gap >= 0 (the caller has already constructed an element
// there). Uses move or copy per the Ops policy. On error every
// element this call constructed in dst is destroyed; with copy
// relocation the source stays fully intact.
func (v *Vector[T]) relocate(dst *RawBuffer[T], gap int) error {
	byMove := v.ops.relocateByMove()
	for i := 0; i < v.size; i++ {
		var e T
		var err error
		if byMove {
			e, err = v.ops.moveElem(v.data.At(i))
		} else {
			e, err = v.ops.copyElem(v.data.At(i))
		}
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.ops.destroyElem(dst.At(dstSlot(j, gap)))
			}
			return fmt.Errorf("rawvec: relocate element %d: %w", i, err)
		}
		*dst.At(dstSlot(i, gap)) = e
	}
	return nil
}

// adopt installs nd as the vector's buffer and releases the old one.
// After a copy relocation the old elements are still live and get
// destroyed here; after a move relocation their slots are already
// vacant and destroying them would run hooks on vacated values.
func (v *Vector[T]) adopt(nd *RawBuffer[T]) {
	if !v.ops.relocateByMove() {
		destroyRange(&v.ops, &v.data, 0, v.size)
	}
	v.data.Swap(nd)
	nd.Release()
}

// dispose destroys all live elements and releases the buffer.
func (v *Vector[T]) dispose() {
	destroyRange(&v.ops, &v.data, 0, v.size)
	v.size = 0
	v.data.Release()
}

func dstSlot(i, gap int) int {
	if gap >= 0 && i >= gap {
		return i + 1
	}
	return i
}

func destroyRange[T any](ops *Ops[T], buf *RawBuffer[T], lo, hi int) {
	for i := hi - 1; i >= lo; i-- {
		ops.destroyElem(buf.At(i))
	}
}
