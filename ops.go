package rawvec

import "errors"

var (
	ErrNoCopy = errors.New("rawvec: element type is move-only")
)

// Ops bundles the element lifecycle hooks for a Vector. Every field
// is optional; nil hooks fall back to plain Go assignment, which
// cannot fail. Hooks exist for element types whose construct, copy or
// move steps can fail or carry side effects (resource handles,
// instrumentation counters).
type Ops[T any] struct {
	// New default-constructs an element. Nil means the zero value.
	New func() (T, error)

	// Copy builds an independent copy of *src, leaving *src intact.
	// Nil means assignment.
	Copy func(src *T) (T, error)

	// Move transfers the value out of *src. The hook must leave *src
	// vacated: the slot is discarded afterwards without Destroy. Nil
	// means assignment plus zeroing the source slot.
	Move func(src *T) (T, error)

	// Destroy tears a live element down before its slot is vacated.
	// The slot is zeroed afterwards regardless, so the GC can reclaim
	// whatever the element referenced.
	Destroy func(*T)

	// MoveSafe declares that Move never returns an error. Growth
	// relocation transfers elements by move only when MoveSafe is set
	// or the type is move-only; otherwise it copies, so that a
	// failure midway leaves the original buffer fully intact and the
	// operation can be aborted cleanly. A failed move cannot be
	// rolled back: the already-moved source slots stay vacated.
	MoveSafe bool

	// MoveOnly forbids copying: Clone, CopyFrom, Insert and copy
	// relocation fail with ErrNoCopy, and relocation always moves.
	MoveOnly bool
}

// DefaultOps is the policy for plainly-assignable element types:
// zero-value construction, assignment copy and move, trivial destroy.
// Assignment cannot fail, so MoveSafe is set.
func DefaultOps[T any]() Ops[T] {
	return Ops[T]{MoveSafe: true}
}

// relocateByMove reports whether growth relocation transfers elements
// by move rather than copy. Mirrors the rule "prefer move; fall back
// to copy when move is not guaranteed non-failing and copy is
// available".
func (o *Ops[T]) relocateByMove() bool {
	return o.MoveSafe || o.MoveOnly
}

func (o *Ops[T]) newElem() (T, error) {
	if o.New != nil {
		return o.New()
	}
	var zero T
	return zero, nil
}

func (o *Ops[T]) copyElem(src *T) (T, error) {
	if o.MoveOnly {
		var zero T
		return zero, ErrNoCopy
	}
	if o.Copy != nil {
		return o.Copy(src)
	}
	return *src, nil
}

func (o *Ops[T]) moveElem(src *T) (T, error) {
	if o.Move != nil {
		return o.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (o *Ops[T]) destroyElem(p *T) {
	if o.Destroy != nil {
		o.Destroy(p)
	}
	var zero T
	*p = zero
}
