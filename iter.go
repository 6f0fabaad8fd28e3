package rawvec

import "iter"

// All ranges over the live elements in order together with their
// indexes. The sequence is restartable and finite.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values ranges over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Slice returns the live elements as a slice aliasing the vector's
// buffer: writes through it are visible to the vector. The view stays
// valid only until the next size- or capacity-changing call.
func (v *Vector[T]) Slice() []T {
	return v.data.From(0)[:v.size]
}
