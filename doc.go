// Package rawvec implements a dynamic array with an explicit split
// between reserved capacity and live element count, layered over a
// RawBuffer that owns slots without managing element lifecycle.
//
// Element construction, copying, moving and destruction run through an
// injectable Ops policy, so types whose lifecycle steps can fail get
// defined failure behaviour: growth relocation and reallocating
// copy-assignment keep the strong guarantee (the vector is untouched
// on failure), while the in-place insert/erase shift path keeps a basic
// guarantee (valid but unspecified arrangement) — a deliberate
// trade-off, since strengthening it would force a relocation per
// insert.
//
// Out-of-range indexes and positions panic, the same contract surface
// as built-in slices.
package rawvec
