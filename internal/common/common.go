package common

import "fmt"

// GrowCap returns the capacity to grow to from cur: doubling, with 1
// as the first step from empty. Geometric growth keeps the total
// relocation cost linear across N consecutive appends.
func GrowCap(cur int) int {
	if cur == 0 {
		return 1
	}
	return cur * 2
}

// CheckIndex panics unless i is a valid element index in [0,n).
func CheckIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("rawvec: %s: index %d out of range [0,%d)", op, i, n))
	}
}

// CheckOffset panics unless i is a valid offset in [0,n]. Unlike an
// index, an offset may point one past the last slot.
func CheckOffset(op string, i, n int) {
	if i < 0 || i > n {
		panic(fmt.Sprintf("rawvec: %s: offset %d out of range [0,%d]", op, i, n))
	}
}
