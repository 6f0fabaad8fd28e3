package rawvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, v *Vector[int], xs ...int) {
	t.Helper()
	for _, x := range xs {
		require.NoError(t, v.PushBack(x))
	}
}

func TestNewIsEmpty(t *testing.T) {
	v := New[int]()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Empty(t, v.Slice())
}

func TestSizedConstructThenPush(t *testing.T) {
	v := NewSized[int](3)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 3, v.Cap())
	require.NoError(t, v.PushBack(0))
	assert.Equal(t, 4, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 4)
	assert.Equal(t, []int{0, 0, 0, 0}, v.Slice())
}

func TestInsertAtFront(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3)
	i, err := v.Insert(0, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, []int{9, 1, 2, 3}, v.Slice())
}

func TestEraseMiddle(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3, 4)
	i, err := v.Erase(1)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, []int{1, 3, 4}, v.Slice())
}

func TestEraseDestroysRemovedElement(t *testing.T) {
	var destroyed []int
	ops := Ops[int]{
		Destroy:  func(p *int) { destroyed = append(destroyed, *p) },
		MoveSafe: true,
	}
	v := NewWith(ops)
	for i := 1; i <= 4; i++ {
		require.NoError(t, v.PushBack(i))
	}
	destroyed = nil

	_, err := v.Erase(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, destroyed, "the erased element must be the one torn down")
	assert.Equal(t, []int{1, 3, 4}, v.Slice())

	_, err = v.Erase(2) // last element, no shift
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, destroyed)
	assert.Equal(t, []int{1, 3}, v.Slice())
}

func TestReserveThenFillKeepsCapacity(t *testing.T) {
	v := New[int]()
	require.NoError(t, v.Reserve(10))
	require.Equal(t, 10, v.Cap())
	for i := 0; i < 10; i++ {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 10, v.Cap())
}

func TestReserveSmallerIsNoop(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3, 4)
	before := v.Cap()
	require.NoError(t, v.Reserve(2))
	assert.Equal(t, before, v.Cap())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestGrowthIsGeometric(t *testing.T) {
	v := New[int]()
	caps := []int{}
	last := -1
	for i := 0; i < 70; i++ {
		require.NoError(t, v.PushBack(i))
		if v.Cap() != last {
			last = v.Cap()
			caps = append(caps, last)
		}
		require.LessOrEqual(t, v.Len(), v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16, 32, 64, 128}, caps)
}

func TestResize(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2)
	require.NoError(t, v.Resize(5))
	assert.Equal(t, []int{1, 2, 0, 0, 0}, v.Slice())
	require.NoError(t, v.Resize(1))
	assert.Equal(t, []int{1}, v.Slice())
	assert.GreaterOrEqual(t, v.Cap(), 5) // shrinking size keeps capacity
}

func TestPopBack(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2)
	v.PopBack()
	assert.Equal(t, []int{1}, v.Slice())
	v.PopBack()
	v.PopBack() // no-op past empty
	assert.Equal(t, 0, v.Len())
}

func TestEmplaceReturnsIndex(t *testing.T) {
	v := New[string]()
	i, err := v.EmplaceBack(func() (string, error) { return "a", nil })
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = v.Emplace(0, func() (string, error) { return "b", nil })
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, []string{"b", "a"}, v.Slice())
}

func TestInsertMoveVacatesSource(t *testing.T) {
	v := New[[]int]()
	x := []int{1, 2}
	_, err := v.InsertMove(0, &x)
	require.NoError(t, err)
	assert.Nil(t, x) // default move zeroes the source
	assert.Equal(t, [][]int{{1, 2}}, v.Slice())
}

func TestCloneLeavesSourceIntact(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3)
	c, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.Slice())
	assert.Equal(t, 3, c.Cap()) // clone capacity is exactly the source size
	c.Set(0, 9)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestCopyFromLargerThanCapacity(t *testing.T) {
	dst := New[int]()
	fill(t, dst, 7)
	src := New[int]()
	fill(t, src, 1, 2, 3, 4, 5)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, dst.Slice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, src.Slice())
}

func TestCopyFromSmallerInPlace(t *testing.T) {
	dst := New[int]()
	fill(t, dst, 1, 2, 3, 4)
	capBefore := dst.Cap()
	src := New[int]()
	fill(t, src, 8, 9)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{8, 9}, dst.Slice())
	assert.Equal(t, capBefore, dst.Cap())
}

func TestCopyFromLargerWithinCapacity(t *testing.T) {
	dst := New[int]()
	require.NoError(t, dst.Reserve(8))
	fill(t, dst, 1, 2)
	src := New[int]()
	fill(t, src, 5, 6, 7)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{5, 6, 7}, dst.Slice())
	assert.Equal(t, 8, dst.Cap())
}

func TestCopyFromSelf(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2)
	require.NoError(t, v.CopyFrom(v))
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestMoveFromEmptiesSource(t *testing.T) {
	src := New[int]()
	fill(t, src, 1, 2, 3)
	dst := New[int]()
	fill(t, dst, 9)
	dst.MoveFrom(src)
	assert.Equal(t, []int{1, 2, 3}, dst.Slice())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
	dst.MoveFrom(dst) // self-move is a no-op
	assert.Equal(t, []int{1, 2, 3}, dst.Slice())
}

func TestTake(t *testing.T) {
	src := New[int]()
	fill(t, src, 4, 5)
	v := Take(src)
	assert.Equal(t, []int{4, 5}, v.Slice())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
}

func TestSwap(t *testing.T) {
	a := New[int]()
	fill(t, a, 1, 2)
	b := New[int]()
	fill(t, b, 3)
	a.Swap(b)
	assert.Equal(t, []int{3}, a.Slice())
	assert.Equal(t, []int{1, 2}, b.Slice())
}

func TestClearKeepsCapacity(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3)
	capBefore := v.Cap()
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, capBefore, v.Cap())
}

func TestAtSet(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3)
	assert.Equal(t, 2, v.At(1))
	v.Set(1, 20)
	assert.Equal(t, 20, v.At(1))
}

func TestSliceAliasesBuffer(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2, 3)
	s := v.Slice()
	s[0] = 10
	assert.Equal(t, 10, v.At(0))
}

func TestIteration(t *testing.T) {
	v := New[int]()
	fill(t, v, 5, 6, 7)
	var idx, sum int
	for i, x := range v.All() {
		assert.Equal(t, idx, i)
		idx++
		sum += x
	}
	assert.Equal(t, 18, sum)

	got := []int{}
	for x := range v.Values() {
		got = append(got, x)
		if len(got) == 2 {
			break // early exit is clean
		}
	}
	assert.Equal(t, []int{5, 6}, got)
}

func TestContractPanics(t *testing.T) {
	v := New[int]()
	fill(t, v, 1, 2)
	require.Panics(t, func() { v.At(2) })
	require.Panics(t, func() { v.At(-1) })
	require.Panics(t, func() { v.Set(2, 0) })
	require.Panics(t, func() { _, _ = v.Insert(3, 0) })
	require.Panics(t, func() { _, _ = v.Erase(2) })
	require.Panics(t, func() { _ = v.Resize(-1) })
	require.NotPanics(t, func() { _, _ = v.Insert(2, 3) }) // end offset is valid
}
