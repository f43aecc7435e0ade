package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiset(t *testing.T) {
	set := NewMultiset([]int64{150, 0, 30, 150, 100})

	assert.Equal(t, 5, set.Len())
	assert.Equal(t, []int64{0, 30, 100, 150}, set.Distinct())
	assert.Equal(t, []int64{0, 30, 100, 150, 150}, set.Values())
	assert.Equal(t, 2, set.Count(150))
	assert.False(t, set.Contains(42))

	assert.True(t, set.Remove(150))
	assert.Equal(t, 1, set.Count(150))
	assert.Equal(t, []int64{0, 30, 100, 150}, set.Distinct())

	assert.True(t, set.Remove(150))
	assert.False(t, set.Remove(150))
	assert.False(t, set.Contains(150))
	assert.Equal(t, []int64{0, 30, 100}, set.Distinct())
	assert.Equal(t, 3, set.Len())

	assert.True(t, set.Remove(0))
	assert.Equal(t, []int64{30, 100}, set.Values())
}

func TestMultiset_DistinctIsCopy(t *testing.T) {
	set := NewMultiset([]int{3, 1, 2})
	distinct := set.Distinct()
	distinct[0] = 99
	assert.Equal(t, []int{1, 2, 3}, set.Distinct())
}

func TestMultiset_Empty(t *testing.T) {
	set := NewMultiset[int](nil)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Values())
	assert.False(t, set.Remove(1))
}
