package slices

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 }))
	assert.Nil(t, Filter([]int{1, 3}, func(x int) bool { return x%2 == 0 }))
	assert.True(t, ContainsFunc([]int{1, 5}, func(x int) bool { return x > 4 }))
	assert.False(t, ContainsFunc([]int(nil), func(int) bool { return true }))
}
