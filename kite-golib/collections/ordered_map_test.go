package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	om := NewOrderedMap(0)

	require.True(t, om.Set(3, 30))
	require.True(t, om.Set(2, 20))
	require.True(t, om.Set(1, 10))
	require.False(t, om.Set(2, 21))
	require.Equal(t, 3, om.Len())

	val, ok := om.Get(2)
	require.True(t, ok)
	require.Equal(t, 21, val)
	_, ok = om.Get(4)
	require.False(t, ok)

	var keys []int
	om.RangeInc(func(k, _ interface{}) bool {
		keys = append(keys, k.(int))
		return true
	})
	require.Equal(t, []int{3, 2, 1}, keys)

	require.True(t, om.Touch(3))
	k, _, ok := om.Oldest()
	require.True(t, ok)
	require.Equal(t, 2, k)

	// deleting during iteration is allowed
	om.RangeInc(func(k, _ interface{}) bool {
		om.Delete(k)
		return true
	})
	require.Equal(t, 0, om.Len())
	_, _, ok = om.Oldest()
	require.False(t, ok)
}

func TestOrderedMapTouch(t *testing.T) {
	om := NewOrderedMap(4)
	for i := 0; i < 4; i++ {
		om.Set(i, i*10)
	}
	require.False(t, om.Touch(9))
	require.True(t, om.Touch(0))
	require.True(t, om.Touch(2))
	// touching the newest entry keeps the order
	require.True(t, om.Touch(2))

	var keys []int
	om.RangeInc(func(k, _ interface{}) bool {
		keys = append(keys, k.(int))
		return len(keys) < 3
	})
	require.Equal(t, []int{1, 3, 0}, keys)

	val, ok := om.Delete(3)
	require.True(t, ok)
	require.Equal(t, 30, val)
	_, ok = om.Delete(3)
	require.False(t, ok)

	k, v, ok := om.Oldest()
	require.True(t, ok)
	require.Equal(t, 1, k)
	require.Equal(t, 10, v)
}
