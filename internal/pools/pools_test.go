package pools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrays(t *testing.T) {
	p := NewArrays[int](4)
	a := p.Get()
	require.Zero(t, a.Len())
	require.Equal(t, 4, a.Cap())
	for i := range 9 {
		a.Add(i)
	}
	require.Equal(t, 16, a.Cap())

	r := Arrays[int]{}.Reset(a)
	require.Same(t, a, r)
	require.Zero(t, r.Len())
	require.Equal(t, 16, r.Cap())
}

func TestArraysNegativeCap(t *testing.T) {
	a := Arrays[string]{Cap: -1}.Init()
	require.Zero(t, a.Len())
	require.Zero(t, a.Cap())
}
