package pools

import (
	"sync"

	"github.com/gernest/dynarray/array"
)

type PooledItem[T any] interface {
	Init() T
	Reset(T) T
}

type Pool[T any] struct {
	Init PooledItem[T]
	base sync.Pool
}

func (p *Pool[T]) Get() T {
	if v := p.base.Get(); v != nil {
		return v.(T)
	}
	return p.Init.Init()
}

func (p *Pool[T]) Put(v T) {
	p.base.Put(p.Init.Reset(v))
}

// Arrays creates arrays able to hold Cap elements. Recycled arrays are emptied
// but keep whatever capacity they grew to.
type Arrays[T any] struct {
	Cap int
}

func (a Arrays[T]) Init() *array.Array[T] {
	x, err := array.WithCapacity[T](a.Cap)
	if err != nil {
		return array.New[T]()
	}
	return x
}

func (Arrays[T]) Reset(x *array.Array[T]) *array.Array[T] {
	x.Reset()
	return x
}

// NewArrays returns a pool of arrays with initial capacity n.
func NewArrays[T any](n int) *Pool[*array.Array[T]] {
	return &Pool[*array.Array[T]]{Init: Arrays[T]{Cap: n}}
}
