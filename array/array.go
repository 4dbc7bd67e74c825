package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sequence is a read-only indexed view of elements.
type Sequence[T any] interface {
	Len() int
	Get(i int) (T, error)
}

// Array is a growable, zero-indexed sequence of T. The zero value is an empty
// array with capacity 0.
type Array[T any] struct {
	// len(data) is the capacity. Slots past size hold the zero value.
	data []T
	size int
}

var _ Sequence[int] = (*Array[int])(nil)

func allocate[T any](n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative capacity %d", n)
	}
	return make([]T, n), nil
}

// New returns an empty array with capacity 0.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// WithCapacity returns an empty array able to hold n elements before growing.
func WithCapacity[T any](n int) (*Array[T], error) {
	data, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	return &Array[T]{data: data}, nil
}

// From returns an array holding values in order, with capacity len(values).
func From[T any](values ...T) *Array[T] {
	a := &Array[T]{data: make([]T, len(values))}
	for i := range values {
		a.Add(values[i])
	}
	return a
}

func withLen[T any](n int) *Array[T] {
	return &Array[T]{data: make([]T, n), size: n}
}

// Clone returns an independent copy with the same elements and capacity.
func (a *Array[T]) Clone() *Array[T] {
	o := &Array[T]{data: make([]T, len(a.data)), size: a.size}
	copy(o.data, a.data[:a.size])
	return o
}

// grow doubles the capacity, starting from 1.
func (a *Array[T]) grow() {
	data := make([]T, max(1, 2*len(a.data)))
	copy(data, a.data[:a.size])
	a.data = data
}

// reserve grows until n more elements fit.
func (a *Array[T]) reserve(n int) {
	for a.size+n > len(a.data) {
		a.grow()
	}
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the capacity of the backing store.
func (a *Array[T]) Cap() int { return len(a.data) }

// LowIndex is the smallest logical index. It is always 0, even when the array
// is empty and there is nothing to retrieve.
func (a *Array[T]) LowIndex() int { return 0 }

// HighIndex is the largest valid index, -1 for an empty array.
func (a *Array[T]) HighIndex() int { return a.size - 1 }

// IndexInRange reports whether i addresses a live element.
func (a *Array[T]) IndexInRange(i int) bool {
	return a.LowIndex() <= i && i <= a.HighIndex()
}

// position accepts 0 <= i <= size, the gaps between elements.
func (a *Array[T]) position(i int) bool {
	return 0 <= i && i <= a.size
}

func (a *Array[T]) span(from, to int) bool {
	return 0 <= from && to <= a.size && from < to
}

func (a *Array[T]) Get(i int) (T, error) {
	if !a.IndexInRange(i) {
		var zero T
		return zero, indexError(i, a.size)
	}
	return a.data[i], nil
}

// Set replaces the element at i and returns the previous one.
func (a *Array[T]) Set(i int, v T) (T, error) {
	if !a.IndexInRange(i) {
		var zero T
		return zero, indexError(i, a.size)
	}
	old := a.data[i]
	a.data[i] = v
	return old, nil
}

// Insert places v at i, shifting elements at [i, Len()) one slot right.
// i == Len() appends.
func (a *Array[T]) Insert(i int, v T) error {
	if !a.position(i) {
		return indexError(i, a.size)
	}
	if a.size == len(a.data) {
		a.grow()
	}
	copy(a.data[i+1:a.size+1], a.data[i:a.size])
	a.data[i] = v
	a.size++
	return nil
}

// Add appends v.
func (a *Array[T]) Add(v T) {
	if a.size == len(a.data) {
		a.grow()
	}
	a.data[a.size] = v
	a.size++
}

// Remove deletes and returns the element at i.
func (a *Array[T]) Remove(i int) (T, error) {
	if !a.IndexInRange(i) {
		var zero T
		return zero, indexError(i, a.size)
	}
	v := a.data[i]
	copy(a.data[i:a.size-1], a.data[i+1:a.size])
	a.size--
	clear(a.data[a.size : a.size+1])
	return v, nil
}

// Values returns a copy of the live elements.
func (a *Array[T]) Values() []T {
	o := make([]T, a.size)
	copy(o, a.data[:a.size])
	return o
}

// Reset drops all elements and keeps the capacity.
func (a *Array[T]) Reset() {
	clear(a.data[:a.size])
	a.size = 0
}

func (a *Array[T]) String() string {
	return fmt.Sprint(a.data[:a.size])
}
