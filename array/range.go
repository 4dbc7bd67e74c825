package array

// Sublist returns a copy of [from, to). The receiver is not modified.
func (a *Array[T]) Sublist(from, to int) (*Array[T], error) {
	if !a.span(from, to) {
		return nil, rangeError(from, to, a.size)
	}
	o := withLen[T](to - from)
	copy(o.data, a.data[from:to])
	return o, nil
}

// Delete returns a new array holding every element outside [from, to).
// The receiver is not modified; use Extract to remove in place.
func (a *Array[T]) Delete(from, to int) (*Array[T], error) {
	if !a.span(from, to) {
		return nil, rangeError(from, to, a.size)
	}
	o := withLen[T](a.size - (to - from))
	n := copy(o.data, a.data[:from])
	copy(o.data[n:], a.data[to:a.size])
	return o, nil
}

// Extract removes [from, to) from the receiver and returns it as a new array.
func (a *Array[T]) Extract(from, to int) (*Array[T], error) {
	if !a.span(from, to) {
		return nil, rangeError(from, to, a.size)
	}
	o := withLen[T](to - from)
	copy(o.data, a.data[from:to])
	a.cut(from, to)
	return o, nil
}

// cut removes [from, to) in place, zeroing the vacated tail.
func (a *Array[T]) cut(from, to int) {
	n := copy(a.data[from:], a.data[to:a.size])
	clear(a.data[from+n : a.size])
	a.size = from + n
}

// Append returns a new array with the elements of a followed by those of
// other. Neither operand is modified and other may be a itself.
func (a *Array[T]) Append(other Sequence[T]) *Array[T] {
	n := other.Len()
	o := &Array[T]{data: make([]T, a.size+n)}
	o.size = copy(o.data, a.data[:a.size])
	o.fill(a.size, other)
	o.size += n
	return o
}

// InsertAll inserts the elements of other at i, preserving their order, and
// returns the receiver. other is read before the receiver changes, so
// inserting an array into itself inserts its original contents.
func (a *Array[T]) InsertAll(i int, other Sequence[T]) (*Array[T], error) {
	if !a.position(i) {
		return nil, indexError(i, a.size)
	}
	src := snapshot(other)
	if len(src) == 0 {
		return a, nil
	}
	a.reserve(len(src))
	copy(a.data[i+len(src):a.size+len(src)], a.data[i:a.size])
	copy(a.data[i:], src)
	a.size += len(src)
	return a, nil
}

// SplitSuffix removes [i, Len()) from the receiver and returns it.
func (a *Array[T]) SplitSuffix(i int) (*Array[T], error) {
	if !a.position(i) {
		return nil, indexError(i, a.size)
	}
	o := withLen[T](a.size - i)
	copy(o.data, a.data[i:a.size])
	a.cut(i, a.size)
	return o, nil
}

// SplitPrefix removes [0, i) from the receiver and returns it. The remaining
// elements are re-indexed from 0.
func (a *Array[T]) SplitPrefix(i int) (*Array[T], error) {
	if !a.position(i) {
		return nil, indexError(i, a.size)
	}
	o := withLen[T](i)
	copy(o.data, a.data[:i])
	a.cut(0, i)
	return o, nil
}

// fill copies other into a.data starting at off. a.data must have room.
func (a *Array[T]) fill(off int, other Sequence[T]) {
	if x, ok := other.(*Array[T]); ok {
		copy(a.data[off:], x.data[:x.size])
		return
	}
	for j := range other.Len() {
		// j is always in range for a well-behaved Sequence.
		v, _ := other.Get(j)
		a.data[off+j] = v
	}
}

func snapshot[T any](other Sequence[T]) []T {
	if x, ok := other.(*Array[T]); ok {
		return x.Values()
	}
	o := make([]T, other.Len())
	for j := range o {
		o[j], _ = other.Get(j)
	}
	return o
}
