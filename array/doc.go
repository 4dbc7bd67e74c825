// Package array implements a generic growable array.
//
// [Array] keeps its elements in a single contiguous backing store whose
// capacity doubles on overflow and never shrinks. Range operations take
// half-open intervals [from, to) and are validated before anything is
// touched, so a rejected call leaves every operand as it was.
//
// An Array is owned by one goroutine at a time. Operations that produce a
// range always return a new Array with its own storage.
package array
