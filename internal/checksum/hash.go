package checksum

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gernest/dynarray/array"
)

// Hash returns uint64 xxhash checksum of data. This is the only hash function used.
func Hash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sequence digests the elements of s in order. enc appends the encoding of
// one element to its buffer. Elements that cannot be read hash as empty.
func Sequence[T any](s array.Sequence[T], enc func([]byte, T) []byte) uint64 {
	h := xxhash.New()
	var buf []byte
	for i := range s.Len() {
		v, err := s.Get(i)
		if err != nil {
			continue
		}
		buf = enc(buf[:0], v)
		h.Write(buf)
	}
	return h.Sum64()
}
