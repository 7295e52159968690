// This file provides memory pooling for scratch word slices to reduce GC
// pressure in the multiplication and division engines.

package limb

import (
	"math/bits"
	"sync"
)

// wordSlicePools pools []Word scratch buffers by size class.
// Size classes are powers of 4 starting at 64 words to avoid fragmentation:
// 64, 256, 1K, 4K, 16K, 64K, 256K, 1M words.
var wordSlicePools = [...]sync.Pool{
	{New: func() any { return make([]Word, 64) }},
	{New: func() any { return make([]Word, 256) }},
	{New: func() any { return make([]Word, 1024) }},
	{New: func() any { return make([]Word, 4096) }},
	{New: func() any { return make([]Word, 16384) }},
	{New: func() any { return make([]Word, 65536) }},
	{New: func() any { return make([]Word, 262144) }},
	{New: func() any { return make([]Word, 1048576) }},
}

// wordSliceSizes defines the size classes for the pools above.
var wordSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// poolIndex returns the pool index for a given size, or -1 if the size is
// too large for pooling.
//
// Size classes are powers of 4 starting from 4^3 = 64, so the index follows
// directly from the bit length of size-1 without a linear search.
func poolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordSliceSizes[len(wordSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// AcquireWords returns a zeroed word slice of exactly the given length from
// the pool. The slice's capacity may exceed the request. Slices too large
// for any size class are allocated directly.
//
// Release with ReleaseWords, preferably via defer:
//
//	scratch := limb.AcquireWords(n)
//	defer limb.ReleaseWords(scratch)
func AcquireWords(size int) []Word {
	idx := poolIndex(size)
	if idx < 0 {
		return make([]Word, size)
	}
	slice := wordSlicePools[idx].Get().([]Word)
	clear(slice)
	return slice[:size]
}

// ReleaseWords returns a word slice obtained from AcquireWords to its pool.
// Safe to call with nil. Slices whose capacity does not match a size class
// (direct allocations) are left for the garbage collector.
func ReleaseWords(slice []Word) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := poolIndex(c)
	if idx >= 0 && wordSliceSizes[idx] == c {
		wordSlicePools[idx].Put(slice[:c])
	}
}
