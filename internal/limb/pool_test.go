package limb

import "testing"

func TestPoolIndex(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 0},
		{1, 0},
		{64, 0},
		{65, 1},
		{256, 1},
		{257, 2},
		{1024, 2},
		{1025, 3},
		{4096, 3},
		{1048576, 7},
		{1048577, -1},
	}
	for _, tt := range tests {
		if got := poolIndex(tt.size); got != tt.want {
			t.Errorf("poolIndex(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

// TestPoolIndexMatchesSizeClasses cross-checks the arithmetic index against a
// linear scan of the size-class table for every size up to the largest class.
func TestPoolIndexMatchesSizeClasses(t *testing.T) {
	linear := func(size int) int {
		for i, s := range wordSliceSizes {
			if size <= s {
				return i
			}
		}
		return -1
	}
	for size := 1; size <= wordSliceSizes[len(wordSliceSizes)-1]; size += 37 {
		if got, want := poolIndex(size), linear(size); got != want {
			t.Fatalf("poolIndex(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestAcquireReleaseWords(t *testing.T) {
	for _, size := range []int{1, 63, 64, 65, 1000, 5000} {
		s := AcquireWords(size)
		if len(s) != size {
			t.Errorf("AcquireWords(%d) length = %d", size, len(s))
		}
		for i, w := range s {
			if w != 0 {
				t.Errorf("AcquireWords(%d)[%d] = %#x, want 0", size, i, w)
				break
			}
		}
		// Dirty the slice before release; the next acquire must see zeros.
		for i := range s {
			s[i] = M
		}
		ReleaseWords(s)

		s2 := AcquireWords(size)
		for i, w := range s2 {
			if w != 0 {
				t.Errorf("reacquired slice of size %d: limb %d = %#x, want 0", size, i, w)
				break
			}
		}
		ReleaseWords(s2)
	}
}

func TestAcquireWordsOversized(t *testing.T) {
	size := wordSliceSizes[len(wordSliceSizes)-1] + 1
	s := AcquireWords(size)
	if len(s) != size {
		t.Fatalf("length = %d, want %d", len(s), size)
	}
	ReleaseWords(s) // must not panic
}

func TestReleaseWordsNil(t *testing.T) {
	ReleaseWords(nil) // must not panic
}
