package tui

import (
	"strings"
	"testing"
)

func TestRingBufferPushAndSlice(t *testing.T) {
	t.Parallel()
	r := NewRingBuffer(3)

	if r.Len() != 0 || r.Last() != 0 {
		t.Errorf("empty buffer: Len=%d Last=%f", r.Len(), r.Last())
	}

	r.Push(1)
	r.Push(2)
	if got := r.Slice(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Slice = %v, want [1 2]", got)
	}

	r.Push(3)
	r.Push(4) // overwrites 1
	if got := r.Slice(); len(got) != 3 || got[0] != 2 || got[2] != 4 {
		t.Errorf("Slice after wrap = %v, want [2 3 4]", got)
	}
	if r.Last() != 4 {
		t.Errorf("Last = %f, want 4", r.Last())
	}
}

func TestRingBufferResize(t *testing.T) {
	t.Parallel()
	r := NewRingBuffer(5)
	for i := 1; i <= 5; i++ {
		r.Push(float64(i))
	}

	r.Resize(3) // keeps the most recent samples
	if got := r.Slice(); len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Errorf("Slice after shrink = %v, want [3 4 5]", got)
	}

	r.Resize(10)
	r.Push(6)
	if got := r.Slice(); len(got) != 4 || got[3] != 6 {
		t.Errorf("Slice after grow = %v, want [3 4 5 6]", got)
	}

	r.Resize(0) // clamps to 1
	if r.Len() > 1 {
		t.Errorf("Len after Resize(0) = %d, want <= 1", r.Len())
	}
}

func TestNewRingBufferClampsCapacity(t *testing.T) {
	t.Parallel()
	r := NewRingBuffer(-5)
	r.Push(42)
	if r.Len() != 1 || r.Last() != 42 {
		t.Errorf("clamped buffer should hold one sample, Len=%d Last=%f", r.Len(), r.Last())
	}
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("empty input should render empty, got %q", got)
	}

	got := RenderSparkline([]float64{0, 50, 100})
	if len([]rune(got)) != 3 {
		t.Fatalf("want 3 runes, got %q", got)
	}
	runes := []rune(got)
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("extremes should map to the lowest and highest blocks, got %q", got)
	}

	// Out-of-range values are clamped, never panic.
	clamped := RenderSparkline([]float64{-10, 250})
	if !strings.ContainsRune(clamped, '▁') || !strings.ContainsRune(clamped, '█') {
		t.Errorf("clamped rendering wrong: %q", clamped)
	}
}
