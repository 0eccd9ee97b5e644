package flatrb_test

import (
	"errors"
	"math"
	"testing"

	"github.com/flatrb/flatrb"
)

// A Tree64's MAX_COUNT (2^64-1) vastly exceeds what any real allocation
// could back; requesting a capacity within that legal range but beyond
// what a slice can address should fail gracefully with AllocFail rather
// than let the runtime panic inside make.
func TestResizeReportsAllocFailBeyondAddressableCapacity(t *testing.T) {
	t.Parallel()

	tr := flatrb.New[uint64, int, int](0)
	err := tr.Resize(math.MaxInt)
	if err == nil {
		t.Fatalf("Resize(math.MaxInt) succeeded, want AllocFail")
	}
	if !errors.Is(err, flatrb.ErrAllocFail) {
		t.Fatalf("Resize error = %v, want errors.Is match against ErrAllocFail", err)
	}
	if tr.Cap() != 256 {
		t.Fatalf("Cap() = %d after a failed Resize, want unchanged 256", tr.Cap())
	}
}

// New has no error return, so a capacity request beyond what a slice can
// address falls back to defaultCapacity rather than panicking inside make.
func TestNewFallsBackToDefaultCapacityBeyondAddressableRequest(t *testing.T) {
	t.Parallel()

	tr := flatrb.New[uint64, int, int](math.MaxInt)
	if tr.Cap() != 256 {
		t.Fatalf("Cap() = %d, want defaultCapacity fallback of 256", tr.Cap())
	}
	if err := tr.Insert(1, 1); err != nil {
		t.Fatalf("Insert after fallback: %v", err)
	}
}
