package flatrb_test

import (
	"testing"

	"github.com/flatrb/flatrb"
)

func TestTransformSameWidth(t *testing.T) {
	t.Parallel()

	src := flatrb.New[uint32, int, int](0)
	for i := 0; i < 200; i++ {
		if err := src.Insert(i, i*2); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	dst := flatrb.New[uint32, int, int](0)
	if err := dst.Transform(src); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if dst.Len() != src.Len() {
		t.Fatalf("Len() = %d after Transform, want %d", dst.Len(), src.Len())
	}
	for i := 0; i < 200; i++ {
		got, ok := dst.Search(i)
		if !ok || got != i*2 {
			t.Fatalf("Search(%d) on transformed tree = (%d, %v), want (%d, true)", i, got, ok, i*2)
		}
	}
}

func TestTransformWidthCrossesIndexWidths(t *testing.T) {
	t.Parallel()

	src := flatrb.New[uint16, string, int](0)
	for i, k := range []string{"alpha", "beta", "gamma", "delta"} {
		if err := src.Insert(k, i); err != nil {
			t.Fatalf("Insert(%q): %v", k, err)
		}
	}
	dst, err := flatrb.TransformWidth[uint16, uint64, string, int](src, 0)
	if err != nil {
		t.Fatalf("TransformWidth: %v", err)
	}
	if dst.IndexWidth() != 64 {
		t.Fatalf("IndexWidth() = %d, want 64", dst.IndexWidth())
	}
	if dst.Len() != src.Len() {
		t.Fatalf("Len() = %d, want %d", dst.Len(), src.Len())
	}
	for i, k := range []string{"alpha", "beta", "gamma", "delta"} {
		got, ok := dst.Search(k)
		if !ok || got != i {
			t.Fatalf("Search(%q) = (%d, %v), want (%d, true)", k, got, ok, i)
		}
	}

	var prev string
	have := false
	c := dst.OrderedBegin()
	for !c.Done() {
		k := c.Key()
		if have && prev >= k {
			t.Fatalf("ordered traversal out of order after TransformWidth: %q then %q", prev, k)
		}
		prev, have = k, true
		c.Advance()
	}
}

func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	orig := flatrb.New[uint32, int, int](0)
	for i := 0; i < 50; i++ {
		if err := orig.Insert(i, i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	dup, err := orig.Copy()
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	dup.Delete(0)
	if _, ok := orig.Search(0); !ok {
		t.Fatalf("deleting from the copy affected the original")
	}
	if _, ok := dup.Search(0); ok {
		t.Fatalf("Search(0) on the copy found a deleted key")
	}
}

type cloneableValue struct {
	cloned bool
}

func (c *cloneableValue) Clone() *cloneableValue {
	return &cloneableValue{cloned: true}
}

func TestCopyClonesClonerValues(t *testing.T) {
	t.Parallel()

	orig := flatrb.New[uint32, int, *cloneableValue](0)
	if err := orig.Insert(1, &cloneableValue{}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	dup, err := orig.Copy()
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	got, ok := dup.Search(1)
	if !ok {
		t.Fatalf("Search(1) on the copy missing")
	}
	if !got.cloned {
		t.Fatalf("Copy did not invoke Clone() on a Cloner value")
	}
}
