package flatrb_test

import (
	"testing"

	"github.com/flatrb/flatrb"
)

func TestOrderedCursorStickyBoundaries(t *testing.T) {
	t.Parallel()

	tr := flatrb.New[uint32, int, int](0)
	for _, k := range []int{3, 1, 2} {
		if err := tr.Insert(k, k); err != nil {
			t.Fatalf("Insert(%d): %v", k, err)
		}
	}

	c := tr.OrderedBegin()
	var got []int
	for !c.Done() {
		got = append(got, c.Key())
		c.Advance()
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("OrderedBegin traversal = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OrderedBegin traversal = %v, want %v", got, want)
		}
	}

	// Advancing past the end is sticky.
	if !c.Done() {
		t.Fatalf("cursor should report Done after exhausting all keys")
	}
	c.Advance()
	if !c.Done() {
		t.Fatalf("advancing an already-Done cursor should stay Done")
	}

	// Retreating from End walks backward to the max, then past the min
	// sets the sticky before-begin flag, from which Advance resumes at
	// the minimum.
	c.Retreat()
	if c.Key() != 3 {
		t.Fatalf("first Retreat from End = %d, want 3 (the max)", c.Key())
	}
	c.Retreat()
	c.Retreat()
	if c.Key() != 1 {
		t.Fatalf("after two more Retreats, Key() = %d, want 1 (the min)", c.Key())
	}
	c.Retreat() // past the min: sticky before-begin
	c.Retreat() // no-op
	c.Advance() // jumps to the min
	if c.Key() != 1 {
		t.Fatalf("Advance from before-begin = %d, want 1 (the min)", c.Key())
	}
}

func TestOrderedCursorEqual(t *testing.T) {
	t.Parallel()

	tr := flatrb.New[uint32, int, int](0)
	tr.Insert(1, 1)
	tr.Insert(2, 2)

	a := tr.OrderedBegin()
	b := tr.OrderedBegin()
	if !a.Equal(b) {
		t.Fatalf("two OrderedBegin cursors on the same tree should be Equal")
	}
	b.Advance()
	if a.Equal(b) {
		t.Fatalf("cursors at different positions should not be Equal")
	}
}

func TestUnorderedCursorVisitsEverySlotOnce(t *testing.T) {
	t.Parallel()

	tr := flatrb.New[uint32, int, int](0)
	want := map[int]int{}
	for i := 0; i < 100; i++ {
		want[i] = i * i
		if err := tr.Insert(i, i*i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	tr.Delete(5)
	tr.Delete(50)
	delete(want, 5)
	delete(want, 50)

	got := map[int]int{}
	c := tr.UnorderedBegin()
	for !c.Done() {
		got[c.Key()] = c.Value()
		c.Advance()
	}
	if len(got) != len(want) {
		t.Fatalf("unordered scan visited %d keys, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("unordered scan: key %d = %d, want %d", k, got[k], v)
		}
	}
}

func TestUnorderedCursorOnEmptyTreeIsDone(t *testing.T) {
	t.Parallel()

	tr := flatrb.New[uint32, int, int](0)
	c := tr.UnorderedBegin()
	if !c.Done() {
		t.Fatalf("UnorderedBegin on an empty tree should already be Done")
	}
}
