package flatrb

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
)

// Pair is one materialized key-value pair, returned by Pairs.
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// ConditionalDelete deletes every pair for which pred reports true and
// returns how many were removed.
//
// pred is invoked exactly once per live pair, in a single pre-pass that
// both estimates the deletion rate and materializes the matching set
// (§9 "stateful predicates", option b in SPEC_FULL.md). The estimated
// rate then picks one of three tiers (§4.5): below 0.25, matching keys
// are deleted directly off the materialized list; below 0.5, the tree is
// walked in key order and matches are deleted as they're reached; at or
// above 0.5, a fresh tree is rebuilt from the non-matching slots and
// swapped in. Heavy-tier allocation failure falls back to the medium
// tier, never to sparse.
//
// If pred returns a non-nil error, the pre-pass stops immediately and
// ConditionalDelete returns that error wrapped as InvalidPredicate,
// propagated rather than swallowed per §7; since no slot has been deleted
// yet at that point, the tree is left unchanged.
func (t *Tree[I, K, V]) ConditionalDelete(pred func(K, V) (bool, error)) (int, error) {
	n := t.hdr.liveCount
	if n == 0 {
		return 0, nil
	}

	matchBits := scratchBitsetPool.Get()
	nonMatchBits := scratchBitsetPool.Get()
	defer scratchBitsetPool.Put(matchBits)
	defer scratchBitsetPool.Put(nonMatchBits)
	matchKeys := make([]K, 0)
	matchSet := make(map[K]struct{})

	for i := I(0); i < n; i++ {
		s := &t.slots[i]
		match, err := pred(s.key, s.value)
		if err != nil {
			return 0, wrapError("ConditionalDelete", InvalidPredicate, err)
		}
		if match {
			matchBits.Set(uint(i))
			matchKeys = append(matchKeys, s.key)
			matchSet[s.key] = struct{}{}
		} else {
			nonMatchBits.Set(uint(i))
		}
	}

	if len(matchKeys) == 0 {
		return 0, nil
	}
	rate := float64(len(matchKeys)) / float64(n)

	switch {
	case rate < 0.25:
		return t.sparseDelete(matchKeys), nil
	case rate < 0.5:
		return t.mediumDelete(matchSet), nil
	default:
		count, err := t.heavyDelete(nonMatchBits)
		if err != nil {
			return t.mediumDelete(matchSet), nil
		}
		return count, nil
	}
}

// sparseDelete deletes each already-known matching key directly, in the
// order they were found during the pre-pass.
func (t *Tree[I, K, V]) sparseDelete(keys []K) int {
	count := 0
	for _, k := range keys {
		if t.Delete(k) {
			count++
		}
	}
	return count
}

// mediumDelete walks the tree in key order, deleting matches as they're
// reached and recomputing the successor from the pre-delete key each
// step, since compaction can move slots out from under a cached index.
func (t *Tree[I, K, V]) mediumDelete(matches map[K]struct{}) int {
	count := 0
	k, _, ok := t.Min()
	for ok {
		_, isMatch := matches[k]
		next, _, hasNext := t.Ceiling(k)
		if isMatch {
			t.Delete(k)
			count++
		}
		if !hasNext {
			break
		}
		k = next
	}
	return count
}

// heavyDelete rebuilds the tree from scratch out of the non-matching
// slots (the one tier that actually consults the non-match scratch
// buffer, per the "non-consulted scratch buffer" design note) and swaps
// the rebuilt tree in.
func (t *Tree[I, K, V]) heavyDelete(nonMatch *bitset.BitSet) (int, error) {
	fresh := New[I, K, V](t.Cap())
	n := t.hdr.liveCount
	for i := I(0); i < n; i++ {
		if !nonMatch.Test(uint(i)) {
			continue
		}
		s := &t.slots[i]
		if err := fresh.Insert(s.key, s.value); err != nil {
			return 0, err
		}
	}
	deleted := int(t.hdr.liveCount) - fresh.Len()
	t.hdr = fresh.hdr
	t.slots = fresh.slots
	return deleted, nil
}

// ConditionalDeleteOnce deletes the first pair (in slot order) for which
// pred reports true and returns 1, or 0 if none matched. A pred error
// aborts the scan and is returned wrapped as InvalidPredicate, the tree
// left unchanged, the same propagation rule ConditionalDelete follows.
func (t *Tree[I, K, V]) ConditionalDeleteOnce(pred func(K, V) (bool, error)) (int, error) {
	n := t.hdr.liveCount
	for i := I(0); i < n; i++ {
		s := &t.slots[i]
		match, err := pred(s.key, s.value)
		if err != nil {
			return 0, wrapError("ConditionalDeleteOnce", InvalidPredicate, err)
		}
		if match {
			k := s.key
			t.Delete(k)
			return 1, nil
		}
	}
	return 0, nil
}

// Keys materializes every key in slot order (unordered).
func (t *Tree[I, K, V]) Keys() []K {
	out := make([]K, t.hdr.liveCount)
	for i := I(0); i < t.hdr.liveCount; i++ {
		out[i] = t.slots[i].key
	}
	return out
}

// Values materializes every value in slot order (unordered).
func (t *Tree[I, K, V]) Values() []V {
	out := make([]V, t.hdr.liveCount)
	for i := I(0); i < t.hdr.liveCount; i++ {
		out[i] = t.slots[i].value
	}
	return out
}

// Pairs materializes every key-value pair in slot order (unordered).
func (t *Tree[I, K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], t.hdr.liveCount)
	for i := I(0); i < t.hdr.liveCount; i++ {
		out[i] = Pair[K, V]{Key: t.slots[i].key, Value: t.slots[i].value}
	}
	return out
}
