// Command flatrbbench drives a Tree32[int, struct{}] through a randomized
// insert/lookup/delete workload. It is not part of the library's public
// surface, a non-core driver kept only as ambient tooling per SPEC_FULL.md.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/flatrb/flatrb"
)

func main() {
	n := flag.Int("n", 100_000, "number of keys to insert")
	seed := flag.Uint64("seed", 42, "PCG seed")
	deleteRate := flag.Float64("delete-rate", 0.1, "fraction of keys conditionally deleted after the fill phase")
	flag.Parse()

	if *n <= 0 {
		log.Fatal("flatrbbench: -n must be positive")
	}

	prng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b9))
	tree := flatrb.New[uint32, int, struct{}](*n)

	keys := make([]int, 0, *n)
	for i := 0; i < *n; i++ {
		k := prng.Int()
		if err := tree.Insert(k, struct{}{}); err != nil {
			log.Fatalf("flatrbbench: insert: %v", err)
		}
		keys = append(keys, k)
	}

	hits := 0
	for _, k := range keys {
		if _, ok := tree.Search(k); ok {
			hits++
		}
	}

	modulus := 1
	if *deleteRate > 0 {
		modulus = int(1 / *deleteRate)
		if modulus < 1 {
			modulus = 1
		}
	}
	deleted, err := tree.ConditionalDelete(func(k int, _ struct{}) (bool, error) {
		return k%modulus == 0, nil
	})
	if err != nil {
		log.Fatalf("flatrbbench: conditional delete: %v", err)
	}

	fmt.Printf("inserted=%d hits=%d deleted=%d remaining=%d\n", len(keys), hits, deleted, tree.Len())
}
