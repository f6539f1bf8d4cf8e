// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command offsetallocbench drives an Allocator through a random mix of
// allocations and frees, printing periodic storage reports. It exists
// to exercise the allocator under load and eyeball its fragmentation
// behavior, not as a rigorous benchmark harness.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	offsetallocator "github.com/zsantiago8712/OffsetAllocator"
)

func main() {
	size := flag.Int("size", offsetallocator.DefaultSize, "address space size in bytes")
	maxAllocs := flag.Int("max-allocs", offsetallocator.DefaultMaxAllocs, "maximum live allocations")
	n := flag.Int("n", 1000000, "number of operations to run")
	maxRq := flag.Int("max-rq", 1<<20, "maximum single allocation size")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	a, err := offsetallocator.NewAllocator(uint32(*size), uint32(*maxAllocs))
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	live := make([]offsetallocator.Allocation, 0, *maxAllocs)

	var allocated, freed, failed int64
	start := time.Now()
	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for i := 0; i < *n; i++ {
		select {
		case <-tick.C:
			r := a.StorageReport()
			log.Printf("op %d/%d: live=%d free=%d largest_free=%d allocated=%d freed=%d failed=%d",
				i, *n, len(live), r.FreeSpace, r.LargestFreeRegion, allocated, freed, failed)
		default:
		}

		if len(live) == 0 || rng.Intn(3) != 0 {
			size := uint32(rng.Intn(*maxRq) + 1)
			alloc := a.Allocate(size)
			if alloc.Offset == offsetallocator.NoSpace {
				failed++
				continue
			}
			live = append(live, alloc)
			allocated++
			continue
		}

		idx := rng.Intn(len(live))
		if err := a.Free(live[idx]); err != nil {
			log.Fatal(err)
		}
		live[idx] = live[len(live)-1]
		live = live[:len(live)-1]
		freed++
	}

	for _, alloc := range live {
		if err := a.Free(alloc); err != nil {
			log.Fatal(err)
		}
	}

	report := a.StorageReport()
	log.Printf("done in %s: allocated=%d freed=%d failed=%d free_space=%d largest_free=%d",
		time.Since(start), allocated, freed, failed, report.FreeSpace, report.LargestFreeRegion)
}
