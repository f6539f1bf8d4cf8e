// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsetallocator

// AllocStats is filled in by Verify: a census of what it found while
// walking the Allocator's structures.
type AllocStats struct {
	UsedBytes   uint32
	FreeBytes   uint32
	UsedRegions int
	FreeRegions int
}

// Verify walks every structure the Allocator maintains — the 256 bin
// free lists, the two-level bitmap, and the neighbor chain — cross
// checking them against each other, and reports every inconsistency
// found to log. It returns the first error log returns false for, or
// nil if log always returned true (or there was nothing to report).
// Verify is a debugging aid: it is never called from Allocate or Free
// and costs a full walk of the node pool.
func (a *Allocator) Verify(log func(error) bool, stats *AllocStats) error {
	report := func(err error) error {
		if !log(err) {
			return err
		}
		return nil
	}

	var freeStorageSeen uint32

	for bin := 0; bin < binCount; bin++ {
		seenBin := false
		var prev NodeIndex = unused
		nodeIndex := a.binIndices[bin]
		for nodeIndex != unused {
			seenBin = true
			n := a.nodes[nodeIndex]

			if n.used {
				if err := report(&ErrCorrupt{Op: "Verify", Off: n.dataOffset, Want: "free", Got: "used"}); err != nil {
					return err
				}
			}
			if int(RoundDown(n.dataSize)) != bin {
				if err := report(&ErrCorrupt{Op: "Verify", Off: n.dataOffset, Want: bin, Got: RoundDown(n.dataSize)}); err != nil {
					return err
				}
			}
			if n.binListPrev != prev {
				if err := report(&ErrCorrupt{Op: "Verify", Off: n.dataOffset, Want: prev, Got: n.binListPrev}); err != nil {
					return err
				}
			}

			freeStorageSeen += n.dataSize
			stats.FreeBytes += n.dataSize
			stats.FreeRegions++

			prev = nodeIndex
			nodeIndex = n.binListNext
		}

		if seenBin != a.bins.get(uint8(bin)) {
			if err := report(&ErrCorrupt{Op: "Verify", Off: uint32(bin), Want: seenBin, Got: a.bins.get(uint8(bin))}); err != nil {
				return err
			}
		}
	}

	if freeStorageSeen != a.freeStorage {
		if err := report(&ErrCorrupt{Op: "Verify", Want: a.freeStorage, Got: freeStorageSeen}); err != nil {
			return err
		}
	}

	// Walk the neighbor chain from its root, confirming it is
	// contiguous and that no two adjacent nodes are both free (Free
	// always coalesces, so that can never happen). The root is the
	// one live node with no neighborPrev; liveness itself has to be
	// derived from the freeNodes stack, since an unissued pool slot
	// (all links unused) is indistinguishable from a live root's fields.
	live := make([]bool, len(a.nodes))
	for i := range live {
		live[i] = true
	}
	for _, idx := range a.freeNodes[:int(a.freeOffset)+1] {
		live[idx] = false
	}

	var start NodeIndex = unused
	for i, alive := range live {
		if alive && a.nodes[i].neighborPrev == unused {
			start = NodeIndex(i)
			break
		}
	}

	if start != unused {
		var offset uint32
		seen := make(map[NodeIndex]bool)
		idx := start
		prevFree := false
		for {
			if seen[idx] {
				return report(&ErrCorrupt{Op: "Verify", Want: "acyclic neighbor chain", Got: idx})
			}
			seen[idx] = true

			n := a.nodes[idx]
			if n.dataOffset != offset {
				if err := report(&ErrCorrupt{Op: "Verify", Off: offset, Want: offset, Got: n.dataOffset}); err != nil {
					return err
				}
			}
			if !n.used && prevFree {
				if err := report(&ErrCorrupt{Op: "Verify", Off: n.dataOffset, Want: "coalesced", Got: "adjacent free regions"}); err != nil {
					return err
				}
			}

			if n.used {
				stats.UsedBytes += n.dataSize
				stats.UsedRegions++
			}

			offset += n.dataSize
			prevFree = !n.used

			if n.neighborNext == unused {
				break
			}
			idx = n.neighborNext
		}

		if offset != a.size {
			if err := report(&ErrCorrupt{Op: "Verify", Want: a.size, Got: offset}); err != nil {
				return err
			}
		}
	}

	return nil
}
