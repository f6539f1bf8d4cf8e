// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package offsetallocator implements a fixed-capacity, single-threaded
offset suballocator: a data structure that partitions an abstract
linear address space [0, size) into non-overlapping regions handed out
to callers, and reclaims them on Free with immediate coalescing of
adjacent free regions.

The allocator does not own any backing memory. It hands out uint32
offsets that the caller uses to index into whatever it actually
manages — a GPU buffer, an arena, a file range. Allocate and Free run
in worst-case O(1) time regardless of fragmentation.

Bins

A region's byte size is classified into one of 256 bins, addressed by
an 8-bit value with 5 exponent bits and 3 mantissa bits (see RoundUp,
RoundDown and Decode). RoundUp is used on allocation requests so that
any region found in the chosen bin is large enough; RoundDown is used
on the sizes of stored free regions so that a region is never filed
under a bin whose nominal size exceeds it. This asymmetry is load
bearing: swapping the two breaks the size guarantee in one direction
or the other.

Two-level bitmap

A 32-bit word (usedBinsTop) tracks which of the 32 "top" bins (groups
of 8) contain at least one non-empty leaf bin; 32 bytes (usedBins)
track, within each top bin, which of its 8 leaf bins are non-empty.
Finding the lowest non-empty bin at or after a given index takes at
most three hardware bit-scans, never a scan of all 256 bins.

Nodes

A node describes one region: its offset and size, its links in the
free list of one bin (binListPrev/binListNext, valid only while free)
and its links in the neighbor chain (neighborPrev/neighborNext, valid
for every live node, used or
free) — the address-ordered doubly linked list of all regions, which
is what lets Free coalesce an adjacent region in O(1) without scanning.
Nodes live in a fixed-capacity pool; a LIFO stack of free slot indices
(not threaded through the nodes themselves) hands out and reclaims
slots.

Concurrency

An Allocator is single-threaded by design: no operation blocks, none
synchronizes internally, and sharing one across goroutines requires
external mutual exclusion. Making this concurrent is a different data
structure (e.g. per-thread caches feeding a locked global) and is out
of scope.
*/
package offsetallocator
