// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsetallocator

// NodeIndex names a slot in an Allocator's node pool. The zero value is
// a valid index (slot 0); absence is spelled unused, not zero.
type NodeIndex uint32

// unused marks a NodeIndex field that refers to nothing: the head/tail
// of an empty bin chain, or a neighbor of a node at the edge of the
// address space.
const unused NodeIndex = 0xFFFFFFFF

// NoSpace is the Offset value of the Allocation Allocate returns when
// it could not satisfy a request.
const NoSpace uint32 = 0xFFFFFFFF

// Allocation is the handle Allocate returns and Free consumes. Offset
// is the byte offset of the region within the address space the
// Allocator was configured with; Metadata is an opaque reference to
// the internal node describing that region and must be passed back to
// Free (or AllocationSize) unchanged. The zero Allocation is a valid
// one (the first Allocate on a fresh Allocator returns Offset 0 with
// Metadata 0), so test Offset against NoSpace to check for failure.
type Allocation struct {
	Offset   uint32
	Metadata NodeIndex
}

// node describes one region of the address space, live or free. Every
// node whose slot is currently issued from the pool sits somewhere in
// the neighbor chain (neighborPrev/neighborNext), the address-ordered
// doubly linked list of every region, used or not — that's what makes
// coalescing a freed region's physical neighbors an O(1) lookup
// instead of a search. binListPrev/binListNext are only meaningful
// while the node is free: they link it into the free list of whichever
// bin its size currently falls under.
type node struct {
	dataOffset uint32
	dataSize   uint32
	used       bool

	binListPrev NodeIndex
	binListNext NodeIndex

	neighborPrev NodeIndex
	neighborNext NodeIndex
}

func emptyNode() node {
	return node{
		binListPrev:  unused,
		binListNext:  unused,
		neighborPrev: unused,
		neighborNext: unused,
	}
}
