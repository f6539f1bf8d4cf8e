// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsetallocator

// insertNodeIntoBin takes a slot from the node pool, describes it as a
// free region of size bytes starting at dataOffset, and links it at
// the head of the free list for RoundDown(size)'s bin — creating the
// bin's entry in the two-level bitmap if it was previously empty. It
// returns the index of the new node. The caller is responsible for
// wiring the new node into the neighbor chain; insertNodeIntoBin only
// ever produces a node with no neighbors.
func (a *Allocator) insertNodeIntoBin(size, dataOffset uint32) NodeIndex {
	binIndex := RoundDown(size)

	if a.binIndices[binIndex] == unused {
		a.bins.set(binIndex)
	}

	topNodeIndex := a.binIndices[binIndex]

	nodeIndex := a.freeNodes[a.freeOffset]
	a.freeOffset--

	a.nodes[nodeIndex] = node{
		dataOffset:   dataOffset,
		dataSize:     size,
		binListNext:  topNodeIndex,
		binListPrev:  unused,
		neighborPrev: unused,
		neighborNext: unused,
	}

	if topNodeIndex != unused {
		a.nodes[topNodeIndex].binListPrev = nodeIndex
	}
	a.binIndices[binIndex] = nodeIndex

	a.freeStorage += size

	return nodeIndex
}

// removeNodeFromBin unlinks nodeIndex from whichever bin's free list
// currently holds it and returns its slot to the node pool. It does
// not touch the neighbor chain: the node is assumed to already be
// spliced out of it, or about to be replaced in place by the caller.
func (a *Allocator) removeNodeFromBin(nodeIndex NodeIndex) {
	n := &a.nodes[nodeIndex]

	if n.binListPrev != unused {
		a.nodes[n.binListPrev].binListNext = n.binListNext
		if n.binListNext != unused {
			a.nodes[n.binListNext].binListPrev = n.binListPrev
		}
	} else {
		binIndex := RoundDown(n.dataSize)
		a.binIndices[binIndex] = n.binListNext
		if n.binListNext != unused {
			a.nodes[n.binListNext].binListPrev = unused
		} else {
			a.bins.clear(binIndex)
		}
	}

	a.freeOffset++
	a.freeNodes[a.freeOffset] = nodeIndex

	a.freeStorage -= n.dataSize
}
