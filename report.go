// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsetallocator

import "math/bits"

// StorageReport summarizes free space at a glance: enough to decide
// whether a future allocation is likely to succeed without walking
// any structure.
type StorageReport struct {
	FreeSpace         uint32
	LargestFreeRegion uint32
}

// StorageReportBin is one entry of a StorageReportFull: how many free
// regions currently sit in a given bin, and that bin's nominal size.
type StorageReportBin struct {
	Size  uint32
	Count uint32
}

// StorageReportFull lists, for every one of the 256 bins, its nominal
// size and how many free regions currently occupy it. It costs a full
// walk of every bin's free list and exists for diagnostics, not the
// hot path.
type StorageReportFull struct {
	FreeRegions [binCount]StorageReportBin
}

// StorageReport returns the quick summary described above.
func (a *Allocator) StorageReport() StorageReport {
	var report StorageReport

	report.FreeSpace = a.freeStorage

	if a.bins.usedBinsTop != 0 {
		topBinIndex := uint8(31 - bits.LeadingZeros32(a.bins.usedBinsTop))
		leafBinIndex := 7 - leadingZeros8(a.bins.usedBins[topBinIndex])
		report.LargestFreeRegion = Decode(topBinIndex<<topShift | leafBinIndex)
	}

	return report
}

// leadingZeros8 counts leading zero bits in the low 8 bits of v.
func leadingZeros8(v uint8) uint8 {
	return uint8(bits.LeadingZeros32(uint32(v)) - 24)
}

// StorageReportFull returns, for every bin, its nominal size and the
// number of free regions currently filed under it.
func (a *Allocator) StorageReportFull() StorageReportFull {
	var report StorageReportFull

	for bin := 0; bin < binCount; bin++ {
		var count uint32
		nodeIndex := a.binIndices[bin]
		for nodeIndex != unused {
			count++
			nodeIndex = a.nodes[nodeIndex].binListNext
		}
		report.FreeRegions[bin] = StorageReportBin{
			Size:  Decode(uint8(bin)),
			Count: count,
		}
	}

	return report
}
