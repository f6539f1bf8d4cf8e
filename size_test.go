// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsetallocator

import "testing"

func TestRoundTrip(t *testing.T) {
	table := []struct {
		size    uint32
		roundUp uint8
		roundDn uint8
	}{
		{17, 17, 16},
		{118, 39, 38},
		{1024, 64, 64},
		{65536, 112, 112},
		{529445, 137, 136},
		{1048575, 144, 143},
	}

	for _, g := range table {
		if got := RoundUp(g.size); got != g.roundUp {
			t.Errorf("RoundUp(%d) = %d, want %d", g.size, got, g.roundUp)
		}
		if got := RoundDown(g.size); got != g.roundDn {
			t.Errorf("RoundDown(%d) = %d, want %d", g.size, got, g.roundDn)
		}
	}
}

func TestRoundTripDenormalsAreIdentity(t *testing.T) {
	for i := uint32(0); i < 17; i++ {
		if got := RoundUp(i); uint32(got) != i {
			t.Errorf("RoundUp(%d) = %d, want %d", i, got, i)
		}
		if got := RoundDown(i); uint32(got) != i {
			t.Errorf("RoundDown(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestRoundTripEveryEncodableBin(t *testing.T) {
	for v := 0; v < 240; v++ {
		decoded := Decode(uint8(v))
		if got := RoundUp(decoded); got != uint8(v) {
			t.Errorf("RoundUp(Decode(%d)) = %d, want %d", v, got, v)
		}
		if got := RoundDown(decoded); got != uint8(v) {
			t.Errorf("RoundDown(Decode(%d)) = %d, want %d", v, got, v)
		}
	}
}

// Bins from 240 up have nominal sizes of 2^32 or more, which Decode's
// uint32 result cannot hold, so only bins below 240 are checked.
func TestDecodeMonotonic(t *testing.T) {
	var prev uint32
	for v := 0; v < 240; v++ {
		got := Decode(uint8(v))
		if v > 0 && got < prev {
			t.Fatalf("Decode(%d) = %d is less than Decode(%d) = %d", v, got, v-1, prev)
		}
		prev = got
	}
}

func TestRoundUpNeverUndershoots(t *testing.T) {
	sizes := []uint32{0, 1, 2, 7, 8, 9, 255, 256, 257, 1 << 20, 1<<20 + 1, 1 << 30}
	for _, size := range sizes {
		bin := RoundUp(size)
		if got := Decode(bin); got < size {
			t.Errorf("RoundUp(%d) = bin %d decodes to %d, smaller than requested", size, bin, got)
		}
	}
}

func TestRoundDownNeverOvershoots(t *testing.T) {
	sizes := []uint32{0, 1, 2, 7, 8, 9, 255, 256, 257, 1 << 20, 1<<20 + 1, 1 << 30}
	for _, size := range sizes {
		bin := RoundDown(size)
		if got := Decode(bin); got > size {
			t.Errorf("RoundDown(%d) = bin %d decodes to %d, larger than requested", size, bin, got)
		}
	}
}
