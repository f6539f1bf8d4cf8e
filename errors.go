// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offsetallocator

import "fmt"

// ErrInvalid reports misuse of the public API: an out of range
// constructor argument or a stale/foreign handle passed to Free.
type ErrInvalid struct {
	Op  string
	Arg interface{}
}

func (e *ErrInvalid) Error() string {
	return fmt.Sprintf("offsetallocator: invalid argument in %s: %v", e.Op, e.Arg)
}

// ErrCorrupt reports a violation of one of the structural invariants
// the Allocator maintains, discovered by Verify. It is never returned
// by Allocate or Free themselves — only by Verify, which is a
// debugging aid, not part of the hot path.
type ErrCorrupt struct {
	Op   string
	Off  uint32
	Want interface{}
	Got  interface{}
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("offsetallocator: corrupt state at %s (offset %d): want %v, got %v", e.Op, e.Off, e.Want, e.Got)
}
