// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a counter that can be synchronously incremented or
// decremented, just a 64 bit unsigned integer underneath
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return ic.value.Add(1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return ic.value.Add(^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return ic.value.Load()
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.value.Load()
}
