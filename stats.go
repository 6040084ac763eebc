// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/titled/escrow"
	"github.com/bitmark-inc/titled/record"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic memory and registry gauges
func stats(escrows *escrow.Manager) {

	log := logger.New("stats")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, s, runtime.NumGoroutine())
		log.Infof("registry: %d tokens  %d proof records  %d open escrows", record.TokenCount(), record.ProofCount(), escrows.Count())

		time.Sleep(statsDelay)
	}
}
