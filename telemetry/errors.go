// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package telemetry

import "errors"

var (
	// ErrEmptyLog indicates area 1 of the internal status log has no pages.
	ErrEmptyLog = errors.New("device internal status log is empty")

	// ErrHeaderInconsistent indicates a header declares regions beyond the readable sectors.
	ErrHeaderInconsistent = errors.New("telemetry header describes regions beyond the readable log")

	// ErrCorruptStringTable indicates a string table size that cannot hold whole entries.
	ErrCorruptStringTable = errors.New("string table size is not a multiple of the entry size")
)

// ceilDiv rounds the quotient a/b up.
func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}
