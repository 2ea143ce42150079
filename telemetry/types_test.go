// Copyright 2017-18 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package telemetry

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeDevice serves log pages from memory, standing in for the SAT transport in tests.
type fakeDevice struct {
	pages map[uint32][]byte
}

func pageKey(logAddr uint8, page uint16) uint32 {
	return uint32(logAddr)<<16 | uint32(page)
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{pages: make(map[uint32][]byte)}
}

func (f *fakeDevice) setPage(logAddr uint8, page uint16, data []byte) {
	buf := make([]byte, LogPageSize)
	copy(buf, data)
	f.pages[pageKey(logAddr, page)] = buf
}

func (f *fakeDevice) ReadLogPage(logAddr, features uint8, page uint16, buf []byte) error {
	data, ok := f.pages[pageKey(logAddr, page)]
	if !ok {
		return fmt.Errorf("no page %#02x/%d", logAddr, page)
	}

	copy(buf, data)
	return nil
}

func TestStructSizes(t *testing.T) {
	assert := assert.New(t)

	// Test that the wire structs decode the size they should be
	assert.Equal(512, binary.Size(InternalStatus{}))
	assert.Equal(128, binary.Size(ReasonID{}))
	assert.Equal(512, binary.Size(DataHeader{}))
	assert.Equal(432, binary.Size(StringsHeader{}))
	assert.Equal(16, binary.Size(StatIDStringEntry{}))
	assert.Equal(16, binary.Size(EventIDStringEntry{}))
	assert.Equal(8, binary.Size(StatisticHeader{}))
	assert.Equal(4, binary.Size(EventDescriptor{}))
}

func TestEventKey(t *testing.T) {
	assert := assert.New(t)

	// The composite key uses the raw on-wire byte order of the id
	assert.Equal(uint32(0x0c2301), EventKey(0x0c, [2]byte{0x01, 0x23}))
	assert.Equal(uint32(0x800001), EventKey(0x80, [2]byte{0x01, 0x00}))
}
